// Package overlays contains popups drawn over the mounted view: the command
// palette, the e-mail OTP prompt and the assignment detail card.
//
// Overlays never touch the navigation store directly; they hand a message
// back to the model or the view that opened them.
package overlays
