// Package widgets contains dumb render primitives: cards, lists, tables,
// charts and the popup compositor.
//
// Nothing here handles keys or knows about screens, roles or navigation.
package widgets
