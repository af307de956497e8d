// Package views holds one full-page view per screen. The router builds a new
// instance on every mount, so a view's fields are its ephemeral state: quiz
// progress, typed text, cursor positions and selected tabs all reset when the
// user navigates away and back.
//
// Views read content from the catalog through commands started in InitView;
// results arrive as core.DataLoadedMsg scoped to the mount that asked.
package views
