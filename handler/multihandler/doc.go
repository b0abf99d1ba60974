// Package multihandler provides a fan-out handler that dispatches each
// entry to several child handlers, for example a console line and a JSON
// line rendered from the same event.
package multihandler
