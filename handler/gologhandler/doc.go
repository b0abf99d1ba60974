// Package gologhandler renders the records of a kataras/golog logger
// with a linelog handler instead of golog's own printer.
//
// golog captures call sites only for debug records, from the first frame
// of its stack trace; location options render nothing for other levels.
// golog fields are appended to the message as sorted key=value pairs. The thread id is the id of the
// goroutine that logged; the thread name comes from Config.
package gologhandler
