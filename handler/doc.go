// Package handler defines where rendered log lines go.
//
// A Handler receives a finished line together with the level of the
// record it came from, frames it with a newline and writes it. The
// console implementation lives in the consolehandler subpackage and
// splits Warn and Error onto stderr when asked to.
//
// Handlers run synchronously on the caller's goroutine. There is no
// queue and no retry: a failed write is counted in Stats and returned
// to the caller, which reports it and moves on.
package handler
