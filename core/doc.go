// Package core defines the shared types used across disco.
//
// It provides the Level type for severity filtering and the Record
// type that represents a single log event. Records are plain values:
// the renderer reads them once and never mutates or retains them.
//
// Records can be pooled via GetRecord and PutRecord when a facade
// wants to avoid an allocation per call. The pool resets every field
// on return, so a recycled Record never leaks a previous message.
//
// StartCoarseClock caches the current UTC time in the background so
// that high-volume callers can stamp records without a time.Now call.
package core
