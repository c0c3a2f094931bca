package core

import (
	"sync"
	"time"
)

// Record is a single log event as handed to the renderer
type Record struct {
	Time    time.Time
	Level   Level
	Target  string
	Message string
}

// NewRecord builds a record stamped with the current UTC time
func NewRecord(level Level, target, msg string) Record {
	return Record{
		Time:    time.Now().UTC(),
		Level:   level,
		Target:  target,
		Message: msg,
	}
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Now().UTC()
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	*r = Record{}
	recordPool.Put(r)
}
