package monitor

import (
	"encoding/json"
	"fmt"
)

// Result carries the outcome of one category query: either the collected data
// or the reason collection failed. Failures are values, not control flow, so a
// broken category never blocks the rest of a snapshot.
//
// Data is a read-only view: snapshots are immutable after construction, so
// callers must not write through it. Use Value for a private copy.
type Result[T any] struct {
	Data *T
	Err  string
}

// Ok wraps successfully collected data.
func Ok[T any](data T) Result[T] {
	return Result[T]{Data: &data}
}

// Fail wraps a query failure with a human-readable cause.
func Fail[T any](format string, args ...any) Result[T] {
	return Result[T]{Err: fmt.Sprintf(format, args...)}
}

// OK reports whether the query produced data.
func (r Result[T]) OK() bool {
	return r.Err == "" && r.Data != nil
}

// Value returns a copy of the data, or the zero value when the query failed.
func (r Result[T]) Value() T {
	if r.Data == nil {
		var zero T
		return zero
	}
	return *r.Data
}

type errMarker struct {
	Error string `json:"error"`
}

// MarshalJSON serializes the data directly on success and an explicit
// {"error": ...} object on failure, so error markers survive persistence.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Err != "" {
		return json.Marshal(errMarker{Error: r.Err})
	}
	return json.Marshal(r.Data)
}

func (r *Result[T]) UnmarshalJSON(b []byte) error {
	var m errMarker
	if err := json.Unmarshal(b, &m); err == nil && m.Error != "" {
		r.Err = m.Error
		r.Data = nil
		return nil
	}

	var data T
	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}
	r.Data = &data
	r.Err = ""
	return nil
}
