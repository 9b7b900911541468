// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wire

import "encoding/json"

// DeserializationError reports a structural mismatch between a raw
// response value and the requested Go shape. The underlying decoding
// error is preserved for errors.Is/As inspection.
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string {
	return "webwire: decode response value: " + e.Err.Error()
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// Unwrap decodes a raw response value into a single T. Missing or
// mismatched structure fails with a *DeserializationError; nothing is
// coerced or defaulted.
func Unwrap[T any](raw json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, &DeserializationError{Err: err}
	}
	return v, nil
}

// UnwrapSlice decodes a raw response value into a slice of T. A
// mismatch on any element fails the whole decode; no partial slice is
// returned.
func UnwrapSlice[T any](raw json.RawMessage) ([]T, error) {
	var v []T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &DeserializationError{Err: err}
	}
	return v, nil
}
