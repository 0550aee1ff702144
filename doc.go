// Package simdutf8 validates UTF-8 byte sequences using a branch-free,
// data-parallel state machine adapted from simdjson's UTF-8 validation
// algorithm.
//
// The entry points are [Validate], which validates a byte slice and hands
// back a zero-copy string view on success, and [Validator], which accepts
// 64-byte chunks one at a time for callers that already have data arriving
// in fixed-size blocks (e.g. a streaming reader). Both report failure with
// the single sentinel [ErrInvalid]: this package never returns an error
// offset or category, since the validator's internal state does not retain
// enough information to report one without giving up its branch-free
// design.
package simdutf8
