package simdutf8

import "errors"

// ErrInvalid is returned whenever a byte sequence is not well-formed UTF-8.
// It carries no offset or category information: callers that need to locate
// the faulty byte should fall back to [unicode/utf8.Valid] or
// [unicode/utf8.DecodeRune] on the suspect region.
var ErrInvalid = errors.New("simdutf8: invalid UTF-8 sequence")
