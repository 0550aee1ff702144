package simdutf8

import "unsafe"

// Validate checks that b is well-formed UTF-8 and, on success, returns a
// string view of it that shares b's backing array rather than copying it.
// The returned string must not be used after b is mutated.
//
// Inputs shorter than 128 bytes are validated with [unicode/utf8.Valid]
// directly; the chunking machinery below only pays for itself past that
// size.
func Validate(b []byte) (string, error) {
	if err := validate(b); err != nil {
		return "", err
	}
	return ValidateUnchecked(b), nil
}

// ValidateUnchecked returns a zero-copy string view of b without validating
// it. The caller is responsible for having validated b, or for otherwise
// trusting its contents, before calling this.
func ValidateUnchecked(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

func validate(b []byte) error {
	if len(b) < scalarThreshold {
		return validateScalar(b)
	}

	v := NewValidator()

	base := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	off := int((64 - base%64) % 64)
	pos := 0

	// unaligned prefix, right-justified in a zero-padded 64-byte block so
	// its bytes land at the same lane positions they'd occupy in a full
	// chunk ending where the aligned region begins.
	if off > 0 && off < len(b) {
		var prefix [64]byte
		copy(prefix[64-off:], b[:off])
		if err := v.Next(prefix[:]); err != nil {
			return err
		}
		pos = off
	}

	// aligned middle: fed straight from b, no copy.
	for pos+64 <= len(b) {
		if err := v.Next(b[pos : pos+64]); err != nil {
			return err
		}
		pos += 64
	}

	// remainder, left-justified in a zero-padded 64-byte block.
	var tail [64]byte
	copy(tail[:], b[pos:])
	if err := v.Next(tail[:]); err != nil {
		return err
	}

	return v.Finish()
}
