//go:build goexperiment.simd && amd64

package simdutf8

import (
	"simd/archsimd"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// =============================================================================
// AVX-512 CPU Detection and Fallback
// =============================================================================
//
// NOTE: The simd/archsimd package in Go 1.26 is an experimental feature enabled
// via GOEXPERIMENT=simd. It is AMD64-specific; a higher-level portable SIMD
// package is tracked at https://github.com/golang/go/issues/73787.
//
// NOTE: archsimd.Int8x32's comparison methods (Equal, Less, ...) lower to
// mask instructions like VPMOVB2M, which require AVX-512BW and raise
// SIGILL on CPUs without it (this includes most CI runners). useAVX512
// gates every call into the SIMD path so that a plain scalar OR-reduce
// runs instead on anything older.
// =============================================================================

// useAVX512 indicates whether AVX-512 instructions are available at runtime.
// Set once at init time and used to dispatch isASCII.
var useAVX512 bool

// asciiBackend names the isASCII implementation in use, reported by tests
// the same way the teacher reports useAVX512.
var asciiBackend string

func init() {
	useAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL
	if useAVX512 {
		asciiBackend = "avx512"
	} else {
		asciiBackend = "scalar"
	}
}

// isASCII reports whether every byte in a 64-byte chunk has its high bit
// clear, dispatching to AVX-512 when available and a scalar OR-reduce
// otherwise.
func isASCII(chunk []byte) bool {
	if useAVX512 {
		return isASCIIAVX512(chunk)
	}
	return isASCIIScalar(chunk)
}

// isASCIIAVX512 compares both 32-byte halves of chunk against zero as
// signed bytes: a byte with its high bit set is negative as an int8, so
// "chunk is ASCII-only" is exactly "no lane compares less than zero" in
// both halves.
func isASCIIAVX512(chunk []byte) bool {
	zero := archsimd.BroadcastInt8x32(0)

	low := archsimd.LoadInt8x32((*[32]int8)(unsafe.Pointer(&chunk[0])))
	high := archsimd.LoadInt8x32((*[32]int8)(unsafe.Pointer(&chunk[32])))

	lowMask := low.Less(zero).ToBits()
	highMask := high.Less(zero).ToBits()

	return lowMask == 0 && highMask == 0
}

func isASCIIScalar(chunk []byte) bool {
	var acc byte
	for _, b := range chunk {
		acc |= b
	}
	return acc&0x80 == 0
}
