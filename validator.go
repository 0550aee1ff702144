package simdutf8

// Validator is a stateful UTF-8 validator that consumes input 64 bytes at a
// time. It carries just enough state between calls to [Validator.Next] to
// catch multibyte sequences that straddle a chunk boundary: the trailing
// 16-byte lookback window (previous) and a flag vector marking lead bytes
// still waiting on their continuation bytes (incomplete).
//
// The zero value is ready to use. A Validator is not safe for concurrent
// use by multiple goroutines.
type Validator struct {
	err        v16
	previous   v16
	incomplete v16
}

// NewValidator returns a ready-to-use Validator. Equivalent to new(Validator).
func NewValidator() *Validator {
	return &Validator{}
}

// Next validates a single 64-byte chunk. It panics if len(chunk) != 64: that
// is a programming error in the caller, not a data condition, so it is
// never reported through the returned error.
//
// Next never returns a descriptive error; see [ErrInvalid].
func (v *Validator) Next(chunk []byte) error {
	if len(chunk) != 64 {
		panic("simdutf8: Next requires a 64-byte chunk")
	}

	if isASCII(chunk) {
		// Deliberately leaves err/previous/incomplete untouched: a run of
		// pure ASCII can neither introduce nor resolve an error, and
		// carries no lookback a later chunk could need.
		return nil
	}

	var blocks [4]v16
	copy(blocks[0][:], chunk[0:16])
	copy(blocks[1][:], chunk[16:32])
	copy(blocks[2][:], chunk[32:48])
	copy(blocks[3][:], chunk[48:64])

	prev := v.previous
	v.validateBlock(blocks[0], prev)
	v.validateBlock(blocks[1], blocks[0])
	v.validateBlock(blocks[2], blocks[1])
	v.validateBlock(blocks[3], blocks[2])

	v.incomplete = isIncomplete(blocks[3])
	v.previous = blocks[3]

	return v.checkError()
}

// Finish must be called once after the last call to Next. Any multibyte
// sequence still awaiting continuation bytes at end of input is an error.
func (v *Validator) Finish() error {
	v.err.orAssign(v.incomplete)
	return v.checkError()
}

func (v *Validator) checkError() error {
	if !v.err.isZero() {
		return ErrInvalid
	}
	return nil
}

// validateBlock runs the UTF-8 state machine over one 16-byte block and ORs
// any error bits it finds into v.err.
func (v *Validator) validateBlock(data, previous v16) {
	prev1 := data.prev(1, previous)
	sc := specialCases(data, prev1)
	v.err.orAssign(multibyteLengths(data, previous, sc))
}

// isIncomplete reports, per lane, whether the last few bytes of data could
// be the start of a multibyte sequence that hasn't received all of its
// continuation bytes yet. Only the last three lanes can be nonzero here:
// a 4-byte lead in lane 13 needs 3 more bytes, a 3-byte lead in lane 14
// needs 2 more, a 2-byte lead in lane 15 needs 1 more, and any of those
// found earlier than lane 13 already has its continuation bytes within
// this same 16-byte block.
func isIncomplete(data v16) v16 {
	return data.saturatingSub(incompleteThreshold)
}

// specialCases flags byte pairs that can never legally appear adjacent in
// UTF-8, by combining three lookups keyed on the high/low nibbles of the
// first byte and the high nibble of the second.
func specialCases(data, previous v16) v16 {
	b1High := previous.shr4().lookup16(byte1High)
	b1Low := previous.and(broadcast(0x0f)).lookup16(byte1Low)
	b2High := data.shr4().lookup16(byte2High)
	return b1High.and(b1Low).and(b2High)
}

// multibyteLengths folds in the bits specialCases can't see: whether each
// byte actually sits in the third or fourth position of a multibyte
// sequence that requires it to be a continuation byte. XORing
// mustBeContinuation against specialCases' twoContinuations bit (0x80) turns "should be a
// continuation but isn't" and "shouldn't be a continuation but is" into the
// same error signal specialCases already uses for adjacent-byte mismatches.
func multibyteLengths(data, previous, sc v16) v16 {
	prev2 := data.prev(2, previous)
	prev3 := data.prev(3, previous)
	must := mustBe2Or3Continuation(prev2, prev3)
	mustBeContinuation := must.and(broadcast(0x80))
	return mustBeContinuation.xor(sc)
}

// mustBe2Or3Continuation marks, per lane, whether that byte must be a
// continuation byte because it's the third byte of a 3+-byte sequence or
// the fourth byte of a 4-byte sequence. previous2/previous3 are the bytes
// two and three positions back. Only bit 7 of the result carries the
// answer: it is set exactly where the byte two back is 0xe0 or above, or
// the byte three back is 0xf0 or above. The lower bits are nonzero for many
// other bytes and are masked off by multibyteLengths.
func mustBe2Or3Continuation(previous2, previous3 v16) v16 {
	isThirdByte := previous2.saturatingSub(broadcast(0xe0 - 0x80))
	isFourthByte := previous3.saturatingSub(broadcast(0xf0 - 0x80))
	return isThirdByte.or(isFourthByte)
}
