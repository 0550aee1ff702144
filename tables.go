package simdutf8

// Error bit layout used internally by specialCases and multibyteLengths.
// These never leak past the package boundary: see errors.go.
const (
	tooShort      byte = 1 << 0 // 11______ 0_______  /  11______ 11______
	tooLong       byte = 1 << 1 // 0_______ 10______
	overlong3     byte = 1 << 2 // 11100000 100_____
	tooLarge      byte = 1 << 3 // second byte of a too-large 4-byte sequence
	surrogate     byte = 1 << 4 // 11101101 101_____
	overlong2     byte = 1 << 5 // 1100000_ 10______
	tooLarge1000  byte = 1 << 6 // second byte of a too-large 4-byte sequence starting 1000____
	overlong4     byte = 1 << 6 // 11110000 1000____ — aliases tooLarge1000, the two lead bytes are disjoint
	twoContinuations byte = 1 << 7 // 10______ 10______
)

// carry collects the three error bits whose byte_1_high contribution doesn't
// depend on the low nibble of byte 1; byte1Low ORs it into every row so the
// two tables can be ANDed together.
const carry = tooShort | tooLong | twoContinuations

// byte1High classifies byte 1 of a two-byte window by its high nibble
// (0..15, i.e. byte1>>4).
var byte1High = v16{
	// 0_______ <ASCII in byte 1>
	tooLong, tooLong, tooLong, tooLong,
	tooLong, tooLong, tooLong, tooLong,
	// 10______ <continuation in byte 1>
	twoContinuations, twoContinuations, twoContinuations, twoContinuations,
	// 1100____ <two byte lead>
	tooShort | overlong2,
	// 1101____ <two byte lead>
	tooShort,
	// 1110____ <three byte lead>
	tooShort | overlong3 | surrogate,
	// 1111____ <four+ byte lead>
	tooShort | tooLarge | tooLarge1000 | overlong4,
}

// byte1Low classifies byte 1 of a two-byte window by its low nibble
// (byte1&0x0f).
var byte1Low = v16{
	// ____0000
	carry | overlong3 | overlong2 | overlong4,
	// ____0001
	carry | overlong2,
	// ____001_
	carry,
	carry,
	// ____0100
	carry | tooLarge,
	// ____0101
	carry | tooLarge | tooLarge1000,
	// ____011_
	carry | tooLarge | tooLarge1000,
	carry | tooLarge | tooLarge1000,
	// ____1___
	carry | tooLarge | tooLarge1000,
	carry | tooLarge | tooLarge1000,
	carry | tooLarge | tooLarge1000,
	carry | tooLarge | tooLarge1000,
	carry | tooLarge | tooLarge1000,
	// ____1101
	carry | tooLarge | tooLarge1000 | surrogate,
	carry | tooLarge | tooLarge1000,
	carry | tooLarge | tooLarge1000,
}

// byte2High classifies byte 2 of a two-byte window by its high nibble.
var byte2High = v16{
	// 0_______ <ASCII in byte 2>
	tooShort, tooShort, tooShort, tooShort,
	tooShort, tooShort, tooShort, tooShort,
	// 1000____
	tooLong | overlong2 | twoContinuations | overlong3 | tooLarge1000 | overlong4,
	// 1001____
	tooLong | overlong2 | twoContinuations | overlong3 | tooLarge,
	// 101_____
	tooLong | overlong2 | twoContinuations | surrogate | tooLarge,
	tooLong | overlong2 | twoContinuations | surrogate | tooLarge,
	// 11______
	tooShort, tooShort, tooShort, tooShort,
}

// incompleteThreshold holds, for each of the last three lanes of a 16-byte
// chunk, the largest byte value that cannot possibly start a multibyte
// sequence still awaiting continuation bytes at the end of the chunk.
// saturatingSub against this vector is nonzero exactly at lead bytes of
// sequences whose continuation bytes (3, 2 or 1 more, respectively) haven't
// arrived yet.
var incompleteThreshold = v16{
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255,
	0xf0 - 1, 0xe0 - 1, 0xc0 - 1,
}
