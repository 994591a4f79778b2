// Package aadhaar validates the structure of 12-digit Aadhaar numbers
// using the Verhoeff checksum. It checks structural validity only; it does
// not verify that a number has actually been issued.
package aadhaar

// Result classifies the outcome of validating an Aadhaar number.
type Result int

const (
	// Valid means the input is 12 digits and the Verhoeff checksum holds.
	Valid Result = iota
	// InvalidFormat means the input is not exactly 12 ASCII digits.
	InvalidFormat
	// InvalidChecksum means the input is 12 digits but fails the checksum.
	InvalidChecksum
)

func (r Result) String() string {
	switch r {
	case Valid:
		return "valid"
	case InvalidFormat:
		return "invalid_format"
	case InvalidChecksum:
		return "invalid_checksum"
	default:
		return "unknown"
	}
}

// Message returns the user-facing explanation for the result.
func (r Result) Message() string {
	switch r {
	case Valid:
		return "Aadhaar number verified successfully."
	case InvalidFormat:
		return "Invalid Aadhaar format. Must be 12 digits."
	case InvalidChecksum:
		return "Invalid Aadhaar number. Please check the number and try again."
	default:
		return "unknown result"
	}
}

// Standard Verhoeff tables: the multiplication table of the dihedral group
// D5 and the 8-row permutation table. Any deviation from these values would
// silently accept or reject wrong numbers.
var multiplicationTable = [10][10]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
	{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
	{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
	{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
	{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
	{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
	{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
	{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
	{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
}

var permutationTable = [8][10]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
	{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
	{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
	{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
	{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
	{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
	{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
}

// Validate checks an Aadhaar number for structural validity. The input must
// be exactly 12 ASCII decimal digits; the digits are then run through the
// Verhoeff checksum from right to left, and the number is valid iff the
// final checksum is zero.
func Validate(id string) Result {
	if len(id) != 12 {
		return InvalidFormat
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return InvalidFormat
		}
	}

	checksum := 0
	// Digits are processed right to left; position index feeds the
	// permutation table modulo 8.
	for i := 0; i < 12; i++ {
		digit := int(id[11-i] - '0')
		checksum = multiplicationTable[checksum][permutationTable[i%8][digit]]
	}
	if checksum != 0 {
		return InvalidChecksum
	}
	return Valid
}
