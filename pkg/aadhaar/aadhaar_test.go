package aadhaar

import "testing"

func TestValidate_KnownValidNumbers(t *testing.T) {
	valid := []string{
		"234567890124",
		"999999999999",
		"123456789010",
		"500512345676",
	}
	for _, id := range valid {
		if got := Validate(id); got != Valid {
			t.Errorf("Validate(%q) = %v, want Valid", id, got)
		}
	}
}

func TestValidate_InvalidChecksum(t *testing.T) {
	invalid := []string{
		"111111111111",
		"234567890123",
		"123456789012",
	}
	for _, id := range invalid {
		if got := Validate(id); got != InvalidChecksum {
			t.Errorf("Validate(%q) = %v, want InvalidChecksum", id, got)
		}
	}
}

func TestValidate_InvalidFormat(t *testing.T) {
	cases := []string{
		"",
		"12345678901",    // 11 digits
		"1234567890123",  // 13 digits
		"12345678901a",   // trailing letter
		"1234 5678 9012", // spaces
		"-23456789012",
	}
	for _, id := range cases {
		if got := Validate(id); got != InvalidFormat {
			t.Errorf("Validate(%q) = %v, want InvalidFormat", id, got)
		}
	}
}

// The Verhoeff algorithm detects all single-digit substitutions: changing
// any one digit of a valid number must break the checksum.
func TestValidate_DetectsSingleDigitErrors(t *testing.T) {
	const id = "234567890124"
	for pos := 0; pos < len(id); pos++ {
		for d := byte('0'); d <= '9'; d++ {
			if id[pos] == d {
				continue
			}
			mutated := id[:pos] + string(d) + id[pos+1:]
			if Validate(mutated) == Valid {
				t.Errorf("Validate(%q) valid after changing digit %d of %q", mutated, pos, id)
			}
		}
	}
}

func TestValidate_DetectsAdjacentTranspositions(t *testing.T) {
	const id = "500512345676"
	for pos := 0; pos < len(id)-1; pos++ {
		if id[pos] == id[pos+1] {
			continue
		}
		swapped := []byte(id)
		swapped[pos], swapped[pos+1] = swapped[pos+1], swapped[pos]
		if Validate(string(swapped)) == Valid {
			t.Errorf("Validate(%q) valid after transposing positions %d,%d", swapped, pos, pos+1)
		}
	}
}

func TestResultMessage(t *testing.T) {
	if Valid.Message() == "" || InvalidFormat.Message() == "" || InvalidChecksum.Message() == "" {
		t.Error("expected non-empty messages for all results")
	}
	if Valid.String() != "valid" {
		t.Errorf("unexpected String(): %s", Valid.String())
	}
}
