package armor

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/saylorsolutions/streamarmor/pkg/radix"
)

// SizeOffset is the Problem.Offset used for problems that concern a whole buffer rather than a single byte.
const SizeOffset = -1

var (
	ErrInvalidCiphertext = errors.New("invalid ciphertext")
	ErrInvalidPlaintext  = errors.New("invalid plaintext")
)

// Problem is a single structural issue found by a validator.
type Problem struct {
	// Offset is the index of the offending byte, or SizeOffset.
	Offset int
	// Value is the offending byte value, or the offending size when Offset is SizeOffset.
	Value  int
	Reason string
}

func (p Problem) String() string {
	if p.Offset == SizeOffset {
		return fmt.Sprintf("%s: %d", p.Reason, p.Value)
	}
	return fmt.Sprintf("%s at offset %d: %q (0x%02x)", p.Reason, p.Offset, rune(p.Value), p.Value)
}

// Report is the outcome of validating a buffer.
// The zero value is a valid Report.
type Report struct {
	kind     error
	Problems []Problem
}

// Valid returns true if no problems were found.
func (r Report) Valid() bool {
	return len(r.Problems) == 0
}

// Err returns nil for a valid Report, otherwise every problem joined into one error.
// The error matches ErrInvalidCiphertext or ErrInvalidPlaintext with errors.Is, depending on the validator used.
func (r Report) Err() error {
	if r.Valid() {
		return nil
	}
	errs := make([]error, len(r.Problems))
	for i, p := range r.Problems {
		errs[i] = fmt.Errorf("%w: %s", r.kind, p)
	}
	return errors.Join(errs...)
}

func (r Report) String() string {
	if r.Valid() {
		return "valid"
	}
	lines := make([]string, len(r.Problems))
	for i, p := range r.Problems {
		lines[i] = p.String()
	}
	return strings.Join(lines, "\n")
}

func (r *Report) add(offset, value int, reason string) {
	r.Problems = append(r.Problems, Problem{Offset: offset, Value: value, Reason: reason})
}

// ValidateCiphertext checks that data has a stored length of 5m+1, and that every byte before the terminator is within '!' to 'u'.
// Every problem is recorded, validation doesn't stop at the first one.
func ValidateCiphertext(data []byte) Report {
	report := Report{kind: ErrInvalidCiphertext}
	body := checkTerminated(&report, data)
	if size := len(body) + 1; size%radix.EncodedGroupSize != 1 {
		report.add(SizeOffset, size, "Invalid size for ciphertext (must follow 5m + 1)")
	}
	for i, c := range body {
		if !radix.IsDigit(c) {
			report.add(i, int(c), "Invalid character for ciphertext ('!' to 'u' inclusively)")
		}
	}
	return report
}

// ValidatePlaintext checks that every byte before the first NUL is either printable or whitespace.
// Every problem is recorded, validation doesn't stop at the first one.
func ValidatePlaintext(data []byte) Report {
	report := Report{kind: ErrInvalidPlaintext}
	body := checkTerminated(&report, data)
	for i, c := range body {
		if !isPrint(c) && !isSpace(c) {
			report.add(i, int(c), "Invalid character for plaintext")
		}
	}
	return report
}

// IsValidCiphertext is the same as ValidateCiphertext(data).Valid().
func IsValidCiphertext(data []byte) bool {
	return ValidateCiphertext(data).Valid()
}

// IsValidPlaintext is the same as ValidatePlaintext(data).Valid().
func IsValidPlaintext(data []byte) bool {
	return ValidatePlaintext(data).Valid()
}

func checkTerminated(report *Report, data []byte) []byte {
	idx := bytes.IndexByte(data, terminator)
	if idx < 0 {
		report.add(SizeOffset, len(data), "Missing NUL terminator in buffer of size")
		return data
	}
	return data[:idx]
}

// Classification follows the C locale.
func isPrint(c byte) bool {
	return c >= ' ' && c <= '~'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
