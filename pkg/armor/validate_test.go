package armor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCiphertext(t *testing.T) {
	tests := map[string]struct {
		given    []byte
		expected []Problem
	}{
		"Empty": {
			given: []byte{0},
		},
		"One group": {
			given: []byte("!!!!u\x00"),
		},
		"Trailing data ignored": {
			given: []byte("!!!!!\x00\x01\x02"),
		},
		"Short": {
			given:    []byte("!!!!\x00"),
			expected: []Problem{
				{Offset: SizeOffset, Value: 5, Reason: "Invalid size for ciphertext (must follow 5m + 1)"},
			},
		},
		"Out of range": {
			given:    []byte(" !!!v\x00"),
			expected: []Problem{
				{Offset: 0, Value: ' ', Reason: "Invalid character for ciphertext ('!' to 'u' inclusively)"},
				{Offset: 4, Value: 'v', Reason: "Invalid character for ciphertext ('!' to 'u' inclusively)"},
			},
		},
		"Size and range": {
			given:    []byte("~\x00"),
			expected: []Problem{
				{Offset: SizeOffset, Value: 2, Reason: "Invalid size for ciphertext (must follow 5m + 1)"},
				{Offset: 0, Value: '~', Reason: "Invalid character for ciphertext ('!' to 'u' inclusively)"},
			},
		},
		"Unterminated": {
			given:    []byte("!!!!!"),
			expected: []Problem{
				{Offset: SizeOffset, Value: 5, Reason: "Missing NUL terminator in buffer of size"},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			report := ValidateCiphertext(tc.given)
			assert.Equal(t, tc.expected, report.Problems)
			assert.Equal(t, len(tc.expected) == 0, report.Valid())
			assert.Equal(t, report.Valid(), IsValidCiphertext(tc.given))
			if report.Valid() {
				assert.NoError(t, report.Err())
			} else {
				assert.ErrorIs(t, report.Err(), ErrInvalidCiphertext)
				assert.NotErrorIs(t, report.Err(), ErrInvalidPlaintext)
				t.Log(report)
			}
		})
	}
}

func TestValidatePlaintext(t *testing.T) {
	tests := map[string]struct {
		given    []byte
		expected []Problem
	}{
		"Empty": {
			given: []byte{0},
		},
		"Printable and whitespace": {
			given: []byte("Hello,\tworld!\r\n\v\f ~\x00"),
		},
		"Stops at first NUL": {
			given: []byte("ok\x00\x01"),
		},
		"Control characters": {
			given:    []byte("a\x01b\x7f\x00"),
			expected: []Problem{
				{Offset: 1, Value: 0x01, Reason: "Invalid character for plaintext"},
				{Offset: 3, Value: 0x7f, Reason: "Invalid character for plaintext"},
			},
		},
		"High bytes": {
			given:    []byte("\xc3\xa9\x00"),
			expected: []Problem{
				{Offset: 0, Value: 0xc3, Reason: "Invalid character for plaintext"},
				{Offset: 1, Value: 0xa9, Reason: "Invalid character for plaintext"},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			report := ValidatePlaintext(tc.given)
			assert.Equal(t, tc.expected, report.Problems)
			assert.Equal(t, report.Valid(), IsValidPlaintext(tc.given))
			if !report.Valid() {
				assert.ErrorIs(t, report.Err(), ErrInvalidPlaintext)
			}
		})
	}
}

func TestReport_String(t *testing.T) {
	assert.Equal(t, "valid", Report{}.String())
	assert.NoError(t, Report{}.Err())

	report := ValidateCiphertext([]byte("~\x00"))
	assert.Equal(t, "Invalid size for ciphertext (must follow 5m + 1): 2\nInvalid character for ciphertext ('!' to 'u' inclusively) at offset 0: '~' (0x7e)", report.String())
}
