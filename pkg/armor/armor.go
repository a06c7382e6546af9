package armor

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/saylorsolutions/streamarmor/pkg/keystream"
	"github.com/saylorsolutions/streamarmor/pkg/radix"
)

const terminator byte = 0

var (
	ErrUnterminated = errors.New("buffer is not NUL terminated")
)

// Plaintext is a NUL terminated message.
type Plaintext []byte

// String returns the message up to, and not including, the first NUL.
func (p Plaintext) String() string {
	return string(untilTerminator(p))
}

// Ciphertext is an armored, NUL terminated, encrypted message.
type Ciphertext []byte

// String returns the armored text up to, and not including, the first NUL.
func (c Ciphertext) String() string {
	return string(untilTerminator(c))
}

// Encode will encrypt and armor the plaintext with the given key.
// Only the bytes up to and including the first NUL are used, and an error is returned if there is no NUL.
// The returned Report describes any structural problems with the result, which is returned either way.
func Encode(plaintext []byte, key uint64, opts ...Option) (Ciphertext, Report, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, Report{}, err
	}
	size, err := storedLen(plaintext)
	if err != nil {
		return nil, Report{}, fmt.Errorf("unable to encode plaintext: %w", err)
	}

	groups := (size - 1 + radix.GroupSize - 1) / radix.GroupSize
	padded := make([]byte, groups*radix.GroupSize)
	copy(padded, plaintext[:size])
	keystream.Apply(key, padded)

	armored, err := radix.Encode(padded)
	if err != nil {
		return nil, Report{}, err
	}
	ciphertext := append(Ciphertext(armored), terminator)

	report := ValidateCiphertext(ciphertext)
	o.logReport("encode", report)
	o.logger.Debug("Encoded message",
		slog.Int("plaintext_len", size),
		slog.Int("groups", groups),
		slog.Int("ciphertext_len", len(ciphertext)),
	)
	return ciphertext, report, nil
}

// Decode will remove the armor from the ciphertext and decrypt it with the given key.
// Only the bytes up to and including the first NUL are used, and an error is returned if there is no NUL.
// Trailing characters that don't make up a full group are ignored.
// The returned Plaintext is always NUL terminated, and the Report describes any problems with its content.
func Decode(ciphertext []byte, key uint64, opts ...Option) (Plaintext, Report, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, Report{}, err
	}
	size, err := storedLen(ciphertext)
	if err != nil {
		return nil, Report{}, fmt.Errorf("unable to decode ciphertext: %w", err)
	}

	groups := (size - 1) / radix.EncodedGroupSize
	dataLen := groups * radix.GroupSize
	plaintext := make(Plaintext, dataLen+1)
	for g := 0; g < groups; g++ {
		src := ciphertext[g*radix.EncodedGroupSize : (g+1)*radix.EncodedGroupSize]
		if err := radix.DecodeGroup(plaintext[g*radix.GroupSize:], src); err != nil {
			return nil, Report{}, err
		}
	}
	keystream.Apply(key, plaintext[:dataLen])
	plaintext[dataLen] = terminator

	report := ValidatePlaintext(plaintext)
	o.logReport("decode", report)
	o.logger.Debug("Decoded message",
		slog.Int("ciphertext_len", size),
		slog.Int("groups", groups),
		slog.Int("plaintext_len", len(plaintext)),
	)
	return plaintext, report, nil
}

// EncodeString is a convenience wrapper for Encode that terminates s for the caller.
// The returned string doesn't include the terminator.
func EncodeString(s string, key uint64, opts ...Option) (string, Report, error) {
	ciphertext, report, err := Encode(append([]byte(s), terminator), key, opts...)
	if err != nil {
		return "", report, err
	}
	return ciphertext.String(), report, nil
}

// DecodeString is a convenience wrapper for Decode that terminates s for the caller.
// The returned string doesn't include the terminator.
func DecodeString(s string, key uint64, opts ...Option) (string, Report, error) {
	plaintext, report, err := Decode(append([]byte(s), terminator), key, opts...)
	if err != nil {
		return "", report, err
	}
	return plaintext.String(), report, nil
}

// storedLen is the index of the first NUL plus one.
func storedLen(buf []byte) (int, error) {
	idx := bytes.IndexByte(buf, terminator)
	if idx < 0 {
		return 0, fmt.Errorf("%w: no NUL found in %d bytes", ErrUnterminated, len(buf))
	}
	return idx + 1, nil
}

func untilTerminator(buf []byte) []byte {
	if idx := bytes.IndexByte(buf, terminator); idx >= 0 {
		return buf[:idx]
	}
	return buf
}
