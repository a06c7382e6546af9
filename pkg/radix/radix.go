// Package radix converts between raw bytes and a printable base-85 alphabet.
//
// Every group of 4 bytes is read as a big-endian unsigned 32-bit value and written as 5 base-85 digits, most significant first.
// Each digit is offset by '!' (33), so the output only contains the characters '!' through 'u'.
// Since 85^5 exceeds 2^32, every group has exactly one 5 character representation.
package radix

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// GroupSize is the number of raw bytes in a group.
	GroupSize = 4
	// EncodedGroupSize is the number of characters used to encode a group.
	EncodedGroupSize = 5
	// Base is the number of distinct digits.
	Base = 85
	// Offset is the character used for the zero digit.
	Offset = '!'
	// MaxChar is the character used for the highest digit.
	MaxChar = Offset + Base - 1
)

var (
	ErrInvalidLength = errors.New("invalid input length")
)

// EncodedLen returns the encoded length of n source bytes, assuming n is a multiple of GroupSize.
func EncodedLen(n int) int {
	return n / GroupSize * EncodedGroupSize
}

// DecodedLen returns the decoded length of n encoded characters, assuming n is a multiple of EncodedGroupSize.
func DecodedLen(n int) int {
	return n / EncodedGroupSize * GroupSize
}

// EncodeGroup encodes exactly GroupSize bytes from src into the first EncodedGroupSize bytes of dst.
func EncodeGroup(dst, src []byte) error {
	if len(src) != GroupSize {
		return fmt.Errorf("%w: group must be %d bytes, got %d", ErrInvalidLength, GroupSize, len(src))
	}
	if len(dst) < EncodedGroupSize {
		return fmt.Errorf("%w: destination must hold %d bytes, got %d", ErrInvalidLength, EncodedGroupSize, len(dst))
	}
	val := binary.BigEndian.Uint32(src)
	for place := EncodedGroupSize - 1; place >= 0; place-- {
		weight := pow(Base, place)
		digit := val / weight
		val -= digit * weight
		dst[EncodedGroupSize-1-place] = byte(digit) + Offset
	}
	return nil
}

// DecodeGroup decodes exactly EncodedGroupSize characters from src into the first GroupSize bytes of dst.
// Characters are not range checked; out of range input silently decodes to a different value.
func DecodeGroup(dst, src []byte) error {
	if len(src) != EncodedGroupSize {
		return fmt.Errorf("%w: encoded group must be %d characters, got %d", ErrInvalidLength, EncodedGroupSize, len(src))
	}
	if len(dst) < GroupSize {
		return fmt.Errorf("%w: destination must hold %d bytes, got %d", ErrInvalidLength, GroupSize, len(dst))
	}
	var val uint32
	for place := EncodedGroupSize - 1; place >= 0; place-- {
		val += uint32(int32(src[EncodedGroupSize-1-place])-Offset) * pow(Base, place)
	}
	binary.BigEndian.PutUint32(dst, val)
	return nil
}

// Encode encodes all of src, which must have a length that is a multiple of GroupSize.
func Encode(src []byte) ([]byte, error) {
	if len(src)%GroupSize != 0 {
		return nil, fmt.Errorf("%w: source length %d is not a multiple of %d", ErrInvalidLength, len(src), GroupSize)
	}
	dst := make([]byte, EncodedLen(len(src)))
	for si, di := 0, 0; si < len(src); si, di = si+GroupSize, di+EncodedGroupSize {
		if err := EncodeGroup(dst[di:di+EncodedGroupSize], src[si:si+GroupSize]); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// Decode decodes all of src, which must have a length that is a multiple of EncodedGroupSize.
func Decode(src []byte) ([]byte, error) {
	if len(src)%EncodedGroupSize != 0 {
		return nil, fmt.Errorf("%w: source length %d is not a multiple of %d", ErrInvalidLength, len(src), EncodedGroupSize)
	}
	dst := make([]byte, DecodedLen(len(src)))
	for si, di := 0, 0; si < len(src); si, di = si+EncodedGroupSize, di+GroupSize {
		if err := DecodeGroup(dst[di:di+GroupSize], src[si:si+EncodedGroupSize]); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// IsDigit reports whether c is within the encoded alphabet.
func IsDigit(c byte) bool {
	return c >= Offset && c <= MaxChar
}

func pow(base uint32, exp int) uint32 {
	result := uint32(1)
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
