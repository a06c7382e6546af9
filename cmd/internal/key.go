package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseKey parses a key given as a decimal, or a 0x prefixed hexadecimal, unsigned 64-bit integer.
func ParseKey(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, fmt.Errorf("empty key")
	}
	key, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid key '%s', must be an unsigned 64-bit integer: %w", s, err)
	}
	return key, nil
}
