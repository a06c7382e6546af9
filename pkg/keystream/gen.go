package keystream

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// GenKey will generate a random key using the OS entropy pool.
func GenKey() (uint64, error) {
	buf := make([]byte, keyBits/8)
	n, err := io.ReadFull(rand.Reader, buf)
	if err != nil {
		return 0, fmt.Errorf("failed to read requested bytes (%d of %d): %w", n, len(buf), err)
	}
	return binary.BigEndian.Uint64(buf), nil
}
