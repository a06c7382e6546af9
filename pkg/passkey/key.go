package passkey

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"
	"golang.org/x/crypto/scrypt"
)

const (
	DefaultLargeIterations       uint64 = 1 << 20
	DefaultInteractiveIterations uint64 = 1 << 15
	DefaultRelBlockSize          uint8  = 8
	DefaultCpuCost               uint8  = 1
	SaltSize                     uint8  = 16
	KeySize                             = 8
)

var (
	ErrEmptyPassPhrase = errors.New("cannot use an empty passphrase")
)

// Passphrase is a human-readable string used to derive a key.
type Passphrase []byte

// Salt is a slice of secure random bytes that is used with scrypt to derive a key from a Passphrase.
type Salt []byte

type KeyGenerator struct {
	iterations        uint64
	relativeBlockSize uint8
	cpuCost           uint8
}

func (g *KeyGenerator) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&g.iterations),
		bin.Byte(&g.relativeBlockSize),
		bin.Byte(&g.cpuCost),
	)
}

func (g *KeyGenerator) validate() error {
	if g.iterations <= 1 {
		return errors.New("iterations cannot be <= 1")
	}
	if g.iterations&(g.iterations-1) != 0 {
		return errors.New("iterations must be a power of 2")
	}
	if g.cpuCost < DefaultCpuCost {
		return errors.New("cpu cost must be at least 1")
	}
	if g.relativeBlockSize < DefaultRelBlockSize {
		return errors.New("relative block size must be at least 8")
	}
	return nil
}

type GeneratorOpt = func(*KeyGenerator) error

// SetLongDelayIterations sets a higher iteration count. This is sufficient for infrequent key derivation.
// This option is much more resistant to password cracking, and is the default.
func SetLongDelayIterations() GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.iterations = DefaultLargeIterations
		return nil
	}
}

// SetShortDelayIterations sets a lower iteration count. This is appropriate for situations where a shorter delay is desired because of frequent key derivations.
// It's recommended to use longer passwords with this approach.
func SetShortDelayIterations() GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.iterations = DefaultInteractiveIterations
		return nil
	}
}

// SetIterations allows the caller to customize the iteration count.
// Only use this option if you know what you're doing.
func SetIterations(iterations uint64) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if iterations <= 1 {
			return errors.New("iterations cannot be <= 1")
		}
		if iterations&(iterations-1) != 0 {
			return errors.New("iterations must be a power of 2")
		}
		gen.iterations = iterations
		return nil
	}
}

// SetCPUCost sets the parallelism factor for key derivation from the default of 1.
// Only use this option if you know what you're doing.
func SetCPUCost(cost uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if cost < DefaultCpuCost {
			return errors.New("cpu cost must be at least 1")
		}
		gen.cpuCost = cost
		return nil
	}
}

// SetRelativeBlockSize sets the relative block size.
// Only use this option if you know what you're doing.
func SetRelativeBlockSize(size uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if size < DefaultRelBlockSize {
			return errors.New("relative block size must be at least 8")
		}
		gen.relativeBlockSize = size
		return nil
	}
}

// NewKeyGenerator creates a new KeyGenerator using the options provided as zero or more GeneratorOpt.
// By default, the generator uses DefaultLargeIterations.
func NewKeyGenerator(opts ...GeneratorOpt) (*KeyGenerator, error) {
	gen := &KeyGenerator{
		iterations:        DefaultLargeIterations,
		relativeBlockSize: DefaultRelBlockSize,
		cpuCost:           DefaultCpuCost,
	}

	for _, opt := range opts {
		if err := opt(gen); err != nil {
			return nil, err
		}
	}
	return gen, nil
}

// GenerateKey will generate a new random salt, and derive a key from it and the passphrase.
// The returned Profile is needed to derive the same key again.
func (g *KeyGenerator) GenerateKey(pass Passphrase) (*Profile, uint64, error) {
	if len(pass) == 0 {
		return nil, 0, ErrEmptyPassPhrase
	}
	salt := make(Salt, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, 0, fmt.Errorf("failed to generate salt: %w", err)
	}
	profile := &Profile{
		version: profileVersion,
		gen:     *g,
		saltLen: SaltSize,
		salt:    salt,
	}
	key, err := profile.DeriveKey(pass)
	if err != nil {
		return nil, 0, err
	}
	return profile, key, nil
}

func (g *KeyGenerator) derive(pass Passphrase, salt Salt) (uint64, error) {
	if len(pass) == 0 {
		return 0, ErrEmptyPassPhrase
	}
	key, err := scrypt.Key(pass, salt, int(g.iterations), int(g.relativeBlockSize), int(g.cpuCost), KeySize)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(key), nil
}
