package passkey

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"
	"github.com/saylorsolutions/streamarmor/pkg/radix"
)

const profileVersion uint8 = 1

// ProfileSize is the length of a marshaled Profile.
const ProfileSize = 1 + 8 + 1 + 1 + 1 + int(SaltSize)

var (
	ErrInvalidProfile = errors.New("invalid key profile")
)

// Profile is everything needed to derive a key from a passphrase, except the passphrase.
type Profile struct {
	version uint8
	gen     KeyGenerator
	saltLen uint8
	salt    Salt
}

func (p *Profile) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Byte(&p.version),
		p.gen.mapper(),
		bin.Byte(&p.saltLen),
	)
}

// DeriveKey will recover the key with the given passphrase.
// This doesn't ensure that the given passphrase is the *correct* passphrase, a wrong one just produces a different key.
func (p *Profile) DeriveKey(pass Passphrase) (uint64, error) {
	return p.gen.derive(pass, p.salt)
}

// Salt returns a copy of the salt in this Profile.
func (p *Profile) Salt() Salt {
	return bytes.Clone(p.salt)
}

func (p *Profile) MarshalBinary() ([]byte, error) {
	if int(p.saltLen) != len(p.salt) {
		return nil, fmt.Errorf("%w: salt length %d doesn't match recorded length %d", ErrInvalidProfile, len(p.salt), p.saltLen)
	}
	var buf bytes.Buffer
	if err := p.mapper().Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	buf.Write(p.salt)
	return buf.Bytes(), nil
}

func (p *Profile) UnmarshalBinary(data []byte) error {
	if len(data) != ProfileSize {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidProfile, ProfileSize, len(data))
	}
	var loaded Profile
	r := bytes.NewReader(data)
	if err := loaded.mapper().Read(r, binary.BigEndian); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if loaded.version != profileVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidProfile, loaded.version)
	}
	if loaded.saltLen != SaltSize {
		return fmt.Errorf("%w: unexpected salt length %d", ErrInvalidProfile, loaded.saltLen)
	}
	if err := loaded.gen.validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	loaded.salt = make(Salt, loaded.saltLen)
	if _, err := io.ReadFull(r, loaded.salt); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	*p = loaded
	return nil
}

// String armors the Profile as printable text.
func (p *Profile) String() string {
	data, err := p.MarshalBinary()
	if err != nil {
		return ""
	}
	armored, err := radix.Encode(data)
	if err != nil {
		return ""
	}
	return string(armored)
}

// ParseProfile reads a Profile from the text produced by Profile.String.
func ParseProfile(s string) (*Profile, error) {
	if len(s) != radix.EncodedLen(ProfileSize) {
		return nil, fmt.Errorf("%w: expected %d characters, got %d", ErrInvalidProfile, radix.EncodedLen(ProfileSize), len(s))
	}
	for i := 0; i < len(s); i++ {
		if !radix.IsDigit(s[i]) {
			return nil, fmt.Errorf("%w: invalid character %q at offset %d", ErrInvalidProfile, s[i], i)
		}
	}
	data, err := radix.Decode([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	p := new(Profile)
	if err := p.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return p, nil
}
