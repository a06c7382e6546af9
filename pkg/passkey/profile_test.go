package passkey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Binary(t *testing.T) {
	gen, err := NewKeyGenerator(SetIterations(1<<4), SetCPUCost(2), SetRelativeBlockSize(9))
	require.NoError(t, err)
	profile, key, err := gen.GenerateKey(Passphrase("password"))
	require.NoError(t, err)

	data, err := profile.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, ProfileSize)
	assert.Equal(t, profileVersion, data[0])

	loaded := new(Profile)
	require.NoError(t, loaded.UnmarshalBinary(data))
	assert.Equal(t, profile, loaded)

	derived, err := loaded.DeriveKey(Passphrase("password"))
	require.NoError(t, err)
	assert.Equal(t, key, derived)
}

func TestProfile_String(t *testing.T) {
	profile, key, err := fastGenerator(t).GenerateKey(Passphrase("password"))
	require.NoError(t, err)

	text := profile.String()
	assert.Len(t, text, 35)
	t.Log("Profile:", text)

	parsed, err := ParseProfile(text)
	require.NoError(t, err)
	derived, err := parsed.DeriveKey(Passphrase("password"))
	require.NoError(t, err)
	assert.Equal(t, key, derived)
}

func TestParseProfile_Neg(t *testing.T) {
	profile, _, err := fastGenerator(t).GenerateKey(Passphrase("password"))
	require.NoError(t, err)
	valid := profile.String()

	data, err := profile.MarshalBinary()
	require.NoError(t, err)
	badVersion := new(Profile)
	require.NoError(t, badVersion.UnmarshalBinary(data))
	badVersion.version = 2

	badIterations := new(Profile)
	require.NoError(t, badIterations.UnmarshalBinary(data))
	badIterations.gen.iterations = 3

	tests := map[string]string{
		"Empty":          "",
		"Too short":      valid[:30],
		"Too long":       valid + "!!!!!",
		"Bad character":  "~" + valid[1:],
		"Bad version":    badVersion.String(),
		"Bad iterations": badIterations.String(),
		"Whitespace":     strings.Repeat(" ", 35),
	}

	for name, given := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseProfile(given)
			assert.ErrorIs(t, err, ErrInvalidProfile)
		})
	}
}

func TestProfile_MarshalMismatchedSalt(t *testing.T) {
	profile, _, err := fastGenerator(t).GenerateKey(Passphrase("password"))
	require.NoError(t, err)
	profile.salt = profile.salt[:4]
	_, err = profile.MarshalBinary()
	assert.ErrorIs(t, err, ErrInvalidProfile)
	assert.Equal(t, "", profile.String())
}
