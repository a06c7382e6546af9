package tmpl

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/saylorsolutions/streamarmor/pkg/armor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMessage = "A test message that should be armored"

func writeInput(t *testing.T, name string, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))
	return path
}

func TestGenerateFile(t *testing.T) {
	input := writeInput(t, "super-secret.txt", testMessage)
	outDir := t.TempDir()

	err := GenerateFile(input, UseKey(51323), PackageName("secrets"), OutputDir(outDir))
	require.NoError(t, err)

	generated, err := os.ReadFile(filepath.Join(outDir, "super_secret_txt.go"))
	require.NoError(t, err)
	src := string(generated)
	t.Log(src)
	assert.Contains(t, src, "// Code generated by armorgen. DO NOT EDIT.")
	assert.Contains(t, src, "package secrets")
	assert.Contains(t, src, "keySuper_secret_txt")
	assert.Contains(t, src, "0xc87b")
	assert.Contains(t, src, "func unarmorSuper_secret_txt() (string, error)")

	_, err = parser.ParseFile(token.NewFileSet(), "super_secret_txt.go", generated, parser.AllErrors)
	assert.NoError(t, err)
}

func TestNewParams(t *testing.T) {
	input := writeInput(t, "message", testMessage)

	params, err := newParams(input, UseKey(51323), ExposeFunctions())
	require.NoError(t, err)
	assert.Equal(t, "Message", params.FileMethodName)
	assert.Equal(t, "message", params.targetFileName)
	assert.Equal(t, "UnarmorMessage", params.FuncName())

	plaintext, report, err := armor.DecodeString(params.DataString, params.Key)
	require.NoError(t, err)
	assert.True(t, report.Valid())
	assert.Equal(t, testMessage, plaintext)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, params))
	assert.Contains(t, buf.String(), "func UnarmorMessage() (string, error)")
}

func TestNewParams_RandomKey(t *testing.T) {
	input := writeInput(t, "message", testMessage)

	a, err := newParams(input)
	require.NoError(t, err)
	b, err := newParams(input, RandomKey())
	require.NoError(t, err)
	assert.NotEqual(t, a.Key, b.Key)
	assert.NotEqual(t, a.DataString, b.DataString)

	plaintext, _, err := armor.DecodeString(b.DataString, b.Key)
	require.NoError(t, err)
	assert.Equal(t, testMessage, plaintext)
}

func TestNewParams_Neg(t *testing.T) {
	_, err := newParams(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	_, err = newParams(writeInput(t, "binary", "abc\x00def"), UseKey(1))
	assert.ErrorIs(t, err, ErrNulInput)

	_, err = newParams(writeInput(t, "control", "abc\x01def"), UseKey(1))
	assert.ErrorIs(t, err, armor.ErrInvalidPlaintext)
}

func TestPackageName(t *testing.T) {
	params := &Params{Package: "original"}
	require.NoError(t, PackageName("  ")(params))
	assert.Equal(t, "original", params.Package)
	require.NoError(t, PackageName(" other ")(params))
	assert.Equal(t, "other", params.Package)
}

func TestUnicap(t *testing.T) {
	assert.Equal(t, "", unicap(""))
	assert.Equal(t, "A", unicap("a"))
	assert.Equal(t, "Super-secret.txt", unicap("super-secret.txt"))
}
