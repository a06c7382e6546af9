package tmpl

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"unicode"

	"github.com/saylorsolutions/streamarmor/pkg/armor"
	"github.com/saylorsolutions/streamarmor/pkg/keystream"
)

var (
	//go:embed armor_embed.go.tmpl
	tmplText     string
	tmplTemplate = template.Must(template.New("template").Parse(tmplText))
)

var (
	ErrNulInput = errors.New("input contains a NUL byte")
)

type Params struct {
	Package        string
	Exposed        bool
	FileName       string
	FileMethodName string
	Key            uint64
	DataString     string

	keySet         bool
	fileData       []byte
	targetFileName string
	outputDir      string
}

// FuncName is the name of the generated function.
func (p *Params) FuncName() string {
	if p.Exposed {
		return "Unarmor" + p.FileMethodName
	}
	return "unarmor" + p.FileMethodName
}

// ParamOpt operates on Params in a standard and predictable way, and is used in GenerateFile.
// If any ParamOpt returns an error, then file generation ceases and the error is returned.
type ParamOpt = func(params *Params) error

// ExposeFunctions indicates that generated functions should be exposed.
func ExposeFunctions(val ...bool) ParamOpt {
	return func(params *Params) error {
		if len(val) > 0 {
			params.Exposed = val[0]
			return nil
		}
		params.Exposed = true
		return nil
	}
}

// UseKey sets a key to be used instead of generating one randomly.
func UseKey(key uint64) ParamOpt {
	return func(params *Params) error {
		params.Key = key
		params.keySet = true
		return nil
	}
}

// RandomKey generates a random key.
func RandomKey() ParamOpt {
	return randomKey
}

// PackageName specifies the package name of the generated file.
// This is useful for cases where the expected package name doesn't match the name of the containing directory.
func PackageName(name string) ParamOpt {
	name = strings.TrimSpace(name)
	return func(params *Params) error {
		if len(name) == 0 {
			return nil
		}
		params.Package = name
		return nil
	}
}

// OutputDir specifies the directory where the generated file is written, instead of the current directory.
func OutputDir(dir string) ParamOpt {
	dir = strings.TrimSpace(dir)
	return func(params *Params) error {
		if len(dir) == 0 {
			return nil
		}
		params.outputDir = dir
		return nil
	}
}

// GenerateFile will generate a file embedding the armored input file.
// Various generation options may be passed as zero or more ParamOpt.
func GenerateFile(input string, opts ...ParamOpt) error {
	params, err := newParams(input, opts...)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := render(&buf, params); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(params.outputDir, params.targetFileName+".go"), buf.Bytes(), 0644)
}

func newParams(input string, opts ...ParamOpt) (*Params, error) {
	params := new(Params)
	if err := populateContextData(params); err != nil {
		return nil, err
	}
	if err := populateFileData(params, input); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err := opt(params); err != nil {
			return nil, err
		}
	}

	if !params.keySet {
		if err := randomKey(params); err != nil {
			return nil, err
		}
	}
	if err := armorData(params); err != nil {
		return nil, err
	}
	return params, nil
}

func render(w io.Writer, params *Params) error {
	var buf bytes.Buffer
	if err := tmplTemplate.Execute(&buf, params); err != nil {
		return err
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("generated code is invalid: %w", err)
	}
	_, err = w.Write(formatted)
	return err
}

func populateContextData(params *Params) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	params.Package = filepath.Base(cwd)
	params.outputDir = cwd
	return nil
}

var (
	fileCleansePattern = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

func populateFileData(params *Params, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	params.fileData = data
	_, fname := filepath.Split(file)
	params.FileName = fname
	params.FileMethodName = fileCleansePattern.ReplaceAllString(unicap(fname), "_")
	params.targetFileName = fileCleansePattern.ReplaceAllString(fname, "_")
	return nil
}

func randomKey(params *Params) error {
	key, err := keystream.GenKey()
	if err != nil {
		return err
	}
	params.Key = key
	params.keySet = true
	return nil
}

func armorData(params *Params) error {
	if idx := bytes.IndexByte(params.fileData, 0); idx >= 0 {
		return fmt.Errorf("%w at offset %d, only text may be embedded", ErrNulInput, idx)
	}
	plaintext := append(bytes.Clone(params.fileData), 0)
	if err := armor.ValidatePlaintext(plaintext).Err(); err != nil {
		return err
	}
	ciphertext, report, err := armor.Encode(plaintext, params.Key)
	if err != nil {
		return err
	}
	if err := report.Err(); err != nil {
		return err
	}
	params.DataString = ciphertext.String()
	return nil
}

func unicap(s string) string {
	runes := []rune(s)
	switch len(runes) {
	case 0:
		return ""
	case 1:
		return string(unicode.ToUpper(runes[0]))
	default:
		return string(append([]rune{unicode.ToUpper(runes[0])}, runes[1:]...))
	}
}
