package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saylorsolutions/streamarmor/cmd/internal"
	"github.com/saylorsolutions/streamarmor/pkg/armor"
	"github.com/saylorsolutions/streamarmor/pkg/keystream"
	"github.com/saylorsolutions/streamarmor/pkg/passkey"
	flag "github.com/spf13/pflag"
)

const keyEnv = "STREAMARMOR_KEY"

var version = "dev"

type settings struct {
	key        string
	passphrase string
	profile    string
	file       string
	strict     bool
	shortDelay bool
	args       []string
}

func main() {
	var (
		helpFlag    bool
		verboseFlag bool
		cfg         settings
	)
	flags := flag.NewFlagSet("streamarmor", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.StringVarP(&cfg.key, "key", "k", "", fmt.Sprintf("Numeric key, either decimal or 0x prefixed hex. Falls back to the %s environment variable.", keyEnv))
	flags.StringVarP(&cfg.passphrase, "passphrase", "p", "", "Derive the key from a passphrase instead. Encoding prints a key profile that must be given to decode.")
	flags.StringVarP(&cfg.profile, "profile", "P", "", "Key profile printed when encoding with a passphrase. Required to decode with a passphrase.")
	flags.StringVarP(&cfg.file, "file", "f", "", "Read input from a file instead of arguments or stdin.")
	flags.BoolVarP(&cfg.strict, "strict", "s", false, "Exit with an error if the result fails validation.")
	flags.BoolVarP(&cfg.shortDelay, "short-delay", "S", false, "Use a faster, less resistant key derivation when encoding with a passphrase.")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Emit debug logging on stderr.")
	flags.Usage = func() {
		fmt.Printf(`
streamarmor (version %s) encrypts short text messages with a numeric key and armors the result as printable text.
Armored text only contains the characters '!' through 'u', so it can be safely copied around as text.

USAGE:  streamarmor [FLAGS] COMMAND [TEXT...]

COMMANDS:
    encode  Encrypt and armor TEXT, the file given with --file, or stdin.
    decode  Remove the armor from TEXT, the file given with --file, or stdin, and decrypt it.
    keygen  Print a securely generated random key.

Input is truncated at the first NUL byte.

FLAGS:
%s
SECURITY:
    The cipher used here has not been vetted, and uses RC4 keystream generation which is known to be broken.
Treat this as obfuscation for anything security critical.
`, version, flags.FlagUsages())
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	if flags.NArg() == 0 {
		internal.Fatal("Missing required COMMAND argument")
	}
	cfg.args = flags.Args()[1:]
	logger := internal.NewLogger(verboseFlag)

	switch flags.Arg(0) {
	case "encode":
		input := cfg.readInput()
		if idx := bytes.IndexByte(input, 0); idx >= 0 {
			internal.Echo("Input is truncated at the NUL byte at offset %d", idx)
			input = input[:idx]
		}
		key := cfg.encodeKey()
		ciphertext, report, err := armor.Encode(append(input, 0), key, armor.WithLogger(logger))
		if err != nil {
			internal.Fatal("Failed to encode: %v", err)
		}
		internal.Report("Ciphertext failed validation", report, cfg.strict)
		fmt.Println(ciphertext.String())
	case "decode":
		input := bytes.TrimSpace(cfg.readInput())
		key := cfg.decodeKey()
		plaintext, report, err := armor.Decode(append(input, 0), key, armor.WithLogger(logger))
		if err != nil {
			internal.Fatal("Failed to decode: %v", err)
		}
		internal.Report("Plaintext failed validation", report, cfg.strict)
		fmt.Println(plaintext.String())
	case "keygen":
		key, err := keystream.GenKey()
		if err != nil {
			internal.Fatal("Failed to generate key: %v", err)
		}
		fmt.Println(key)
	default:
		internal.Fatal("Unknown command '%s', expected encode, decode, or keygen", flags.Arg(0))
	}
}

func (cfg *settings) readInput() []byte {
	switch {
	case len(cfg.args) > 0:
		if len(cfg.file) > 0 {
			internal.Fatal("Only one of TEXT or --file may be given")
		}
		return []byte(strings.Join(cfg.args, " "))
	case len(cfg.file) > 0:
		data, err := os.ReadFile(cfg.file)
		if err != nil {
			internal.Fatal("Failed to read input file: %v", err)
		}
		return data
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			internal.Fatal("Failed to read stdin: %v", err)
		}
		return data
	}
}

func (cfg *settings) numericKey() uint64 {
	given := cfg.key
	if len(given) == 0 {
		given = os.Getenv(keyEnv)
	}
	if len(given) == 0 {
		internal.Fatal("A key is required, use --key, --passphrase, or set %s", keyEnv)
	}
	key, err := internal.ParseKey(given)
	if err != nil {
		internal.Fatal("%v", err)
	}
	return key
}

func (cfg *settings) encodeKey() uint64 {
	if len(cfg.passphrase) == 0 {
		return cfg.numericKey()
	}
	opts := []passkey.GeneratorOpt{passkey.SetLongDelayIterations()}
	if cfg.shortDelay {
		opts = []passkey.GeneratorOpt{passkey.SetShortDelayIterations()}
	}
	gen, err := passkey.NewKeyGenerator(opts...)
	if err != nil {
		internal.Fatal("Failed to create key generator: %v", err)
	}
	profile, key, err := gen.GenerateKey(passkey.Passphrase(cfg.passphrase))
	if err != nil {
		internal.Fatal("Failed to derive key: %v", err)
	}
	internal.Echo("Key profile (required to decode): %s", profile)
	return key
}

func (cfg *settings) decodeKey() uint64 {
	if len(cfg.passphrase) == 0 {
		return cfg.numericKey()
	}
	if len(cfg.profile) == 0 {
		internal.Fatal("A key profile is required to decode with a passphrase, use --profile")
	}
	profile, err := passkey.ParseProfile(cfg.profile)
	if err != nil {
		internal.Fatal("Failed to read key profile: %v", err)
	}
	key, err := profile.DeriveKey(passkey.Passphrase(cfg.passphrase))
	if err != nil {
		internal.Fatal("Failed to derive key: %v", err)
	}
	return key
}
