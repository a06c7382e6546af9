package main

import (
	"fmt"
	"os"

	"github.com/saylorsolutions/streamarmor/cmd/armorgen/internal/tmpl"
	"github.com/saylorsolutions/streamarmor/cmd/internal"
	flag "github.com/spf13/pflag"
)

var version = "dev"

func main() {
	var (
		helpFlag    bool
		exposedFlag bool
		packageFlag string
		outputFlag  string
	)
	flags := flag.NewFlagSet("armorgen", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&exposedFlag, "exposed", "E", false, "Make the unarmor function exposed from the file. It's recommended to only expose from within an internal package.")
	flags.StringVarP(&packageFlag, "package", "p", "", "Package name of the generated file. Defaults to the name of the current directory.")
	flags.StringVarP(&outputFlag, "output", "o", "", "Directory where the generated file is written. Defaults to the current directory.")
	flags.Usage = func() {
		fmt.Printf(`
armorgen (version %s) generates code to embed encrypted and armored text by generating a *.go file based on the input file. This pairs well with go:generate comments.
The name of the generated Go file will be based on the name of the input file, replacing characters that match the regex pattern [^a-zA-Z0-9_] with "_".
For example, given a file called super-secret.txt, a Go file will be created in the current directory called super_secret_txt.go, containing a function called unarmorSuper_secret_txt.
See the -E flag below to make it an exposed function, and make sure you review the SECURITY notes below.

USAGE:  armorgen FILE [KEY]

ARGS:
    FILE is the input file to be embedded. It must be text, without any NUL bytes or other control characters.
    KEY is optional and may be specified to override secure random generation behavior. It may be decimal or 0x prefixed hex.

FLAGS:
%s
SECURITY:
    This is not meaningful encryption, since the key is stored right next to the armored data.
It's intended to hide embedded text from passive binary analysis only.
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

	opts := []tmpl.ParamOpt{
		tmpl.ExposeFunctions(exposedFlag),
		tmpl.PackageName(packageFlag),
		tmpl.OutputDir(outputFlag),
	}
	switch flags.NArg() {
	case 0:
		internal.Fatal("Missing required FILE argument")
	case 1:
		opts = append(opts, tmpl.RandomKey())
	default:
		key, err := internal.ParseKey(flags.Arg(1))
		if err != nil {
			internal.Fatal("Failed to parse KEY: %v", err)
		}
		opts = append(opts, tmpl.UseKey(key))
	}
	if err := tmpl.GenerateFile(flags.Arg(0), opts...); err != nil {
		internal.Fatal("Failed to generate file: %v", err)
	}
}
