// Command bossy parses an argument vector against a definition file and
// prints the result as JSON. It is handy for trying out definitions and
// for shell scripts that want structured options:
//
//	bossy --def flags.yaml -- -v --port 80 input.txt
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/dzonerzy/go-bossy/bossy"
	"github.com/dzonerzy/go-bossy/deffile"
	bossyio "github.com/dzonerzy/go-bossy/io"
)

const header = "bossy --def FILE [options] [-- ARGS...]"

var cliDefinition = bossy.Define().
	Option("def", "Definition file (.yaml, .yml, .toml, .json, .jsonc)").Alias("d").Required().Back().
	Option("header", "Usage header for the loaded definition").Back().
	Boolean("usage", "Print usage for the loaded definition instead of parsing").Alias("u").Back().
	Boolean("colors", "Force coloured output on, or off with --no-colors").Default(bossy.NullValue()).Back().
	Option("object", "Print the roll-up of NAME instead of the full result").Alias("o").Multiple().Back().
	Boolean("verbose", "Trace how every argument is classified").Alias("v").Back().
	Help("help", "Show this help").Alias("h").Back().
	Build()

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without process globals so tests can drive it.
func run(args []string, stdout, stderr io.Writer) int {
	own, rest := splitArgs(args)

	term := bossyio.New().WithOut(stdout).WithErr(stderr)
	logger := bossyio.NewLogger(term)

	opts, err := bossy.Parse(cliDefinition, bossy.WithArgs(own), bossy.WithIO(term))
	if err != nil {
		return fail(logger, err, cliDefinition, header, term)
	}
	if opts.HelpRequested() {
		fmt.Fprintln(stdout, usage(cliDefinition, header, term))
		return 0
	}

	switch colors := opts.Get("colors"); {
	case colors.IsNull():
	case opts.Bool("colors"):
		term.ForceColor()
	default:
		term.NoColor()
	}
	if opts.Bool("verbose") {
		logger.WithLevel(bossyio.LevelDebug)
	}

	path, _ := opts.String("def")
	def, err := deffile.Load(path)
	if err != nil {
		logger.Error("%v", err)
		return bossy.ExitCode(err)
	}
	logger.Debug("loaded %d options from %s", len(def), path)

	targetHeader, _ := opts.String("header")
	if opts.Bool("usage") {
		fmt.Fprintln(stdout, usage(def, targetHeader, term))
		return 0
	}

	result, err := bossy.Parse(def, bossy.WithArgs(rest), bossy.WithIO(term), bossy.WithLogger(logger))
	if err != nil {
		return fail(logger, err, def, targetHeader, term)
	}
	if result.HelpRequested() {
		fmt.Fprintln(stdout, usage(def, targetHeader, term))
		return 0
	}

	out, err := render(result, opts.Strings("object"))
	if err != nil {
		logger.Error("%v", err)
		return bossy.ExitCode(err)
	}
	fmt.Fprintln(stdout, out)
	return 0
}

// splitArgs cuts args at the first "--": what comes before configures
// the command, what comes after is parsed against the loaded definition.
func splitArgs(args []string) (own, rest []string) {
	i := slices.Index(args, "--")
	if i < 0 {
		return args, []string{}
	}
	return args[:i], args[i+1:]
}

func fail(logger *bossyio.Logger, err error, def bossy.Definition, header string, term *bossyio.IOManager) int {
	var pe *bossy.ParseError
	if errors.As(err, &pe) && pe.Type == bossy.ErrorTypeMissingRequired {
		// the message already is the usage text
		fmt.Fprintln(term.Err(), err)
		return bossy.ExitCode(err)
	}

	logger.Error("%v", err)
	if pe != nil && len(pe.Suggestions) > 0 {
		fmt.Fprintf(term.Err(), "Did you mean: %s?\n", strings.Join(pe.Suggestions, ", "))
	}
	if pe != nil {
		fmt.Fprintln(term.Err(), usage(def, header, term))
	}
	return bossy.ExitCode(err)
}

func usage(def bossy.Definition, header string, term *bossyio.IOManager) string {
	text, err := bossy.Usage(def, header, bossy.WithIO(term))
	if err != nil {
		return err.Error()
	}
	return text
}

func render(result *bossy.Result, objects []string) (string, error) {
	var doc json.Marshaler = result
	switch len(objects) {
	case 0:
	case 1:
		rolled, err := result.RollUp(objects[0])
		if err != nil {
			return "", err
		}
		doc = rolled
	default:
		combined := bossy.NewObject()
		for _, name := range objects {
			rolled, err := result.RollUp(name)
			if err != nil {
				return "", err
			}
			combined.Set(name, bossy.ObjectValue(rolled))
		}
		doc = combined
	}

	data, err := doc.MarshalJSON()
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return "", err
	}
	return out.String(), nil
}
