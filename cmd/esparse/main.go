// Command esparse parses one or more ES2015 source files and prints
// their ESTree JSON (or, with --tokenize, their raw token stream).
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/parser"
	"github.com/t14raptor/esparse/parser/scanner"
	"github.com/t14raptor/esparse/token"
)

type args struct {
	Files    []string `arg:"positional" help:"source files to parse; omit to read stdin"`
	Module   bool     `help:"parse as module source type instead of script"`
	Tokenize bool     `help:"print the token stream instead of the AST"`
	LogLevel string   `arg:"--log-level" default:"warn" help:"trace, debug, info, warn, error, or disabled"`
}

func (args) Description() string {
	return "esparse parses ECMAScript 2015 source into an ESTree-shaped AST."
}

func main() {
	var a args
	arg.MustParse(&a)

	level, err := zerolog.ParseLevel(a.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --log-level %q: %v\n", a.LogLevel, err)
		os.Exit(1)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level)

	files := a.Files
	if len(files) == 0 {
		files = []string{"-"}
	}

	var result error
	for _, name := range files {
		if err := run(name, a, &logger); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, err))
		}
	}
	if result != nil {
		fmt.Fprintln(os.Stderr, result)
		os.Exit(1)
	}
}

func run(name string, a args, logger *zerolog.Logger) error {
	src, err := readSource(name)
	if err != nil {
		return err
	}

	sourceType := parser.Script
	if a.Module || strings.HasSuffix(name, ".mjs") {
		sourceType = parser.Module
	}
	options := parser.DefaultOptions()
	options.SourceType = sourceType
	options.AllowHashBang = true

	if a.Tokenize {
		return printTokens(src, options, logger)
	}

	prog, err := parser.Parse(src, options, parser.WithLogger(logger))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(ast.ToJSONValue(prog))
}

func printTokens(src string, options parser.Options, logger *zerolog.Logger) error {
	sc := scanner.NewScanner(src)
	sc.AllowHashBang = options.AllowHashBang
	sc.SetStrict(options.SourceType == parser.Module)
	for {
		tok := sc.Next()
		if err := sc.Err(); err != nil {
			return err
		}
		fmt.Printf("%-20s %q\n", tok.Type, tok.Literal)
		if tok.Type == token.Eof {
			return nil
		}
	}
}

func readSource(name string) (string, error) {
	if name == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(name)
	return string(b), err
}
