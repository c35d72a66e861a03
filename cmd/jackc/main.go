// This file is part of n2t - a Hack toolchain.
//
// Copyright 2026 The n2t Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command jackc compiles Jack source (.jack) into VM-language translation
// units (.vm), one output file per input class. With -tokens it instead
// dumps the lexer's token stream, for debugging a class that fails to
// compile.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/teris-io/cli"

	"github.com/hackforge/n2t/internal/fsdiscover"
	"github.com/hackforge/n2t/jack"
)

var description = strings.ReplaceAll(`
jackc compiles Jack class source into VM-language code, one .vm file per
.jack input. Point it at a single file or a directory of classes.
`, "\n", " ")

var app = cli.New(description).
	WithArg(cli.NewArg("input", "the .jack file or directory to compile").
		WithType(cli.TypeString)).
	WithOption(cli.NewOption("tokens", "dump the token stream instead of compiling").
		WithType(cli.TypeBool)).
	WithAction(run)

func run(args []string, options map[string]string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "jackc: missing input path, use -h")
		return 1
	}
	input := args[0]
	_, dumpTokens := options["tokens"]

	paths, err := fsdiscover.Sources(input, "jack")
	if err != nil {
		fmt.Fprintf(os.Stderr, "jackc: %v\n", err)
		return 1
	}

	for _, p := range paths {
		if err := compileOne(p, dumpTokens); err != nil {
			fmt.Fprintf(os.Stderr, "jackc: %v\n", err)
			return 1
		}
	}
	return 0
}

func compileOne(path string, dumpTokens bool) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	if dumpTokens {
		return dumpTokenStream(path, in)
	}

	outPath := filepath.Join(filepath.Dir(path), fsdiscover.Stem(path)+".vm")
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return jack.Compile(path, in, out)
}

func dumpTokenStream(path string, in *os.File) error {
	lex := jack.NewLexer(path, in)
	for {
		tok, err := lex.Next()
		if err != nil {
			return err
		}
		if tok.IsEOF() {
			return nil
		}
		if tok.Kind == jack.TokenIntConst {
			fmt.Printf("%d: %s %d\n", tok.Line, tok.Kind, tok.IntVal)
			continue
		}
		fmt.Printf("%d: %s %q\n", tok.Line, tok.Kind, tok.Text)
	}
}

func main() { os.Exit(app.Run(os.Args, os.Stdout)) }
