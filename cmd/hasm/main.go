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

// Command hasm assembles a single Hack assembly (.asm) file into the
// 16-bit binary (.hack) format, or, with -disasm, decodes a .hack file
// back into .asm mnemonics. Unlike the VM translator, assembly is always
// one file in, one file out: there is no notion of linking several .asm
// programs together.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/teris-io/cli"

	"github.com/hackforge/n2t/asm"
	"github.com/hackforge/n2t/internal/fsdiscover"
)

var description = strings.ReplaceAll(`
hasm assembles a Hack .asm source file into .hack binary text. With
-disasm it runs in reverse, decoding a .hack file back into .asm mnemonics.
`, "\n", " ")

var app = cli.New(description).
	WithArg(cli.NewArg("input", "the .asm (or, with -disasm, .hack) file to process").
		WithType(cli.TypeString)).
	WithOption(cli.NewOption("output", "output file path (default: input with its extension swapped)").
		WithType(cli.TypeString)).
	WithOption(cli.NewOption("disasm", "decode .hack binary back into .asm mnemonics").
		WithType(cli.TypeBool)).
	WithAction(run)

func run(args []string, options map[string]string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "hasm: missing input path, use -h")
		return 1
	}
	input := args[0]
	_, disasm := options["disasm"]

	ext := "asm"
	if disasm {
		ext = "hack"
	}
	if !strings.HasSuffix(input, "."+ext) {
		fmt.Fprintf(os.Stderr, "hasm: %s: expected a .%s file\n", input, ext)
		return 1
	}
	in, err := os.Open(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hasm: %v\n", err)
		return 1
	}
	defer in.Close()

	outPath := options["output"]
	if outPath == "" {
		want := "hack"
		if disasm {
			want = "asm"
		}
		outPath = filepath.Join(filepath.Dir(input), fsdiscover.Stem(input)+"."+want)
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hasm: %v\n", err)
		return 1
	}
	defer out.Close()

	if disasm {
		err = disassemble(in, out)
	} else {
		err = asm.Assemble(fsdiscover.Stem(input), in, out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "hasm: %v\n", err)
		return 1
	}
	return 0
}

func disassemble(in *os.File, out *os.File) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		instr, err := asm.Disassemble(line)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, instr)
	}
	return sc.Err()
}

func main() { os.Exit(app.Run(os.Args, os.Stdout)) }
