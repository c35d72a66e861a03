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

// Command vmtranslator translates one .vm file, or every .vm file in a
// directory, into Hack assembly (.asm). Directory mode treats the whole
// directory as one program and prepends the SP/Sys.init bootstrap by
// default; single-file mode does not, since a lone .vm file has no
// Sys.init to call into.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/teris-io/cli"

	"github.com/hackforge/n2t/internal/fsdiscover"
	"github.com/hackforge/n2t/vm"
)

var description = strings.ReplaceAll(`
vmtranslator translates VM-language programs into Hack assembly. Point it
at a single .vm file or a directory containing several; a directory is
translated as one linked program with the bootstrap sequence prepended.
`, "\n", " ")

var app = cli.New(description).
	WithArg(cli.NewArg("input", "the .vm file or directory to translate").
		WithType(cli.TypeString)).
	WithOption(cli.NewOption("output", "output .asm file path (default derived from input)").
		WithType(cli.TypeString)).
	WithOption(cli.NewOption("bootstrap", "force the bootstrap sequence on, even for a single file").
		WithType(cli.TypeBool)).
	WithOption(cli.NewOption("no-bootstrap", "suppress the bootstrap sequence, even for a directory").
		WithType(cli.TypeBool)).
	WithAction(run)

func run(args []string, options map[string]string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "vmtranslator: missing input path, use -h")
		return 1
	}
	input := args[0]
	isDir := fsdiscover.IsDir(input)

	paths, err := fsdiscover.Sources(input, "vm")
	if err != nil {
		fmt.Fprintf(os.Stderr, "vmtranslator: %v\n", err)
		return 1
	}

	bootstrap := isDir
	if _, ok := options["bootstrap"]; ok {
		bootstrap = true
	}
	if _, ok := options["no-bootstrap"]; ok {
		bootstrap = false
	}

	sources := make([]vm.Source, 0, len(paths))
	files := make([]*os.File, 0, len(paths))
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "vmtranslator: %v\n", err)
			return 1
		}
		files = append(files, f)
		sources = append(sources, vm.Source{Stem: fsdiscover.Stem(p), Reader: f})
	}

	outPath := options["output"]
	if outPath == "" {
		outPath = defaultOutput(input, isDir)
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vmtranslator: %v\n", err)
		return 1
	}
	defer out.Close()

	if err := vm.Translate(sources, out, bootstrap); err != nil {
		fmt.Fprintf(os.Stderr, "vmtranslator: %v\n", err)
		return 1
	}
	return 0
}

// defaultOutput places the .asm file beside the input: for a directory,
// Dir/Dir.asm; for a single file, alongside it as File.asm.
func defaultOutput(input string, isDir bool) string {
	trimmed := strings.TrimRight(input, "/")
	if isDir {
		stem := fsdiscover.Stem(trimmed)
		return filepath.Join(trimmed, stem+".asm")
	}
	return filepath.Join(filepath.Dir(trimmed), fsdiscover.Stem(trimmed)+".asm")
}

func main() { os.Exit(app.Run(os.Args, os.Stdout)) }
