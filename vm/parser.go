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

package vm

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Parse reads VM commands from r. Each line is parsed independently: there
// is no lookahead across lines, and "//" comments plus surrounding
// whitespace are stripped before tokenizing on whitespace (§4.4). file
// names the source only for diagnostics. The first malformed line aborts
// with a *ParseError.
func Parse(file string, r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		text := sc.Text()
		if i := strings.Index(text, "//"); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		cmd, err := parseLine(file, n, text)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}

func parseLine(file string, n int, text string) (Command, error) {
	fields := strings.Fields(text)
	head := fields[0]

	if op, ok := arithIndex[head]; ok {
		return Command{Kind: KindArithmetic, Line: n, Op: op}, nil
	}

	switch head {
	case "push", "pop":
		if len(fields) != 3 {
			return Command{}, &ParseError{file, n, "expected: " + head + " <segment> <index>"}
		}
		seg, ok := segmentIndex[fields[1]]
		if !ok {
			return Command{}, &ParseError{file, n, "unknown segment " + fields[1]}
		}
		idx, err := strconv.Atoi(fields[2])
		if err != nil || idx < 0 {
			return Command{}, &ParseError{file, n, "invalid index " + fields[2]}
		}
		kind := KindPush
		if head == "pop" {
			kind = KindPop
		}
		return Command{Kind: kind, Line: n, Seg: seg, Idx: idx}, nil

	case "label", "goto", "if-goto":
		if len(fields) != 2 {
			return Command{}, &ParseError{file, n, "expected: " + head + " <name>"}
		}
		kind := map[string]Kind{"label": KindLabel, "goto": KindGoto, "if-goto": KindIfGoto}[head]
		return Command{Kind: kind, Line: n, Name: fields[1]}, nil

	case "function", "call":
		if len(fields) != 3 {
			return Command{}, &ParseError{file, n, "expected: " + head + " <name> <n>"}
		}
		count, err := strconv.Atoi(fields[2])
		if err != nil || count < 0 {
			return Command{}, &ParseError{file, n, "invalid count " + fields[2]}
		}
		kind := KindFunction
		if head == "call" {
			kind = KindCall
		}
		return Command{Kind: kind, Line: n, Name: fields[1], N: count}, nil

	case "return":
		if len(fields) != 1 {
			return Command{}, &ParseError{file, n, "return takes no arguments"}
		}
		return Command{Kind: KindReturn, Line: n}, nil

	default:
		return Command{}, &ParseError{file, n, "unknown command " + head}
	}
}
