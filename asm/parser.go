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

package asm

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// sourceLine is one preprocessed (comment- and whitespace-stripped) line,
// tagged with its original 1-based line number for diagnostics.
type sourceLine struct {
	n    int
	text string
}

// preprocess strips "//" comments and surrounding whitespace from each line
// of r and drops blank lines, per §4.6.
func preprocess(r io.Reader) ([]sourceLine, error) {
	var lines []sourceLine
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
		lines = append(lines, sourceLine{n, text})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '.' || r == '$' || r == ':'
}

func isIdentRune(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
			continue
		}
		if !isIdentRune(r) {
			return false
		}
	}
	return true
}

// parseInstruction parses one preprocessed line into an Instruction.
func parseInstruction(l sourceLine) (Instruction, error) {
	text := l.text
	switch {
	case strings.HasPrefix(text, "@"):
		sym := text[1:]
		if sym == "" || (!isNumeric(sym) && !validIdent(sym)) {
			return nil, &ParseError{l.n, "malformed A-instruction " + text}
		}
		return newA(l.n, sym), nil

	case strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")"):
		name := text[1 : len(text)-1]
		if !validIdent(name) {
			return nil, &ParseError{l.n, "malformed label " + text}
		}
		return newL(l.n, name), nil

	default:
		return parseC(l)
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseC(l sourceLine) (Instruction, error) {
	text := l.text
	dest := ""
	rest := text
	if i := strings.IndexByte(text, '='); i >= 0 {
		dest, rest = text[:i], text[i+1:]
	}
	comp := rest
	jump := ""
	if i := strings.IndexByte(rest, ';'); i >= 0 {
		comp, jump = rest[:i], rest[i+1:]
	}

	if _, ok := destCode[dest]; !ok {
		return nil, &SemanticError{l.n, "unknown dest mnemonic " + dest}
	}
	if _, ok := compCode[comp]; !ok {
		return nil, &SemanticError{l.n, "unknown comp mnemonic " + comp}
	}
	if _, ok := jumpCode[jump]; !ok {
		return nil, &SemanticError{l.n, "unknown jump mnemonic " + jump}
	}
	return newC(l.n, dest, comp, jump), nil
}
