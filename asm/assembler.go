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
	"io"
	"strconv"

	"github.com/pkg/errors"
)

const maxAddress = 32767

// Assemble reads Hack assembly from r and writes one 16-character binary
// line (LF-terminated) per A- or C-instruction to w. name is used only to
// prefix diagnostics.
//
// Assembly is a strict two-pass process (§4.6): pass 1 resolves every label
// to a ROM address, pass 2 resolves every symbol (predefined, label, or
// newly encountered variable) and encodes each instruction. The first error
// in either pass aborts the whole run, with no recovery. Pass 2 writes each
// line as it is encoded, so lines before a pass-2 error are already in w.
func Assemble(name string, r io.Reader, w io.Writer) error {
	lines, err := preprocess(r)
	if err != nil {
		return errors.Wrapf(err, "%s: read failed", name)
	}

	program := make([]Instruction, 0, len(lines))
	for _, l := range lines {
		inst, err := parseInstruction(l)
		if err != nil {
			return errors.Wrapf(err, "%s", name)
		}
		program = append(program, inst)
	}

	symbols := newSymbolTable()

	// Pass 1: label resolution. ROM address only advances for A/C
	// instructions; (LABEL) binds the address of the following one.
	rom := 0
	for _, inst := range program {
		if l, ok := inst.(LInstruction); ok {
			if !symbols.Bind(l.Label, rom) {
				return errors.Wrapf(&SymbolError{l.Pos(), l.Label}, "%s", name)
			}
			continue
		}
		rom++
	}

	// Pass 2: emission. Unknown @symbols are variables, allocated from 16
	// upward in first-use order.
	for _, inst := range program {
		switch v := inst.(type) {
		case LInstruction:
			continue
		case AInstruction:
			addr, err := resolveA(symbols, v)
			if err != nil {
				return errors.Wrapf(err, "%s", name)
			}
			if _, err := io.WriteString(w, encodeA(addr)+"\n"); err != nil {
				return errors.Wrap(err, "write failed")
			}
		case CInstruction:
			if _, err := io.WriteString(w, encodeC(v)+"\n"); err != nil {
				return errors.Wrap(err, "write failed")
			}
		}
	}
	return nil
}

func resolveA(symbols *symbolTable, a AInstruction) (int, error) {
	if isNumeric(a.Symbol) {
		n, _ := strconv.Atoi(a.Symbol)
		if n < 0 || n > maxAddress {
			return 0, &SemanticError{a.Pos(), "address out of range: " + a.Symbol}
		}
		return n, nil
	}
	return symbols.Resolve(a.Symbol), nil
}

func encodeA(addr int) string {
	s := make([]byte, 16)
	s[0] = '0'
	for i := 15; i >= 1; i-- {
		if addr&1 != 0 {
			s[i] = '1'
		} else {
			s[i] = '0'
		}
		addr >>= 1
	}
	return string(s)
}

func encodeC(c CInstruction) string {
	return "111" + compCode[c.Comp] + destCode[c.Dest] + jumpCode[c.Jump]
}
