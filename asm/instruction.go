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

import "fmt"

// Instruction is the closed set of forms a preprocessed assembly line can
// take. Exactly one of AInstruction, CInstruction or LInstruction is ever
// produced per non-blank, non-comment line.
type Instruction interface {
	isInstruction()
	// Pos is the 1-based source line the instruction came from, used only
	// for diagnostics.
	Pos() int
}

type base struct{ line int }

func (b base) Pos() int { return b.line }

// AInstruction is "@value": value is either a decimal literal or a symbol
// name to be resolved to an address in pass 2.
type AInstruction struct {
	base
	Symbol string
}

func (AInstruction) isInstruction() {}

func (a AInstruction) String() string { return fmt.Sprintf("@%s", a.Symbol) }

// CInstruction is "dest=comp;jump". Dest and Jump may be empty.
type CInstruction struct {
	base
	Dest, Comp, Jump string
}

func (CInstruction) isInstruction() {}

func (c CInstruction) String() string {
	s := c.Comp
	if c.Dest != "" {
		s = c.Dest + "=" + s
	}
	if c.Jump != "" {
		s = s + ";" + c.Jump
	}
	return s
}

// LInstruction is "(LABEL)": binds Label to the ROM address of the next
// instruction. Emits nothing in pass 2.
type LInstruction struct {
	base
	Label string
}

func (LInstruction) isInstruction() {}

func (l LInstruction) String() string { return "(" + l.Label + ")" }

func newA(line int, sym string) AInstruction     { return AInstruction{base{line}, sym} }
func newC(line int, d, c, j string) CInstruction { return CInstruction{base{line}, d, c, j} }
func newL(line int, label string) LInstruction   { return LInstruction{base{line}, label} }
