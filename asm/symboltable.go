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

import "strconv"

// firstVariableAddress is where user-variable allocation starts.
const firstVariableAddress = 16

// predefined holds the symbols every Hack program starts with: SP, LCL, ARG,
// THIS, THAT, R0-R15, SCREEN and KBD. It is never mutated; newSymbolTable
// copies every entry into each new table.
var predefined = func() map[string]int {
	m := map[string]int{
		"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4,
		"SCREEN": 16384, "KBD": 24576,
	}
	for i := 0; i < 16; i++ {
		m["R"+strconv.Itoa(i)] = i
	}
	return m
}()

// symbolTable maps names to RAM/ROM addresses for one assembly run. Each
// Assemble call creates its own, never at package scope (§5: re-entrant state).
//
// Once a name is bound by Bind or Resolve, it is never remapped - this is the
// invariant from §3.4 of the toolchain design, and is what makes the
// predefined table and label table safe to share one map: a later forward
// reference to a label can't clobber its pass-1 address, and a variable name
// that happens to collide with a label is simply resolved to the label.
type symbolTable struct {
	addr    map[string]int
	nextRAM int
}

func newSymbolTable() *symbolTable {
	t := &symbolTable{addr: make(map[string]int, len(predefined)), nextRAM: firstVariableAddress}
	for k, v := range predefined {
		t.addr[k] = v
	}
	return t
}

// Bind assigns name the given ROM address, used for (LABEL) definitions in
// pass 1. Returns false if name was already bound (duplicate label).
func (t *symbolTable) Bind(name string, address int) bool {
	if _, ok := t.addr[name]; ok {
		return false
	}
	t.addr[name] = address
	return true
}

// Resolve returns the address bound to name, allocating the next free RAM
// slot for it if it is seen for the first time (i.e. it is a variable, not a
// label - labels are always bound ahead of time by pass 1).
func (t *symbolTable) Resolve(name string) int {
	if a, ok := t.addr[name]; ok {
		return a
	}
	a := t.nextRAM
	t.addr[name] = a
	t.nextRAM++
	return a
}

// Defined reports whether name has already been bound.
func (t *symbolTable) Defined(name string) bool {
	_, ok := t.addr[name]
	return ok
}
