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

package jack

// SymbolTable resolves identifiers within one scope. Entries are kept in an
// ordered slice and resolved by linear scan rather than a map: tables rarely
// hold more than a handful of entries, and a later Define of the same name
// shadows the earlier one (scan direction is back-to-front). A separate
// per-kind counter (next) assigns indexes and backs VarCount.
type SymbolTable struct {
	entries []Symbol
	next    map[SymbolKind]int
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{next: make(map[SymbolKind]int)}
}

// Define adds name to the table under kind with the given Jack type,
// assigning it the next free index for that kind.
func (t *SymbolTable) Define(name, typ string, kind SymbolKind) Symbol {
	idx := t.next[kind]
	t.next[kind] = idx + 1
	sym := Symbol{Name: name, Type: typ, Kind: kind, Index: idx}
	t.entries = append(t.entries, sym)
	return sym
}

// Lookup finds the most recent binding of name, reporting ok=false if none
// exists in this table.
func (t *SymbolTable) Lookup(name string) (Symbol, bool) {
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].Name == name {
			return t.entries[i], true
		}
	}
	return Symbol{}, false
}

// VarCount reports how many symbols of the given kind have been defined.
func (t *SymbolTable) VarCount(kind SymbolKind) int {
	return t.next[kind]
}
