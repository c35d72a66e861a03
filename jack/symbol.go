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

// SymbolKind is the closed set of places a Jack identifier can live.
type SymbolKind int

const (
	// KindNone is returned by lookups that find nothing.
	KindNone SymbolKind = iota
	KindStatic
	KindField
	KindArg
	KindVar
)

func (k SymbolKind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindField:
		return "this"
	case KindArg:
		return "argument"
	case KindVar:
		return "local"
	default:
		return "none"
	}
}

// Symbol is one entry in a SymbolTable: a name bound to a Jack type, a
// storage kind and the running index within that kind.
type Symbol struct {
	Name  string
	Type  string
	Kind  SymbolKind
	Index int
}
