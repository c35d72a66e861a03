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

// SemanticError reports an out-of-range address or an unknown comp/dest/jump
// mnemonic. Fatal: assembly aborts on the first one encountered.
type SemanticError struct {
	Line int
	Msg  string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%d: %s", e.Line, e.Msg)
}

// SymbolError reports a duplicate label definition. Fatal.
type SymbolError struct {
	Line int
	Name string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%d: label %q already defined", e.Line, e.Name)
}

// ParseError reports a malformed instruction line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d: %s", e.Line, e.Msg)
}
