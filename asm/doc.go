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

// Package asm implements the Hack assembler: Hack assembly text in, 16-bit
// Hack binary text out.
//
// Supported instruction forms:
//
//	@value		A-instruction: value is a decimal literal in [0, 32767]
//			or a symbol (predefined, label, or user variable).
//	(LABEL)		L-pseudo-instruction: binds LABEL to the ROM address
//			of the next real instruction. Emits nothing.
//	dest=comp;jump	C-instruction: either "dest=" or ";jump" may be omitted.
//
// Predefined symbols:
//
//	SP, LCL, ARG, THIS, THAT	0, 1, 2, 3, 4
//	R0-R15				0-15
//	SCREEN				16384
//	KBD				24576
//
// Assembly proceeds in two passes over the preprocessed program (comments
// and blank lines stripped):
//
//	Pass 1: walk instructions in order, assigning each (LABEL) the ROM
//	        address of the following instruction. ROM addresses only
//	        advance for A- and C-instructions.
//	Pass 2: walk again, resolving every @symbol against the label table
//	        built in pass 1, the predefined symbol table, or (for unknown
//	        symbols) a freshly allocated RAM slot starting at 16. Each
//	        instruction is encoded to its 16-bit binary line.
//
// A symbol, once bound to an address by either pass, is never remapped.
// Defining the same label twice is a fatal SymbolError.
package asm
