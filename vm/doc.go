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

// Package vm implements the VM Translator: it lowers the stack-based Hack VM
// language into Hack assembly text.
//
// Supported commands:
//
//	add sub neg eq gt lt and or not		arithmetic/logic, act on the data stack
//	push <segment> <index>				push a value onto the data stack
//	pop <segment> <index>				pop the stack into a memory location
//	label <name>					define a jump target
//	goto <name>					unconditional jump
//	if-goto <name>					pop and jump if non-zero
//	function <name> <nLocals>			begin a function, zeroing nLocals locals
//	call <name> <nArgs>				call a function
//	return						return from the current function
//
// Segments: constant, local, argument, this, that, static, temp, pointer.
//
// The data stack grows upward from SP (RAM[0]); its top is always at
// RAM[SP-1]. Comparison operators and the call/return calling convention are
// implemented exactly as in the Nand2Tetris course specification - see
// emitter.go for the per-command assembly templates.
//
// Static variables are named "<file>.<index>" in the emitted assembly, where
// <file> is the input .vm file's base name without extension; the assembler
// then allocates each distinct name its own RAM slot, which is what gives
// statics per-file isolation even after every .vm file in a directory has
// been concatenated into one .asm.
//
// When translating a directory, Translate prepends bootstrap code (SP=256;
// call Sys.init 0) ahead of the concatenated output; translating a single
// file omits it.
package vm
