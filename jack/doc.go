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

// Package jack implements the Jack compiler: one class of Jack source in,
// one VM translation unit out.
//
// There is no intermediate AST. Compile is a single-pass, recursive-descent
// parser that emits VM commands as each construct is recognized - see
// compiler.go for the grammar-to-emission mapping, which mirrors the
// productions of the Jack grammar one compileX method at a time.
//
// Two symbol tables back name resolution (symboltable.go): a class-scope
// table (static and field variables, lives for the whole class) and a
// subroutine-scope table (argument and local variables, reset at the start
// of every constructor/function/method). Lookups try the subroutine table
// first, then fall back to the class table.
//
// A constructor's prologue allocates an object of the right size and binds
// "this"; a method's prologue binds "this" from the implicit first
// argument; a function emits nothing extra. let-with-array-index, the three
// forms of subroutine call (bare, qualified-on-variable "method" calls,
// qualified-on-class "function" calls) and every statement/expression
// production are handled exactly as described in the Jack/Hack VM
// specification - see compiler.go doc comments on each compileX method for
// the specific emission contract.
//
// The first malformed token aborts the whole file (*ParseError or
// *LexError) - there is no error recovery, matching the rest of the
// toolchain's fail-fast design.
package jack
