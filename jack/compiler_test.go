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

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, src string) []string {
	t.Helper()
	var out strings.Builder
	err := Compile("Test.jack", strings.NewReader(src), &out)
	require.NoError(t, err)
	text := strings.TrimRight(out.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// P10: a constructor of a class with no fields still allocates a
// zero-length object via Memory.alloc.
func TestCompile_ZeroFieldConstructor(t *testing.T) {
	lines := compile(t, `
		class Empty {
			constructor Empty new() {
				return this;
			}
		}
	`)
	require.Equal(t, []string{
		"function Empty.new 0",
		"push constant 0",
		"call Memory.alloc 1",
		"pop pointer 0",
		"push pointer 0",
		"return",
	}, lines)
}

// A method implicitly receives "this" as argument 0: its prologue binds
// pointer 0 from argument 0 before the body runs.
func TestCompile_MethodImplicitThis(t *testing.T) {
	lines := compile(t, `
		class Counter {
			field int count;
			method int get() {
				return count;
			}
		}
	`)
	require.Equal(t, []string{
		"function Counter.get 0",
		"push argument 0",
		"pop pointer 0",
		"push this 0",
		"return",
	}, lines)
}

func TestCompile_MethodCallOnVariablePassesReceiver(t *testing.T) {
	lines := compile(t, `
		class Main {
			function void run() {
				var Counter c;
				do c.get();
				return;
			}
		}
	`)
	require.Equal(t, []string{
		"function Main.run 1",
		"push local 0",
		"call Counter.get 1",
		"pop temp 0",
		"push constant 0",
		"return",
	}, lines)
}

func TestCompile_FunctionCallOnClassHasNoImplicitReceiver(t *testing.T) {
	lines := compile(t, `
		class Main {
			function void run() {
				do Output.println();
				return;
			}
		}
	`)
	require.Equal(t, []string{
		"function Main.run 0",
		"call Output.println 0",
		"pop temp 0",
		"push constant 0",
		"return",
	}, lines)
}

// Scenario 6: let with an array index must compute the target address
// before evaluating the right-hand side, and must stash that address
// across the right-hand-side evaluation via temp 0.
func TestCompile_LetArrayIndexEmissionOrder(t *testing.T) {
	lines := compile(t, `
		class Main {
			function void run() {
				var Array a;
				var int i;
				let a[i] = 1;
				return;
			}
		}
	`)
	require.Equal(t, []string{
		"function Main.run 2",
		"push local 0",
		"push local 1",
		"add",
		"pop temp 0",
		"push constant 1",
		"push temp 0",
		"pop pointer 1",
		"pop that 0",
		"push constant 0",
		"return",
	}, lines)
}

// Jack has no operator precedence: "1 + 2 * 3" folds strictly left to
// right, i.e. (1 + 2) * 3, not 1 + (2 * 3).
func TestCompile_ArithmeticLeftToRightNoPrecedence(t *testing.T) {
	lines := compile(t, `
		class Main {
			function int run() {
				return 1 + 2 * 3;
			}
		}
	`)
	require.Equal(t, []string{
		"function Main.run 0",
		"push constant 1",
		"push constant 2",
		"add",
		"push constant 3",
		"call Math.multiply 2",
		"return",
	}, lines)
}

func TestCompile_WhileAndIfEmitLabels(t *testing.T) {
	lines := compile(t, `
		class Main {
			function void run() {
				while (true) {
					if (false) {
						return;
					}
				}
				return;
			}
		}
	`)
	joined := strings.Join(lines, "\n")
	require.Contains(t, joined, "label WHILE_EXP0")
	require.Contains(t, joined, "label WHILE_END")
	require.Contains(t, joined, "label IF_FALSE")
}

func TestCompile_UndeclaredIdentifierIsFatal(t *testing.T) {
	var out strings.Builder
	err := Compile("Test.jack", strings.NewReader(`
		class Main {
			function void run() {
				let x = 1;
				return;
			}
		}
	`), &out)
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}
