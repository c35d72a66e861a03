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

package asm_test

import (
	"strings"
	"testing"

	"github.com/hackforge/n2t/asm"
)

func assemble(t *testing.T, src string) string {
	t.Helper()
	var out strings.Builder
	if err := asm.Assemble("test", strings.NewReader(src), &out); err != nil {
		t.Fatalf("Assemble(%q): unexpected error: %v", src, err)
	}
	return out.String()
}

// Scenario 1 of §8: a bare A-instruction.
func TestAssemble_AInstructionNumeric(t *testing.T) {
	got := assemble(t, "@21\n")
	want := "0000000000010101\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Scenario 2 of §8.
func TestAssemble_CInstruction(t *testing.T) {
	got := assemble(t, "D=D+A\n")
	want := "1110000010010000\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Scenario 3 of §8.
func TestAssemble_JumpOnly(t *testing.T) {
	got := assemble(t, "0;JMP\n")
	want := "1110101010000111\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Scenario 4 of §8: labels bind to the address of the *next* instruction,
// and an undefined symbol becomes a variable at 16 reused on every mention.
func TestAssemble_LabelsAndVariables(t *testing.T) {
	src := "@LOOP\nD=A\n(LOOP)\n@i\n@i\n@END\n(END)\n"
	got := assemble(t, src)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 emitted lines (2 label lines emit nothing), got %d: %q", len(lines), lines)
	}
	// @LOOP -> rom 2
	if lines[0] != "0000000000000010" {
		t.Errorf("@LOOP: got %s", lines[0])
	}
	// @i (first use) -> ram 16, both uses must agree
	if lines[2] != lines[3] {
		t.Errorf("@i uses should resolve identically: %s != %s", lines[2], lines[3])
	}
	if lines[2] != "0000000000010000" {
		t.Errorf("@i: got %s, want address 16", lines[2])
	}
	// @END -> rom 5 (it follows @LOOP, D=A, @i, @i and @END)
	if lines[4] != "0000000000000101" {
		t.Errorf("@END: got %s", lines[4])
	}
}

// P8: boundary of the address literal range.
func TestAssemble_AddressBoundary(t *testing.T) {
	got := assemble(t, "@32767\n")
	want := "0111111111111111\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	var out strings.Builder
	if err := asm.Assemble("t", strings.NewReader("@32768\n"), &out); err == nil {
		t.Error("expected error for @32768, got none")
	}
}

// P5: predefined symbols are never remapped, regardless of program content.
func TestAssemble_PredefinedSymbolsStable(t *testing.T) {
	src := "@SP\n@LCL\n@ARG\n@THIS\n@THAT\n@SCREEN\n@KBD\n@R0\n@R15\n"
	got := assemble(t, src)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	wantAddr := []int{0, 1, 2, 3, 4, 16384, 24576, 0, 15}
	for i, w := range wantAddr {
		if got := binToInt(lines[i]); got != w {
			t.Errorf("line %d: got address %d, want %d", i, got, w)
		}
	}
}

// P6: successive undefined symbols map to strictly increasing addresses
// starting at 16, and a repeated symbol reuses its first address.
func TestAssemble_VariableMonotonicity(t *testing.T) {
	got := assemble(t, "@foo\n@bar\n@foo\n@baz\n")
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	foo := binToInt(lines[0])
	bar := binToInt(lines[1])
	foo2 := binToInt(lines[2])
	baz := binToInt(lines[3])
	if foo != 16 || bar != 17 || baz != 18 {
		t.Errorf("got foo=%d bar=%d baz=%d, want 16,17,18", foo, bar, baz)
	}
	if foo != foo2 {
		t.Errorf("second use of foo resolved to %d, want %d", foo2, foo)
	}
}

func TestAssemble_DuplicateLabelIsFatal(t *testing.T) {
	var out strings.Builder
	err := asm.Assemble("t", strings.NewReader("(LOOP)\n@LOOP\n(LOOP)\n"), &out)
	if err == nil {
		t.Fatal("expected error for duplicate label")
	}
}

func TestAssemble_UnknownMnemonic(t *testing.T) {
	var out strings.Builder
	err := asm.Assemble("t", strings.NewReader("D=Q\n"), &out)
	if err == nil {
		t.Fatal("expected error for unknown comp mnemonic")
	}
}

func TestDisassemble_RoundTrip(t *testing.T) {
	for _, src := range []string{"0;JMP", "D=D+A", "AMD=M-1;JLE"} {
		line := assemble(t, src+"\n")
		line = strings.TrimRight(line, "\n")
		inst, err := asm.Disassemble(line)
		if err != nil {
			t.Fatalf("Disassemble(%q): %v", line, err)
		}
		c, ok := inst.(asm.CInstruction)
		if !ok {
			t.Fatalf("expected CInstruction, got %T", inst)
		}
		if c.String() != src {
			t.Errorf("round trip: got %q, want %q", c.String(), src)
		}
	}
}

func binToInt(s string) int {
	n := 0
	for _, c := range s {
		n <<= 1
		if c == '1' {
			n |= 1
		}
	}
	return n
}
