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

package vm

import (
	"io"
	"strconv"

	"github.com/hackforge/n2t/internal/ngi"
)

// Option configures an Emitter at construction time.
type Option func(*Emitter)

// WithBootstrap enables prepending the standard bootstrap sequence (set
// SP=256, call Sys.init 0) the first time Emit is called. Directory-mode
// translation enables this; single-file mode leaves it off (§4.5).
func WithBootstrap(enabled bool) Option {
	return func(e *Emitter) { e.bootstrap = enabled }
}

// Emitter lowers VM commands to Hack assembly, one command at a time. All
// per-run state (current file/function, per-op label counters) lives on the
// instance, never at package scope, so a toolchain driver can run several
// translations in the same process without cross-contamination (§5).
type Emitter struct {
	w   *ngi.ErrWriter
	err error

	currentFile     string
	currentFunction string

	eqCounter     int
	gtCounter     int
	ltCounter     int
	callCounter   int
	bootstrap     bool
	bootstrapDone bool
}

// NewEmitter returns an Emitter writing assembly lines to w.
func NewEmitter(w io.Writer, opts ...Option) *Emitter {
	e := &Emitter{w: ngi.NewErrWriter(w)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetFile sets the name used to qualify static variables ("file.index") for
// subsequently emitted commands. Called once per input .vm file.
func (e *Emitter) SetFile(name string) { e.currentFile = name }

// Err returns the first write error encountered, if any.
func (e *Emitter) Err() error {
	if e.err != nil {
		return e.err
	}
	return e.w.Err
}

func (e *Emitter) emit(lines ...string) {
	for _, l := range lines {
		e.w.WriteLine(l)
	}
}

// Emit lowers a single command to its assembly template (§4.5). It ensures
// the bootstrap sequence is emitted first, if enabled.
func (e *Emitter) Emit(c Command) error {
	if e.bootstrap && !e.bootstrapDone {
		e.emitBootstrap()
		e.bootstrapDone = true
	}
	switch c.Kind {
	case KindArithmetic:
		e.emitArithmetic(c.Op)
	case KindPush:
		e.emitPush(c.Seg, c.Idx)
	case KindPop:
		e.emitPop(c.Seg, c.Idx)
	case KindLabel:
		e.emit("(" + e.scopedLabel(c.Name) + ")")
	case KindGoto:
		e.emit("@"+e.scopedLabel(c.Name), "0;JMP")
	case KindIfGoto:
		e.emit("@SP", "AM=M-1", "D=M", "@"+e.scopedLabel(c.Name), "D;JNE")
	case KindFunction:
		e.emitFunction(c.Name, c.N)
	case KindCall:
		e.emitCall(c.Name, c.N)
	case KindReturn:
		e.emitReturn()
	}
	return e.Err()
}

func (e *Emitter) emitBootstrap() {
	e.emit("@256", "D=A", "@SP", "M=D")
	e.emitCall("Sys.init", 0)
}

// scopedLabel qualifies a user label with the enclosing function, matching
// the "FUNC$LABEL" scheme described in §3.2/§4.5. Labels defined outside any
// function (legal only in single-file translation of hand-written test
// programs) are left bare.
func (e *Emitter) scopedLabel(name string) string {
	if e.currentFunction == "" {
		return name
	}
	return e.currentFunction + "$" + name
}

var segmentBase = map[Segment]string{
	SegLocal:    "LCL",
	SegArgument: "ARG",
	SegThis:     "THIS",
	SegThat:     "THAT",
}

func (e *Emitter) emitPush(seg Segment, idx int) {
	switch seg {
	case SegConstant:
		e.emit("@"+strconv.Itoa(idx), "D=A")
	case SegLocal, SegArgument, SegThis, SegThat:
		e.emit("@"+segmentBase[seg], "D=M", "@"+strconv.Itoa(idx), "A=D+A", "D=M")
	case SegTemp:
		e.emit("@"+strconv.Itoa(5+idx), "D=M")
	case SegPointer:
		e.emit("@"+pointerTarget(idx), "D=M")
	case SegStatic:
		e.emit("@"+e.currentFile+"."+strconv.Itoa(idx), "D=M")
	}
	e.emit("@SP", "M=M+1", "A=M-1", "M=D")
}

func (e *Emitter) emitPop(seg Segment, idx int) {
	switch seg {
	case SegLocal, SegArgument, SegThis, SegThat:
		e.emit("@"+segmentBase[seg], "D=M", "@"+strconv.Itoa(idx), "D=D+A", "@R13", "M=D")
		e.emit("@SP", "AM=M-1", "D=M", "@R13", "A=M", "M=D")
	case SegTemp:
		e.emit("@SP", "AM=M-1", "D=M", "@"+strconv.Itoa(5+idx), "M=D")
	case SegPointer:
		e.emit("@SP", "AM=M-1", "D=M", "@"+pointerTarget(idx), "M=D")
	case SegStatic:
		e.emit("@SP", "AM=M-1", "D=M", "@"+e.currentFile+"."+strconv.Itoa(idx), "M=D")
	}
}

func pointerTarget(idx int) string {
	if idx == 0 {
		return "THIS"
	}
	return "THAT"
}

func (e *Emitter) emitArithmetic(op ArithOp) {
	switch op {
	case OpNeg:
		e.emit("@SP", "A=M-1", "M=-M")
	case OpNot:
		e.emit("@SP", "A=M-1", "M=!M")
	case OpAdd:
		e.binary("M=M+D")
	case OpSub:
		e.binary("M=M-D")
	case OpAnd:
		e.binary("M=M&D")
	case OpOr:
		e.binary("M=M|D")
	case OpEq:
		e.compare("EQ", "JEQ", &e.eqCounter)
	case OpGt:
		e.compare("GT", "JGT", &e.gtCounter)
	case OpLt:
		e.compare("LT", "JLT", &e.ltCounter)
	}
}

func (e *Emitter) binary(apply string) {
	e.emit("@SP", "AM=M-1", "D=M", "A=A-1", apply)
}

// compare emits one comparison op. op tags the label with the comparison
// being performed (EQ/GT/LT) so that a program mixing comparisons - which is
// to say essentially every real program - never produces the same label for
// two different ops; only a per-op counter, without the op in the label,
// would collide (e.g. the first eq and the first gt both landing on label
// 0). Mirrors original_source/VirtualMachine/CodeWriter.c's EQ%d/GT%d/LT%d
// naming.
func (e *Emitter) compare(op, jump string, counter *int) {
	n := strconv.Itoa(*counter)
	*counter++
	trueLabel := "CMP." + op + ".TRUE." + n
	endLabel := "CMP." + op + ".END." + n
	e.emit(
		"@SP", "AM=M-1", "D=M", "A=A-1", "D=M-D",
		"@"+trueLabel, "D;"+jump,
		"@SP", "A=M-1", "M=0",
		"@"+endLabel, "0;JMP",
		"("+trueLabel+")",
		"@SP", "A=M-1", "M=-1",
		"("+endLabel+")",
	)
}

func (e *Emitter) emitFunction(name string, nLocals int) {
	e.currentFunction = name
	e.emit("(" + name + ")")
	for i := 0; i < nLocals; i++ {
		e.emit("@SP", "M=M+1", "A=M-1", "M=0")
	}
}

func (e *Emitter) emitCall(name string, nArgs int) {
	ret := e.scopedLabel("ret." + strconv.Itoa(e.callCounter))
	e.callCounter++
	e.emit("@"+ret, "D=A", "@SP", "M=M+1", "A=M-1", "M=D")
	for _, reg := range []string{"LCL", "ARG", "THIS", "THAT"} {
		e.emit("@"+reg, "D=M", "@SP", "M=M+1", "A=M-1", "M=D")
	}
	e.emit(
		"@"+strconv.Itoa(nArgs+5), "D=A", "@SP", "D=M-D", "@ARG", "M=D",
		"@SP", "D=M", "@LCL", "M=D",
		"@"+name, "0;JMP",
		"("+ret+")",
	)
}

func (e *Emitter) emitReturn() {
	e.emit(
		"@LCL", "D=M", "@R13", "M=D", // R13 = FRAME
		"@5", "A=D-A", "D=M", "@R14", "M=D", // R14 = RET
		"@SP", "AM=M-1", "D=M", "@ARG", "A=M", "M=D", // *ARG = pop()
		"@ARG", "D=M+1", "@SP", "M=D", // SP = ARG+1
		"@R13", "AM=M-1", "D=M", "@THAT", "M=D",
		"@R13", "AM=M-1", "D=M", "@THIS", "M=D",
		"@R13", "AM=M-1", "D=M", "@ARG", "M=D",
		"@R13", "AM=M-1", "D=M", "@LCL", "M=D",
		"@R14", "A=M", "0;JMP",
	)
}
