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

// Kind is the closed set of VM command shapes.
type Kind int

const (
	KindArithmetic Kind = iota
	KindPush
	KindPop
	KindLabel
	KindGoto
	KindIfGoto
	KindFunction
	KindCall
	KindReturn
)

// ArithOp is the closed set of arithmetic/logic operators.
type ArithOp int

const (
	OpAdd ArithOp = iota
	OpSub
	OpNeg
	OpEq
	OpGt
	OpLt
	OpAnd
	OpOr
	OpNot
)

var arithNames = [...]string{"add", "sub", "neg", "eq", "gt", "lt", "and", "or", "not"}

var arithIndex = func() map[string]ArithOp {
	m := make(map[string]ArithOp, len(arithNames))
	for i, name := range arithNames {
		m[name] = ArithOp(i)
	}
	return m
}()

func (op ArithOp) String() string { return arithNames[op] }

// Segment is the closed set of addressable memory segments.
type Segment int

const (
	SegConstant Segment = iota
	SegLocal
	SegArgument
	SegThis
	SegThat
	SegStatic
	SegTemp
	SegPointer
)

var segmentNames = [...]string{"constant", "local", "argument", "this", "that", "static", "temp", "pointer"}

var segmentIndex = func() map[string]Segment {
	m := make(map[string]Segment, len(segmentNames))
	for i, name := range segmentNames {
		m[name] = Segment(i)
	}
	return m
}()

func (s Segment) String() string { return segmentNames[s] }

// Command is one parsed line of VM source. Exactly the fields relevant to
// Kind are populated; Line is always set, for diagnostics.
type Command struct {
	Kind Kind
	Line int

	Op  ArithOp // KindArithmetic
	Seg Segment // KindPush, KindPop
	Idx int     // KindPush, KindPop

	Name string // KindLabel, KindGoto, KindIfGoto, KindFunction, KindCall
	N    int    // KindFunction: nLocals. KindCall: nArgs.
}
