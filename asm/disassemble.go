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

import (
	"strconv"

	"github.com/pkg/errors"
)

// Disassemble decodes one 16-character Hack binary line back into an
// Instruction. Not part of the reference toolchain's scope, but a natural
// debugging companion to Assemble - see cmd/hasm's -disasm flag.
func Disassemble(line string) (Instruction, error) {
	if len(line) != 16 {
		return nil, errors.Errorf("expected a 16-character line, got %d characters", len(line))
	}
	for _, c := range line {
		if c != '0' && c != '1' {
			return nil, errors.Errorf("line contains non-binary character %q", c)
		}
	}

	if line[0] == '0' {
		addr, err := strconv.ParseInt(line[1:], 2, 32)
		if err != nil {
			return nil, errors.Wrap(err, "decode address")
		}
		return newA(0, strconv.Itoa(int(addr))), nil
	}

	comp, ok := compMnemonic[line[3:10]]
	if !ok {
		return nil, errors.Errorf("unknown comp field %s", line[3:10])
	}
	dest, ok := destMnemonic[line[10:13]]
	if !ok {
		return nil, errors.Errorf("unknown dest field %s", line[10:13])
	}
	jump, ok := jumpMnemonic[line[13:16]]
	if !ok {
		return nil, errors.Errorf("unknown jump field %s", line[13:16])
	}
	return newC(0, dest, comp, jump), nil
}
