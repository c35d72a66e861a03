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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymbolTable_IndexesPerKind(t *testing.T) {
	st := NewSymbolTable()
	st.Define("x", "int", KindVar)
	st.Define("y", "int", KindVar)
	st.Define("a", "int", KindArg)

	sx, ok := st.Lookup("x")
	require.True(t, ok)
	require.Equal(t, 0, sx.Index)

	sy, ok := st.Lookup("y")
	require.True(t, ok)
	require.Equal(t, 1, sy.Index)

	sa, ok := st.Lookup("a")
	require.True(t, ok)
	require.Equal(t, 0, sa.Index)

	require.Equal(t, 2, st.VarCount(KindVar))
	require.Equal(t, 1, st.VarCount(KindArg))
}

func TestSymbolTable_RedefinitionShadows(t *testing.T) {
	st := NewSymbolTable()
	st.Define("x", "int", KindVar)
	st.Define("x", "boolean", KindVar)

	s, ok := st.Lookup("x")
	require.True(t, ok)
	require.Equal(t, "boolean", s.Type)
	require.Equal(t, 1, s.Index)
}

func TestSymbolTable_UnknownNameNotFound(t *testing.T) {
	st := NewSymbolTable()
	_, ok := st.Lookup("missing")
	require.False(t, ok)
}
