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

func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	lex := NewLexer("t", strings.NewReader(src))
	var toks []Token
	for {
		tok, err := lex.Next()
		require.NoError(t, err)
		if tok.Kind == tokenEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestLexer_SkipsComments(t *testing.T) {
	toks := lexAll(t, "// line comment\nlet /* block\ncomment */ x = 1;")
	require.Len(t, toks, 5)
	require.Equal(t, "let", toks[0].Text)
	require.Equal(t, "x", toks[1].Text)
}

func TestLexer_StringConstant(t *testing.T) {
	toks := lexAll(t, `"hello world"`)
	require.Len(t, toks, 1)
	require.Equal(t, TokenStringConst, toks[0].Kind)
	require.Equal(t, "hello world", toks[0].Text)
}

func TestLexer_UnterminatedStringIsFatal(t *testing.T) {
	lex := NewLexer("t", strings.NewReader(`"oops`))
	_, err := lex.Next()
	require.Error(t, err)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestLexer_UnterminatedBlockCommentIsFatal(t *testing.T) {
	lex := NewLexer("t", strings.NewReader("/* never closed"))
	_, err := lex.Next()
	require.Error(t, err)
}

func TestLexer_IntegerOutOfRangeIsFatal(t *testing.T) {
	lex := NewLexer("t", strings.NewReader("32768"))
	_, err := lex.Next()
	require.Error(t, err)
}

func TestLexer_KeywordVsIdentifier(t *testing.T) {
	toks := lexAll(t, "class classroom")
	require.Equal(t, TokenKeyword, toks[0].Kind)
	require.Equal(t, TokenIdentifier, toks[1].Kind)
}

func TestLexer_DivideNotConfusedWithComment(t *testing.T) {
	toks := lexAll(t, "x / y")
	require.Len(t, toks, 3)
	require.Equal(t, TokenSymbol, toks[1].Kind)
	require.Equal(t, "/", toks[1].Text)
}
