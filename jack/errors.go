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

import "fmt"

// LexError reports an unterminated string/comment, an invalid character or
// an out-of-range integer constant. Fatal.
type LexError struct {
	File string
	Line int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

// ParseError reports a token mismatch against the expected grammar
// production. Fatal: compilation of the whole file aborts.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}
