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

import "io"

// Source is one VM translation unit: Stem is its file name without
// directory or extension (qualifies static variables and diagnostics), and
// Reader supplies its VM text.
type Source struct {
	Stem   string
	Reader io.Reader
}

// Translate lowers every source, in order, to Hack assembly written to w.
// Writes are strictly ordered by source order (§5) - there is no
// concurrency here. When bootstrap is true, the standard initialization
// sequence (SP=256; call Sys.init 0) is written ahead of the first source's
// output; single-file translation should pass false.
//
// The first parse or write error aborts the whole run.
func Translate(sources []Source, w io.Writer, bootstrap bool) error {
	e := NewEmitter(w, WithBootstrap(bootstrap))
	for _, src := range sources {
		cmds, err := Parse(src.Stem, src.Reader)
		if err != nil {
			return err
		}
		e.SetFile(src.Stem)
		e.currentFunction = ""
		for _, cmd := range cmds {
			if err := e.Emit(cmd); err != nil {
				return err
			}
		}
	}
	// Runs with no commands at all (no sources, or only empty ones) still
	// emit initialization via a direct emitBootstrap call so
	// WithBootstrap(true) is honored unconditionally.
	if bootstrap && !e.bootstrapDone {
		e.emitBootstrap()
		e.bootstrapDone = true
		return e.Err()
	}
	return e.Err()
}
