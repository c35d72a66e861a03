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

// Package fsdiscover resolves the CLI path argument shared by the compiler
// and VM translator into a concrete list of source files to process.
//
// This is deliberately outside the three translation engines: it never
// inspects file contents, only names and directory entries, and the order it
// returns is the order the engines process files in (§5 of the toolchain
// design: sequential, stably ordered, no concurrency).
package fsdiscover

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ErrNotFound is returned when the requested path does not exist.
var ErrNotFound = errors.New("path not found")

// Sources resolves path into a sorted list of files bearing the given
// extension (without the leading dot, e.g. "jack" or "vm").
//
// If path is a single file, it must already carry the extension and the
// returned slice contains just that one path. If path is a directory, every
// entry (non-recursive) whose name ends in "."+ext is returned, sorted
// lexically so that directory-mode runs are reproducible across platforms
// whose directory iteration order differs.
func Sources(path, ext string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "%s", path)
		}
		return nil, errors.Wrap(err, "stat")
	}

	suffix := "." + ext
	if !info.IsDir() {
		if !strings.HasSuffix(path, suffix) {
			return nil, errors.Errorf("%s: expected a %s file", path, suffix)
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrap(err, "read directory")
	}

	names := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			return "", false
		}
		return filepath.Join(path, e.Name()), true
	})
	sort.Strings(names)
	if len(names) == 0 {
		return nil, errors.Errorf("%s: no %s files found", path, suffix)
	}
	return names, nil
}

// Stem returns the base name of path with its extension and directory
// stripped, e.g. Stem("foo/Bar.jack") == "Bar". Used to name the emitted
// output file and, for the VM translator, to qualify static variable labels
// ("FILE.index") and the bootstrap/directory output name.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IsDir reports whether path is a directory. Used by a stage's CLI layer to
// decide the output file name (single file: replace extension in place;
// directory: Dir/Dir.ext).
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
