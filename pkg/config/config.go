// Copyright 2025 walteh LLC
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

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// DefaultFilePattern matches every entry with an extension in the source directory.
const DefaultFilePattern = "*.*"

var (
	// ErrMissingOption is returned when a required option is empty
	ErrMissingOption = errors.Base("missing required option")
	// ErrInvalidOption is returned when an option has an unusable value
	ErrInvalidOption = errors.Base("invalid option")
)

// 📚 Config holds the options of a single copy run.
// It is passed by value and never modified after New returns.
type Config struct {
	SrcDir      string // Directory to copy files from
	DstDir      string // Directory to copy files to
	SrcTag      string // Suffix for renaming colliding destination files
	FilePattern string // Single-level glob applied to entries of SrcDir
	SrcTagAll   bool   // Accepted for compatibility, has no effect
}

// 🏭 New builds a validated Config. An empty filePattern falls back to DefaultFilePattern.
func New(srcDir, dstDir, srcTag, filePattern string, srcTagAll bool) (Config, error) {
	if filePattern == "" {
		filePattern = DefaultFilePattern
	}

	cfg := Config{
		SrcDir:      srcDir,
		DstDir:      dstDir,
		SrcTag:      srcTag,
		FilePattern: filePattern,
		SrcTagAll:   srcTagAll,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// 🔍 Validate checks that the options can drive a copy run
func (c Config) Validate() error {
	required := []struct {
		flag  string
		value string
	}{
		{"src-dir", c.SrcDir},
		{"dst-dir", c.DstDir},
		{"src-tag", c.SrcTag},
	}
	for _, r := range required {
		if r.value == "" {
			return errors.Errorf("%w: --%s", ErrMissingOption, r.flag)
		}
	}

	if hasSeparator(c.SrcTag) {
		return errors.Errorf("%w: src-tag %q must not contain a path separator", ErrInvalidOption, c.SrcTag)
	}

	if c.FilePattern == "" {
		return errors.Errorf("%w: --file-pattern", ErrMissingOption)
	}
	if hasSeparator(c.FilePattern) {
		return errors.Errorf("%w: file-pattern %q must not contain a path separator", ErrInvalidOption, c.FilePattern)
	}
	if !doublestar.ValidatePattern(c.FilePattern) {
		return errors.Errorf("%w: file-pattern %q is not a valid glob", ErrInvalidOption, c.FilePattern)
	}

	return nil
}

func hasSeparator(s string) bool {
	return strings.ContainsRune(s, '/') || strings.ContainsRune(s, filepath.Separator)
}

// 📝 String renders the options for the start-up log line
func (c Config) String() string {
	return fmt.Sprintf("src_dir: '%s', dst_dir: '%s', src_tag: '%s', file_pattern: '%s', src_tag_all: '%t'",
		c.SrcDir, c.DstDir, c.SrcTag, c.FilePattern, c.SrcTagAll)
}
