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

package opts

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/walteh/copy-dir-safe/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// requiredFlags must be present on the command line
var requiredFlags = []string{"src-dir", "dst-dir", "src-tag"}

// Flags holds the raw command line values
type Flags struct {
	SrcDir      string
	DstDir      string
	SrcTag      string
	FilePattern string
	SrcTagAll   BoolValue
	Debug       bool
	Summary     bool
}

// Register binds the flags to cmd and marks the required ones
func (f *Flags) Register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.SrcDir, "src-dir", "", "Source directory to copy files from")
	fl.StringVar(&f.DstDir, "dst-dir", "", "Destination directory to copy files to")
	fl.StringVar(&f.SrcTag, "src-tag", "", "Suffix used to rename an existing destination file with the same name")
	fl.StringVar(&f.FilePattern, "file-pattern", config.DefaultFilePattern, "Pattern to filter files to copy")

	f.SrcTagAll = true
	fl.Var(&f.SrcTagAll, "src-tag-all", "Accepted for compatibility, has no effect")

	fl.BoolVarP(&f.Debug, "debug", "d", false, "enable debug logging")
	fl.BoolVar(&f.Summary, "summary", false, "print a summary table when done")

	for _, name := range requiredFlags {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}

// Config validates the flag values and builds the run configuration
func (f *Flags) Config() (config.Config, error) {
	return config.New(f.SrcDir, f.DstDir, f.SrcTag, f.FilePattern, bool(f.SrcTagAll))
}

// BoolValue is a boolean flag that always takes a value, so both
// "--flag false" and "--flag=false" are accepted.
type BoolValue bool

var _ pflag.Value = (*BoolValue)(nil)

func (b *BoolValue) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return errors.Errorf("parsing %q as boolean: %w", s, err)
	}
	*b = BoolValue(v)
	return nil
}

func (b *BoolValue) String() string {
	return strconv.FormatBool(bool(*b))
}

func (b *BoolValue) Type() string {
	return "true|false"
}
