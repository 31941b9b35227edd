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

package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/copy-dir-safe/cmd/copy-dir-safe/opts"
	"github.com/walteh/copy-dir-safe/pkg/config"
	"github.com/walteh/copy-dir-safe/pkg/log"
	"github.com/walteh/copy-dir-safe/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

const description = "Copies files defined by a pattern from source to destination directory. " +
	"In case of file name collision, both files are placed in destination directory " +
	"and the existing one is renamed using the tag provided"

// runError marks failures that happen after the arguments were accepted
type runError struct {
	err error
}

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

// newRootCmd creates the single copy-dir-safe command
func newRootCmd() *cobra.Command {
	flags := &opts.Flags{}

	cmd := &cobra.Command{
		Use:   "copy-dir-safe --src-dir <path> --dst-dir <path> --src-tag <tag>",
		Short: "Copy files matching a pattern without losing existing ones",
		Long: description + `.

For every file in --src-dir matching --file-pattern (one level, no recursion):
1. If no file with the same name exists in --dst-dir, it is copied
2. If one exists with the same size, it is left alone
3. Otherwise the existing file is renamed to <name>-<src-tag>.<ext> and the file is copied`,
		Args:          cobra.NoArgs,
		Version:       GetVersionInfo().Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Config()
			if err != nil {
				return err
			}

			if err := runCopy(cmd.Context(), cmd.OutOrStdout(), flags, cfg); err != nil {
				return &runError{err: err}
			}
			return nil
		},
	}

	cmd.SetVersionTemplate(FormatVersion())
	flags.Register(cmd)

	return cmd
}

// runCopy performs one copy pass and reports the outcome
func runCopy(ctx context.Context, out io.Writer, flags *opts.Flags, cfg config.Config) error {
	logger := log.FromContext(ctx)
	if flags.Debug {
		logger.SetLevel(zerolog.DebugLevel)
	}

	logger.Info(description)
	logger.Infof("cmd_options: %s", cfg)

	report, err := operation.NewCopyOperation(operation.Options{Config: cfg}).Execute(ctx)
	if err != nil {
		return errors.Errorf("copying files: %w", err)
	}

	logger.Successf("copy completed: %s", report.FormatCounts())

	if flags.Summary {
		if err := report.Render(out); err != nil {
			return err
		}
	}

	return nil
}
