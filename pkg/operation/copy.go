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

package operation

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"github.com/walteh/copy-dir-safe/pkg/config"
	"github.com/walteh/copy-dir-safe/pkg/fileops"
	"github.com/walteh/copy-dir-safe/pkg/log"
	"github.com/walteh/copy-dir-safe/pkg/status"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// 🔧 Options contains configuration for a copy operation
type Options struct {
	// Config holds the validated run options
	Config config.Config
	// Fs is the filesystem to operate on, the OS filesystem when nil
	Fs afero.Fs
}

// 📦 CopyOperation copies the matching files of one directory into another
type CopyOperation struct {
	cfg   config.Config
	store *fileops.Store
}

// 📦 NewCopyOperation creates a new copy operation
func NewCopyOperation(opts Options) *CopyOperation {
	return &CopyOperation{
		cfg:   opts.Config,
		store: fileops.New(opts.Fs),
	}
}

// 🏃 Execute runs the copy pass once. The logger is taken from ctx.
// On error the returned report holds the entries processed before the failure.
func (op *CopyOperation) Execute(ctx context.Context) (*status.Report, error) {
	logger := log.FromContext(ctx)
	report := status.NewReport(op.cfg.SrcDir, op.cfg.DstDir)

	files, err := op.listFiles(ctx, report)
	if err != nil {
		return report, errors.Errorf("listing files: %w", err)
	}
	report.Matched = len(files)

	logger.Infof("%d files found in %s directory", len(files), logger.Highlight(op.cfg.SrcDir))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return report, errors.Errorf("copy interrupted: %w", err)
		}

		entry, err := op.processFile(ctx, file)
		if err != nil {
			return report, errors.Errorf("processing file %s: %w", file.Name(), err)
		}
		report.Track(entry)
	}

	return report, nil
}

// 📂 listFiles returns the source entries matching the pattern, one level deep.
// Matching directories are recorded as ignored and left out.
func (op *CopyOperation) listFiles(ctx context.Context, report *status.Report) ([]os.FileInfo, error) {
	logger := log.FromContext(ctx)

	entries, err := op.store.ReadDir(ctx, op.cfg.SrcDir)
	if err != nil {
		return nil, err
	}

	var files []os.FileInfo
	for _, entry := range entries {
		ok, err := matchName(op.cfg.FilePattern, entry.Name())
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		// follow symlinks so a link is judged by its target
		path := filepath.Join(op.cfg.SrcDir, entry.Name())
		info, exists, err := op.store.Lookup(ctx, path)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errors.Errorf("source entry %s: dangling link", path)
		}

		if info.IsDir() {
			logger.Warningf("%s is a directory, skipping", logger.Highlight(entry.Name()))
			report.Track(status.FileEntry{Name: entry.Name(), Status: status.StatusIgnored})
			continue
		}

		logger.Debugf("matched %s", path)
		files = append(files, info)
	}

	return files, nil
}

// 📄 processFile applies the collision policy to one file and copies it
func (op *CopyOperation) processFile(ctx context.Context, file os.FileInfo) (status.FileEntry, error) {
	logger := log.FromContext(ctx)

	name := file.Name()
	srcPath := filepath.Join(op.cfg.SrcDir, name)
	dstPath := filepath.Join(op.cfg.DstDir, name)
	entry := status.FileEntry{Name: name, Status: status.StatusCopied, Size: file.Size()}

	logger.Infof("%s: copying started ...", logger.Highlight(name))

	existing, exists, err := op.store.Lookup(ctx, dstPath)
	if err != nil {
		return entry, err
	}

	if exists {
		logger.Warningf("file with %s name already exists in target directory", logger.Highlight(name))

		if existing.Size() == file.Size() {
			logger.LogFileOperation(ctx, log.FileOperation{
				Name:      name,
				Status:    "files are of the same size (" + formatBytes(file.Size()) + " bytes). skipping.",
				Size:      file.Size(),
				IsSkipped: true,
			})
			entry.Status = status.StatusSkipped
			return entry, nil
		}

		tagged := TagFileName(name, op.cfg.SrcTag)
		taggedPath := filepath.Join(op.cfg.DstDir, tagged)

		_, clash, err := op.store.Lookup(ctx, taggedPath)
		if err != nil {
			return entry, err
		}
		if clash {
			logger.Warningf("%s already exists and will be replaced", logger.Highlight(tagged))
		}

		if err := op.store.Rename(ctx, dstPath, taggedPath); err != nil {
			return entry, err
		}
		logger.Warningf("existing %s file was renamed to %s", logger.Highlight(name), logger.Highlight(tagged))

		entry.Status = status.StatusReplaced
		entry.RenamedTo = tagged
	}

	written, err := op.store.CopyFile(ctx, srcPath, dstPath)
	if err != nil {
		return entry, err
	}

	logger.LogFileOperation(ctx, log.FileOperation{
		Name:     name,
		Status:   "copying completed.",
		Size:     written,
		IsNew:    true,
		IsTagged: entry.RenamedTo != "",
	})

	return entry, nil
}

// matchName reports whether a directory entry name matches pattern.
// Names starting with a dot only match patterns that start with a dot.
func matchName(pattern, name string) (bool, error) {
	if strings.HasPrefix(name, ".") && !strings.HasPrefix(pattern, ".") {
		return false, nil
	}
	ok, err := doublestar.Match(pattern, name)
	if err != nil {
		return false, errors.Errorf("matching pattern %q: %w", pattern, err)
	}
	return ok, nil
}

var bytePrinter = message.NewPrinter(language.English)

// formatBytes renders n with thousands separators
func formatBytes(n int64) string {
	return bytePrinter.Sprintf("%d", n)
}
