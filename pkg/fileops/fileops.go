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

// Package fileops wraps the filesystem primitives a copy run needs.
package fileops

import (
	"context"
	"io"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// 💾 Store performs file operations on an afero filesystem
type Store struct {
	fs afero.Fs
}

// 🏭 New creates a store backed by fs. A nil fs means the OS filesystem.
func New(fs afero.Fs) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs}
}

// 📂 ReadDir lists the immediate children of dir, sorted by name
func (s *Store) ReadDir(ctx context.Context, dir string) ([]os.FileInfo, error) {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, errors.Errorf("reading directory %s: %w", dir, err)
	}
	return entries, nil
}

// 🔍 Lookup stats path. A missing path is reported as (nil, false, nil).
func (s *Store) Lookup(ctx context.Context, path string) (os.FileInfo, bool, error) {
	info, err := s.fs.Stat(path)
	if err == nil {
		return info, true, nil
	}
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	return nil, false, errors.Errorf("checking file existence: %w", err)
}

// 🔄 Rename moves oldpath to newpath, replacing newpath if it exists
func (s *Store) Rename(ctx context.Context, oldpath, newpath string) error {
	if err := s.fs.Rename(oldpath, newpath); err != nil {
		return errors.Errorf("renaming %s to %s: %w", oldpath, newpath, err)
	}
	return nil
}

// 📋 CopyFile copies the content, permission bits and modification time of
// src to dst and returns the number of bytes written. The parent directory of
// dst must already exist.
func (s *Store) CopyFile(ctx context.Context, src, dst string) (int64, error) {
	srcInfo, err := s.fs.Stat(src)
	if err != nil {
		return 0, errors.Errorf("opening source file: %w", err)
	}
	if srcInfo.IsDir() {
		return 0, errors.Errorf("copying %s: is a directory", src)
	}

	if err := s.requireDir(filepath.Dir(dst)); err != nil {
		return 0, err
	}

	if _, ok := s.fs.(*afero.OsFs); ok {
		return s.copyOS(src, dst, srcInfo)
	}
	return s.copyAfero(src, dst, srcInfo)
}

// requireDir fails unless dir exists and is a directory
func (s *Store) requireDir(dir string) error {
	info, err := s.fs.Stat(dir)
	if err != nil {
		return errors.Errorf("destination directory: %w", err)
	}
	if !info.IsDir() {
		return errors.Errorf("destination directory %s: not a directory", dir)
	}
	return nil
}

// copyOS uses otiai10/copy for the real filesystem
func (s *Store) copyOS(src, dst string, srcInfo os.FileInfo) (int64, error) {
	err := cp.Copy(src, dst, cp.Options{
		OnSymlink: func(string) cp.SymlinkAction {
			return cp.Deep
		},
		PermissionControl: cp.PerservePermission,
		PreserveTimes:     true,
		Sync:              true,
	})
	if err != nil {
		return 0, errors.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return srcInfo.Size(), nil
}

// copyAfero streams the file through the afero interface
func (s *Store) copyAfero(src, dst string, srcInfo os.FileInfo) (int64, error) {
	in, err := s.fs.Open(src)
	if err != nil {
		return 0, errors.Errorf("opening source file: %w", err)
	}
	defer in.Close()

	out, err := s.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return 0, errors.Errorf("creating destination file: %w", err)
	}

	written, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return written, errors.Errorf("copying %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return written, errors.Errorf("closing destination file: %w", err)
	}

	// attributes go on after close so the copied mtime sticks
	if err := s.fs.Chmod(dst, srcInfo.Mode().Perm()); err != nil {
		return written, errors.Errorf("setting permissions: %w", err)
	}
	if err := s.fs.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		return written, errors.Errorf("setting modification time: %w", err)
	}

	return written, nil
}
