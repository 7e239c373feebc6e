// Copyright 2026 José Luis Salvador Rufo <salvador.joseluis@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package directory provides helpers to copy, delete, rename and create
// temporary directories.
package directory

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNotDirectory = errors.New("not a directory")
	ErrInvalidName  = errors.New("invalid directory name")
	ErrInsideSource = errors.New("destination inside source")
)

// TempPattern is the name pattern of the directories made by [CreateTemp].
const TempPattern = "enriched-*"

// Copy copies the content of src into dst, creating dst when needed.
//
// Files already present in dst are replaced only if overwrite is set.
// Otherwise Copy fails with [fs.ErrExist] before anything is written.
// dst must not be src or below it.
func Copy(src, dst string, overwrite bool) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, src)
	}

	if inside, err := isWithin(dst, src); err != nil {
		return err
	} else if inside {
		return fmt.Errorf("%w: %s in %s", ErrInsideSource, dst, src)
	}

	if !overwrite {
		if err := checkConflicts(src, dst); err != nil {
			return err
		}
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			info, err := d.Info()
			if err != nil {
				return err
			}
			// Owner keeps write access so the content can be copied in.
			return os.MkdirAll(target, info.Mode().Perm()|0o700)

		case d.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			if overwrite {
				if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}
			return os.Symlink(link, target)

		case d.Type().IsRegular():
			return copyFile(path, target)
		}

		// Sockets, devices and pipes are skipped.
		return nil
	})
}

// isWithin reports whether path is root or below it.
func isWithin(path, root string) (bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, err
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false, err
	}

	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		// Different volumes.
		return false, nil
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)), nil
}

func checkConflicts(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if _, err := os.Lstat(target); err == nil {
			return fmt.Errorf("%w: %s", fs.ErrExist, target)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	})
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

// makeWritable gives the owner write access to path, and search access if
// it is a directory, so that its entries can be removed.
func makeWritable(path string, d fs.DirEntry) error {
	if d.Type()&fs.ModeSymlink != 0 {
		return nil
	}
	info, err := d.Info()
	if err != nil {
		return err
	}

	mode := info.Mode().Perm() | 0o200
	if d.IsDir() {
		mode |= 0o700
	}
	if mode == info.Mode().Perm() {
		return nil
	}
	return os.Chmod(path, mode)
}

// Delete removes path and everything below it, including read-only files
// and directories.
func Delete(path string) error {
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		return makeWritable(p, d)
	})
	if err != nil {
		return err
	}
	return os.RemoveAll(path)
}

// SafeDelete removes the directory at path if it exists, clearing
// read-only permissions first. Without recursive, the directory must be
// empty.
func SafeDelete(path string, recursive bool) error {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	if recursive {
		return Delete(path)
	}

	if err := makeWritable(path, fs.FileInfoToDirEntry(info)); err != nil {
		return err
	}
	return os.Remove(path)
}

// CreateTemp creates a new, uniquely named directory in [os.TempDir] and
// returns its path.
func CreateTemp() (string, error) {
	return os.MkdirTemp("", TempPattern)
}

// WithTemp creates a temporary directory, calls fn with its path and, if
// autoDelete is set, removes the directory afterwards even when fn fails.
func WithTemp(fn func(dir string) error, autoDelete bool) (err error) {
	dir, err := CreateTemp()
	if err != nil {
		return err
	}

	if autoDelete {
		defer func() {
			err = errors.Join(err, Delete(dir))
		}()
	}

	return fn(dir)
}

// Rename renames the directory at path to newName, keeping it in the same
// parent directory.
func Rename(path, newName string) error {
	if newName == "" ||
		newName == "." ||
		newName == ".." ||
		strings.ContainsRune(newName, os.PathSeparator) ||
		strings.ContainsRune(newName, '/') {
		return fmt.Errorf("%w: %q", ErrInvalidName, newName)
	}

	return os.Rename(path, filepath.Join(filepath.Dir(path), newName))
}

// Parent returns the directory levels above path. It stops at the root.
//
// Example:
//
//	Parent("/var/lib/enriched", 2) == "/var"
func Parent(path string, levels int) string {
	result := filepath.Clean(path)
	for range levels {
		parent := filepath.Dir(result)
		if parent == result {
			break
		}
		result = parent
	}
	return result
}
