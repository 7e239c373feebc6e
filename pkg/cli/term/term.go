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

// Package term answers questions about the terminal attached to a file.
package term

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"sync"

	xterm "golang.org/x/term"
)

var (
	isTerminalCache   = map[uintptr]bool{}
	isTerminalCacheMu sync.RWMutex
)

// For testing mockups.
var (
	readPasswordFn = xterm.ReadPassword
	isTerminalFd   = xterm.IsTerminal
)

// IsTerminal checks whether the given writer is connected to a terminal.
//
// This function is thread-safe and efficient for repeated calls.
func IsTerminal(w io.Writer) bool {
	// The writer must be a file descriptor.
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	// Already cached.
	isTerminalCacheMu.RLock()
	v, exists := isTerminalCache[fd]
	isTerminalCacheMu.RUnlock()
	if exists {
		return v
	}

	isTTY := isTerminalFd(int(fd))

	// Cache the result.
	isTerminalCacheMu.Lock()
	isTerminalCache[fd] = isTTY
	isTerminalCacheMu.Unlock()

	return isTTY
}

// ReadSecret reads one line from f without echoing it when f is a
// terminal. The trailing line break is removed.
func ReadSecret(f *os.File) ([]byte, error) {
	if IsTerminal(f) {
		return readPasswordFn(int(f.Fd()))
	}
	return ReadLine(f)
}

// ReadLine reads one line from r. The trailing line break is removed. An
// empty input is not an error.
func ReadLine(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return bytes.TrimRight(line, "\r\n"), nil
}
