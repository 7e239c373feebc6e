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

package version

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/jlsalvador/enriched-utilities/internal/cmd"
	"github.com/jlsalvador/enriched-utilities/internal/version"
)

func TestCmdFn(t *testing.T) {
	var stdout bytes.Buffer
	orgStdout := cmd.Stdout
	cmd.Stdout = &stdout
	defer func() { cmd.Stdout = orgStdout }()

	orgReadBuildInfo := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{GoVersion: "go1.25.6", Path: "example.com/enriched"}, true
	}
	defer func() { readBuildInfo = orgReadBuildInfo }()

	if err := CmdFn(t.Context(), nil); err != nil {
		t.Fatalf("CmdFn() returned error: %v", err)
	}
	want := version.AppName + "\tv" + version.AppVersion + "\n"
	if stdout.String() != want {
		t.Errorf("CmdFn() printed %q, want %q", stdout.String(), want)
	}

	stdout.Reset()
	if err := CmdFn(t.Context(), []string{"-v"}); err != nil {
		t.Fatalf("CmdFn() returned error: %v", err)
	}
	if !strings.Contains(stdout.String(), "example.com/enriched") {
		t.Errorf("build information missing: %q", stdout.String())
	}
}
