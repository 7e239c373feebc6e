// Copyright 2025 José Luis Salvador Rufo <salvador.joseluis@gmail.com>
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

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jlsalvador/enriched-utilities/pkg/log"
)

func isYaml(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func parseYamlFile(filename string) ([]any, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	manifests, err := Scheme.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	log.Debug(
		"message", "configuration file loaded",
		"file.path", filename,
		"manifests", len(manifests),
	).Print()

	return manifests, nil
}

// parseYamlPath decodes the file at path, or every YAML file directly in
// path if it is a directory, sorted by name.
func parseYamlPath(path string) ([]any, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return parseYamlFile(path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, entry := range entries {
		if !entry.IsDir() && isYaml(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)

	manifests := []any{}
	for _, name := range names {
		ms, err := parseYamlFile(filepath.Join(path, name))
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, ms...)
	}

	return manifests, nil
}

// Load returns the defaults overridden by the manifests found in paths,
// files or directories, and then by the environment.
//
// The result is not validated.
func Load(paths []string) (*Config, error) {
	cfg := Default()

	for _, path := range paths {
		manifests, err := parseYamlPath(path)
		if err != nil {
			return nil, err
		}
		if err := cfg.ApplyManifests(manifests); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}
