// Copyright 2025 Tom Barlow
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


package params

import (
	"context"
	"os"
	"regexp"
	"strings"
)

var upperRun = regexp.MustCompile(`([A-Z])`)

// EnvSource reads parameter defaults from environment variables.
type EnvSource struct {
	lookup func(string) (string, bool)
}

// NewEnvSource reads from the process environment.
func NewEnvSource() *EnvSource {
	return &EnvSource{lookup: os.LookupEnv}
}

// NewEnvSourceFunc reads from lookup instead of the process environment.
func NewEnvSourceFunc(lookup func(string) (string, bool)) *EnvSource {
	return &EnvSource{lookup: lookup}
}

// Name implements Source.
func (e *EnvSource) Name() string { return "env" }

// Lookup returns the first non-empty variable among CandidateNames(name).
func (e *EnvSource) Lookup(ctx context.Context, name string) (string, error) {
	for _, candidate := range CandidateNames(name) {
		if v, ok := e.lookup(candidate); ok && v != "" {
			return v, nil
		}
	}
	return "", ErrNotFound
}

// Available implements Source.
func (e *EnvSource) Available() bool { return true }

// Priority implements Source.
func (e *EnvSource) Priority() int { return EnvPriority }

// CandidateNames lists the environment variable names tried for a
// parameter, in order, without duplicates.
func CandidateNames(name string) []string {
	candidates := []string{
		name,
		strings.ToUpper(name),
		strings.ToLower(name),
		strings.ToUpper(upperRun.ReplaceAllString(name, "_$1")),
		strings.ToLower(upperRun.ReplaceAllString(name, "-$1")),
		strings.ToUpper(strings.ReplaceAll(name, "-", "_")),
		strings.ToLower(strings.ReplaceAll(name, "_", "")),
	}

	seen := make(map[string]bool, len(candidates))
	out := candidates[:0]
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
