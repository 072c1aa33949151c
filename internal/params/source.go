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
	"errors"
)

var (
	// ErrNotFound is returned when a source has no value for a name.
	ErrNotFound = errors.New("parameter not found")

	// ErrSourceUnavailable is returned when a source cannot be queried.
	ErrSourceUnavailable = errors.New("parameter source unavailable")

	// ErrReadOnly is returned when writing to a source that cannot store
	// values.
	ErrReadOnly = errors.New("parameter source is read-only")
)

// Source provides default parameter values.
type Source interface {
	// Name identifies the source in logs.
	Name() string

	// Lookup returns the value for name or ErrNotFound.
	Lookup(ctx context.Context, name string) (string, error)

	// Available reports whether the source can be queried.
	Available() bool

	// Priority orders sources; higher is queried first.
	Priority() int
}

// Source priorities.
const (
	MapPriority      = 200
	EnvPriority      = 100
	KeychainPriority = 50
)

// MapSource serves fixed values, typically from command-line flags.
type MapSource map[string]string

// Name implements Source.
func (m MapSource) Name() string { return "flags" }

// Lookup implements Source.
func (m MapSource) Lookup(ctx context.Context, name string) (string, error) {
	if v := m[name]; v != "" {
		return v, nil
	}
	return "", ErrNotFound
}

// Available implements Source.
func (m MapSource) Available() bool { return true }

// Priority implements Source.
func (m MapSource) Priority() int { return MapPriority }
