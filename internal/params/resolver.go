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
	"fmt"
	"log/slog"
	"sort"
)

// Resolver queries Sources in priority order.
type Resolver struct {
	sources []Source
}

// NewResolver keeps the available sources, highest priority first.
func NewResolver(sources ...Source) *Resolver {
	available := make([]Source, 0, len(sources))
	for _, s := range sources {
		if s != nil && s.Available() {
			available = append(available, s)
		}
	}
	sort.SliceStable(available, func(i, j int) bool {
		return available[i].Priority() > available[j].Priority()
	})
	return &Resolver{sources: available}
}

// Lookup returns the first value any source has for name.
func (r *Resolver) Lookup(ctx context.Context, name string) (string, error) {
	var lastErr error
	for _, s := range r.sources {
		v, err := s.Lookup(ctx, name)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrNotFound) {
			lastErr = err
		}
	}
	if lastErr != nil {
		return "", fmt.Errorf("lookup %q: %w", name, lastErr)
	}
	return "", fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Fill returns a copy of args with every declared name that is missing or
// empty looked up in the sources, then drops entries that are still nil or
// empty. Source failures other than ErrNotFound are logged and skipped.
func (r *Resolver) Fill(ctx context.Context, args map[string]any, declared []string) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		out[k] = v
	}

	for _, name := range declared {
		if !isEmpty(out[name]) {
			continue
		}
		v, err := r.Lookup(ctx, name)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				slog.WarnContext(ctx, "parameter default lookup failed", "param", name, "error", err)
			}
			continue
		}
		out[name] = v
	}

	for k, v := range out {
		if isEmpty(v) {
			delete(out, k)
		}
	}
	return out
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
