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
	"strings"

	"github.com/zalando/go-keyring"
)

// KeychainService is the keychain service name entries are stored under.
const KeychainService = "funtranslations"

// KeychainSource reads parameter defaults and credentials from the system
// keychain: macOS Keychain, the Linux Secret Service or the Windows
// Credential Manager.
type KeychainSource struct {
	service   string
	available bool
}

// NewKeychainSource probes the keychain and returns a source for service.
// An empty service uses KeychainService.
func NewKeychainSource(service string) *KeychainSource {
	if service == "" {
		service = KeychainService
	}
	k := &KeychainSource{service: service, available: true}

	_, err := keyring.Get(service, "__funtranslations_probe__")
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		k.available = false
	}
	return k
}

// Name implements Source.
func (k *KeychainSource) Name() string { return "keychain" }

// Lookup implements Source.
func (k *KeychainSource) Lookup(ctx context.Context, name string) (string, error) {
	if !k.available {
		return "", ErrSourceUnavailable
	}

	v, err := keyring.Get(k.service, name)
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		return "", ErrNotFound
	case err != nil && isUnavailable(err):
		return "", fmt.Errorf("%w: %s", ErrSourceUnavailable, err.Error())
	case err != nil:
		return "", fmt.Errorf("keychain error: %w", err)
	}
	return v, nil
}

// Set stores value under name.
func (k *KeychainSource) Set(ctx context.Context, name, value string) error {
	if !k.available {
		return ErrSourceUnavailable
	}
	if err := keyring.Set(k.service, name, value); err != nil {
		return fmt.Errorf("keychain error: %w", err)
	}
	return nil
}

// Delete removes name. Deleting a missing entry returns ErrNotFound.
func (k *KeychainSource) Delete(ctx context.Context, name string) error {
	if !k.available {
		return ErrSourceUnavailable
	}
	err := keyring.Delete(k.service, name)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("keychain error: %w", err)
	}
	return nil
}

// Available implements Source.
func (k *KeychainSource) Available() bool { return k.available }

// Priority implements Source.
func (k *KeychainSource) Priority() int { return KeychainPriority }

func isUnavailable(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, s := range []string{"locked", "cannot access", "permission denied", "dbus", "secret service", "user canceled"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
