// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"fmt"

	"github.com/kballard/go-shellquote"
)

// Option is a functional option for configuring the manager
type Option func(*Slapt) error

// WithCheckMode plans actions without applying them
func WithCheckMode() Option {
	return func(m *Slapt) error {
		m.checkMode = true

		return nil
	}
}

// WithExecutable sets the path to the slapt-get binary
func WithExecutable(path string) Option {
	return func(m *Slapt) error {
		if path == "" {
			return fmt.Errorf("executable path is required")
		}

		m.executable = path

		return nil
	}
}

// WithExtraFlags appends additional global flags to every slapt-get invocation
func WithExtraFlags(flags ...string) Option {
	return func(m *Slapt) error {
		m.extraFlags = append(m.extraFlags, flags...)

		return nil
	}
}

// WithExtraFlagsString splits a shell quoted string into extra global flags
func WithExtraFlagsString(flags string) Option {
	return func(m *Slapt) error {
		if flags == "" {
			return nil
		}

		words, err := shellquote.Split(flags)
		if err != nil {
			return fmt.Errorf("invalid extra flags: %w", err)
		}

		m.extraFlags = append(m.extraFlags, words...)

		return nil
	}
}
