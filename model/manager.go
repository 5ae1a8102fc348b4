// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package model

type Manager interface {
	Logger(args ...any) (Logger, error)
	NewRunner() (CommandRunner, error)

	// CheckMode indicates that no real actions should be taken, only planned
	CheckMode() bool

	// Executable is the path to the slapt-get binary
	Executable() string

	// ExtraFlags are additional global flags appended to every invocation
	ExtraFlags() []string

	RecordEvent(event *TransactionEvent) error
}
