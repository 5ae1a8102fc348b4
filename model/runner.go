// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"time"
)

type ExecOptions struct {
	Command     string
	Args        []string
	Cwd         string
	Environment []string
	Path        string
	Timeout     time.Duration
}

type CommandRunner interface {
	Execute(ctx context.Context, cmd string, args ...string) (stdout []byte, stderr []byte, exitCode int, err error)
	ExecuteWithOptions(ctx context.Context, opts ExecOptions) ([]byte, []byte, int, error)
}
