// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"errors"
)

var (
	ErrRequestInvalid    = errors.New("invalid request")
	ErrCacheUpdateFailed = errors.New("failed to update package cache")
	ErrCacheCleanFailed  = errors.New("failed to clean package cache")
	ErrKeyAddFailed      = errors.New("failed to add gpg keys")
	ErrInstallFailed     = errors.New("failed to install package")
	ErrRemoveFailed      = errors.New("failed to remove package")
)
