// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"regexp"
)

const (
	// EnsurePresent indicates the packages should be installed
	EnsurePresent = "present"
	// EnsureInstalled is a synonym for EnsurePresent
	EnsureInstalled = "installed"
	// EnsureLatest indicates the packages should be installed and upgraded to the latest version
	EnsureLatest = "latest"
	// EnsureAbsent indicates the packages should be removed
	EnsureAbsent = "absent"
	// EnsureRemoved is a synonym for EnsureAbsent
	EnsureRemoved = "removed"
)

const (
	// UpgradeNone performs no global upgrade
	UpgradeNone = "no"
	// UpgradeStandard upgrades installed packages to their newest versions
	UpgradeStandard = "yes"
	// UpgradeDist upgrades the whole distribution including new dependencies
	UpgradeDist = "dist"
)

const (
	// CleanNone keeps the package cache as is
	CleanNone = "no"
	// CleanAll removes all cached packages
	CleanAll = "all"
	// CleanYes is a synonym for CleanAll
	CleanYes = "yes"
	// CleanOld removes only cached packages no longer reachable in any source
	CleanOld = "old"
)

var (
	// commonNameRegex allows alphanumeric, hyphens, underscores, dots, plus signs, colons, and tildes
	// which cover Slackware package names and fully qualified package-version-arch-build tokens
	commonNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._+:~-]+$`)

	// dangerousCharsRegex detects shell metacharacters that could be used for injection
	dangerousCharsRegex = regexp.MustCompile(`[;&|$` + "`" + `()\[\]{}<>*?'"\\!\n\t\r]`)
)

// Request describes the desired package state for a single reconcile run
type Request struct {
	// Packages are the package names to manage, exclusive with Upgrade
	Packages []string `json:"packages,omitempty" yaml:"packages,omitempty"`

	// Ensure is the desired state for Packages
	Ensure string `json:"ensure,omitempty" yaml:"ensure,omitempty"`

	// Upgrade requests a global upgrade, one of UpgradeNone, UpgradeStandard or UpgradeDist
	Upgrade string `json:"upgrade,omitempty" yaml:"upgrade,omitempty"`

	// InstallSet installs the named disk sets rather than individual packages
	InstallSet bool `json:"install_set,omitempty" yaml:"install_set,omitempty"`

	// Suggested folds suggested packages into the install list
	Suggested bool `json:"suggested,omitempty" yaml:"suggested,omitempty"`

	// UpdateCache refreshes the package sources before anything else
	UpdateCache bool `json:"update_cache,omitempty" yaml:"update_cache,omitempty"`

	// CleanCache removes cached packages, one of the Clean constants
	CleanCache string `json:"clean_cache,omitempty" yaml:"clean_cache,omitempty"`

	// AddGPGKeys retrieves the GPG keys for all enabled sources
	AddGPGKeys bool `json:"add_gpg_keys,omitempty" yaml:"add_gpg_keys,omitempty"`

	// GPGCheck verifies package signatures, disabling it passes --allow-unauthenticated
	GPGCheck bool `json:"gpg_check" yaml:"gpg_check"`

	// IgnoreExcludes overrides the exclude list from the slapt-get configuration
	IgnoreExcludes bool `json:"ignore_excludes,omitempty" yaml:"ignore_excludes,omitempty"`

	// IgnoreDeps skips dependency resolution on install
	IgnoreDeps bool `json:"ignore_deps,omitempty" yaml:"ignore_deps,omitempty"`

	// IgnoreChecksum skips MD5 verification of downloaded packages
	IgnoreChecksum bool `json:"ignore_checksum,omitempty" yaml:"ignore_checksum,omitempty"`
}

// NewRequest creates a Request with the default state, no upgrade and signature checking enabled
func NewRequest(packages ...string) *Request {
	return &Request{
		Packages:   packages,
		Ensure:     EnsurePresent,
		Upgrade:    UpgradeNone,
		CleanCache: CleanNone,
		GPGCheck:   true,
	}
}

// Validate checks the request for invalid or conflicting settings, it is called
// before any process is spawned so bad input never reaches the package tool
func (r *Request) Validate() error {
	switch r.Ensure {
	case EnsurePresent, EnsureInstalled, EnsureLatest, EnsureAbsent, EnsureRemoved:
	case "":
		return fmt.Errorf("%w: ensure is required", ErrRequestInvalid)
	default:
		return fmt.Errorf("%w: unknown ensure value %q", ErrRequestInvalid, r.Ensure)
	}

	switch r.Upgrade {
	case UpgradeNone, UpgradeStandard, UpgradeDist, "":
	default:
		return fmt.Errorf("%w: unknown upgrade value %q", ErrRequestInvalid, r.Upgrade)
	}

	switch r.CleanCache {
	case CleanNone, CleanAll, CleanYes, CleanOld, "":
	default:
		return fmt.Errorf("%w: unknown clean_cache value %q", ErrRequestInvalid, r.CleanCache)
	}

	if len(r.Packages) > 0 && r.WantsUpgrade() {
		return fmt.Errorf("%w: packages and upgrade are mutually exclusive", ErrRequestInvalid)
	}

	if len(r.Packages) == 0 && !r.WantsUpgrade() && !r.UpdateCache {
		return fmt.Errorf("%w: one of packages, upgrade or update_cache is required", ErrRequestInvalid)
	}

	for _, pkg := range r.Packages {
		if pkg == "" {
			return fmt.Errorf("%w: empty package name", ErrRequestInvalid)
		}

		if dangerousCharsRegex.MatchString(pkg) {
			return fmt.Errorf("%w: package name contains dangerous characters: %q", ErrRequestInvalid, pkg)
		}

		if !commonNameRegex.MatchString(pkg) {
			return fmt.Errorf("%w: package name contains invalid characters: %q (allowed: alphanumeric, ._+:~-)", ErrRequestInvalid, pkg)
		}
	}

	return nil
}

// WantsUpgrade indicates a global upgrade was requested
func (r *Request) WantsUpgrade() bool {
	return r.Upgrade == UpgradeStandard || r.Upgrade == UpgradeDist
}

// WantsRemove indicates the named packages should be removed
func (r *Request) WantsRemove() bool {
	return r.Ensure == EnsureAbsent || r.Ensure == EnsureRemoved
}

// WantsClean indicates the package cache should be cleaned
func (r *Request) WantsClean() bool {
	return r.CleanCache == CleanAll || r.CleanCache == CleanYes || r.CleanCache == CleanOld
}

// AllowsUpgradeOnInstall indicates an install may replace an older installed
// version, when false installs carry the no-upgrade modifier so a package that
// is already present is never silently upgraded
func (r *Request) AllowsUpgradeOnInstall() bool {
	return r.WantsUpgrade() || r.Ensure == EnsureLatest
}
