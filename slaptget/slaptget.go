// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

// Package slaptget drives the slapt-get package tool.
//
// slapt-get has no machine readable interface, planning is done by running it
// with --simulate and scraping the report it prints. All invocations go
// through a locale pinned runner so that report stays in English.
package slaptget

import (
	"context"
	"fmt"

	"github.com/Sevlin/slaptctl/model"
)

const ProviderName = "slapt-get"

// DefaultExecutable is where Slackware installs slapt-get
const DefaultExecutable = "/usr/sbin/slapt-get"

const (
	actionUpdate      = "--update"
	actionClean       = "--clean"
	actionAutoClean   = "--autoclean"
	actionAddKeys     = "--add-keys"
	actionInstall     = "--install"
	actionInstallSet  = "--install-set"
	actionRemove      = "--remove"
	actionUpgrade     = "--upgrade"
	actionDistUpgrade = "--dist-upgrade"

	flagNoPrompt       = "--no-prompt"
	flagSimulate       = "--simulate"
	flagNoUpgrade      = "--no-upgrade"
	flagNoDep          = "--no-dep"
	flagNoMD5          = "--no-md5"
	flagAllowUnauth    = "--allow-unauthenticated"
	flagIgnoreExcludes = "--ignore-excludes"
)

// Provider manages packages using the slapt-get package manager
type Provider struct {
	log        model.Logger
	runner     model.CommandRunner
	executable string
	extraFlags []string
}

// Option configures the provider
type Option func(*Provider)

// WithExecutable overrides the path to the slapt-get binary
func WithExecutable(path string) Option {
	return func(p *Provider) {
		if path != "" {
			p.executable = path
		}
	}
}

// WithExtraFlags appends additional global flags to every invocation
func WithExtraFlags(flags []string) Option {
	return func(p *Provider) {
		p.extraFlags = flags
	}
}

// New creates a new slapt-get provider
func New(log model.Logger, runner model.CommandRunner, opts ...Option) (*Provider, error) {
	p := &Provider{log: log, runner: runner, executable: DefaultExecutable}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Name returns the provider name
func (p *Provider) Name() string {
	return ProviderName
}

// globalFlags composes the flags applied to every invocation from the request,
// each toggle maps 1:1 to a fixed switch
func (p *Provider) globalFlags(req *model.Request) []string {
	flags := []string{flagNoPrompt}

	if !req.GPGCheck {
		flags = append(flags, flagAllowUnauth)
	}

	if req.IgnoreExcludes {
		flags = append(flags, flagIgnoreExcludes)
	}

	if req.IgnoreDeps {
		flags = append(flags, flagNoDep)
	}

	if req.IgnoreChecksum {
		flags = append(flags, flagNoMD5)
	}

	return append(flags, p.extraFlags...)
}

func (p *Provider) execute(ctx context.Context, req *model.Request, simulate bool, action []string, targets ...string) (stdout []byte, stderr []byte, exitCode int, err error) {
	args := p.globalFlags(req)

	if simulate {
		args = append(args, flagSimulate)
	}

	args = append(args, action...)
	args = append(args, targets...)

	return p.runner.Execute(ctx, p.executable, args...)
}

// Update refreshes the package source lists
func (p *Provider) Update(ctx context.Context, req *model.Request) error {
	p.log.Info("Updating package cache")

	_, stderr, exitcode, err := p.execute(ctx, req, false, []string{actionUpdate})
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrCacheUpdateFailed, err)
	}

	if exitcode != 0 {
		return fmt.Errorf("%w: slapt-get exited %d: %s", model.ErrCacheUpdateFailed, exitcode, stderr)
	}

	return nil
}

// Clean removes cached packages, all of them or only stale ones depending on
// the requested clean mode
func (p *Provider) Clean(ctx context.Context, req *model.Request) error {
	action := actionClean
	if req.CleanCache == model.CleanOld {
		action = actionAutoClean
	}

	p.log.Info("Cleaning package cache", "action", action)

	_, stderr, exitcode, err := p.execute(ctx, req, false, []string{action})
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrCacheCleanFailed, err)
	}

	if exitcode != 0 {
		return fmt.Errorf("%w: slapt-get exited %d: %s", model.ErrCacheCleanFailed, exitcode, stderr)
	}

	return nil
}

// AddKeys retrieves the GPG keys for all enabled package sources
func (p *Provider) AddKeys(ctx context.Context, req *model.Request) error {
	p.log.Info("Adding GPG keys for package sources")

	_, stderr, exitcode, err := p.execute(ctx, req, false, []string{actionAddKeys})
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrKeyAddFailed, err)
	}

	if exitcode != 0 {
		return fmt.Errorf("%w: slapt-get exited %d: %s", model.ErrKeyAddFailed, exitcode, stderr)
	}

	return nil
}

// Install installs a single package, the no-upgrade modifier is applied unless
// the request permits replacing an installed version so asking for presence
// never upgrades a package behind the caller's back
func (p *Provider) Install(ctx context.Context, req *model.Request, pkg string) error {
	action := []string{actionInstall}
	if !req.AllowsUpgradeOnInstall() {
		action = append(action, flagNoUpgrade)
	}

	p.log.Info("Installing package", "package", pkg, "action", action)

	return p.install(ctx, req, action, pkg)
}

// Upgrade installs the newer version of an already installed package
func (p *Provider) Upgrade(ctx context.Context, req *model.Request, pkg string) error {
	p.log.Info("Upgrading package", "package", pkg)

	return p.install(ctx, req, []string{actionInstall}, pkg)
}

func (p *Provider) install(ctx context.Context, req *model.Request, action []string, pkg string) error {
	_, stderr, exitcode, err := p.execute(ctx, req, false, action, pkg)
	if err != nil {
		return fmt.Errorf("%w %q: %w", model.ErrInstallFailed, pkg, err)
	}

	if exitcode != 0 {
		return fmt.Errorf("%w %q: slapt-get exited %d: %s", model.ErrInstallFailed, pkg, exitcode, stderr)
	}

	return nil
}

// Remove uninstalls a single package, dependency checking is disabled since
// the simulated plan already expanded the packages slapt-get would act on
func (p *Provider) Remove(ctx context.Context, req *model.Request, pkg string) error {
	p.log.Info("Removing package", "package", pkg)

	_, stderr, exitcode, err := p.execute(ctx, req, false, []string{actionRemove, flagNoDep}, pkg)
	if err != nil {
		return fmt.Errorf("%w %q: %w", model.ErrRemoveFailed, pkg, err)
	}

	if exitcode != 0 {
		return fmt.Errorf("%w %q: slapt-get exited %d: %s", model.ErrRemoveFailed, pkg, exitcode, stderr)
	}

	return nil
}
