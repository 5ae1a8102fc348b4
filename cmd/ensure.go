// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/choria-io/fisk"

	"github.com/Sevlin/slaptctl/model"
)

type ensureCommand struct {
	packages       []string
	ensure         string
	installSet     bool
	suggested      bool
	updateCache    bool
	cleanCache     string
	addKeys        bool
	gpgCheck       bool
	ignoreExcludes bool
	ignoreDeps     bool
	ignoreChecksum bool
}

func registerEnsureCommand(app *fisk.Application) {
	cmd := &ensureCommand{}

	ens := app.Command("ensure", "Ensures packages are in the desired state").Alias("install").Action(cmd.ensureAction)
	ens.Arg("package", "Package names to manage").Required().StringsVar(&cmd.packages)
	ens.Flag("ensure", "Desired state for the packages").Default(model.EnsurePresent).
		EnumVar(&cmd.ensure, model.EnsurePresent, model.EnsureInstalled, model.EnsureLatest, model.EnsureAbsent, model.EnsureRemoved)
	ens.Flag("install-set", "Treat the names as disk sets rather than packages").UnNegatableBoolVar(&cmd.installSet)
	ens.Flag("suggested", "Also install packages the named ones suggest").UnNegatableBoolVar(&cmd.suggested)
	ens.Flag("update-cache", "Update the package sources first").UnNegatableBoolVar(&cmd.updateCache)
	ens.Flag("clean-cache", "Clean the package cache (all, old)").Default(model.CleanNone).
		EnumVar(&cmd.cleanCache, model.CleanNone, model.CleanAll, model.CleanYes, model.CleanOld)
	ens.Flag("add-keys", "Retrieve the GPG keys for all package sources").UnNegatableBoolVar(&cmd.addKeys)
	ens.Flag("gpg-check", "Verify package signatures").Default("true").BoolVar(&cmd.gpgCheck)
	ens.Flag("ignore-excludes", "Override the exclude list from the slapt-get configuration").UnNegatableBoolVar(&cmd.ignoreExcludes)
	ens.Flag("ignore-deps", "Skip dependency resolution").UnNegatableBoolVar(&cmd.ignoreDeps)
	ens.Flag("ignore-checksum", "Skip MD5 verification of downloaded packages").UnNegatableBoolVar(&cmd.ignoreChecksum)
}

func (c *ensureCommand) request() *model.Request {
	req := model.NewRequest(c.packages...)
	req.Ensure = c.ensure
	req.InstallSet = c.installSet
	req.Suggested = c.suggested
	req.UpdateCache = c.updateCache
	req.CleanCache = c.cleanCache
	req.AddGPGKeys = c.addKeys
	req.GPGCheck = c.gpgCheck
	req.IgnoreExcludes = c.ignoreExcludes
	req.IgnoreDeps = c.ignoreDeps
	req.IgnoreChecksum = c.ignoreChecksum

	return req
}

func (c *ensureCommand) ensureAction(_ *fisk.ParseContext) error {
	return runRequest(c.request())
}

type removeCommand struct {
	packages       []string
	gpgCheck       bool
	ignoreExcludes bool
}

func registerRemoveCommand(app *fisk.Application) {
	cmd := &removeCommand{}

	rem := app.Command("remove", "Removes installed packages").Action(cmd.removeAction)
	rem.Arg("package", "Package names to remove").Required().StringsVar(&cmd.packages)
	rem.Flag("gpg-check", "Verify package signatures").Default("true").BoolVar(&cmd.gpgCheck)
	rem.Flag("ignore-excludes", "Override the exclude list from the slapt-get configuration").UnNegatableBoolVar(&cmd.ignoreExcludes)
}

func (c *removeCommand) removeAction(_ *fisk.ParseContext) error {
	req := model.NewRequest(c.packages...)
	req.Ensure = model.EnsureAbsent
	req.GPGCheck = c.gpgCheck
	req.IgnoreExcludes = c.ignoreExcludes

	return runRequest(req)
}
