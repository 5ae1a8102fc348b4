// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/choria-io/fisk"

	"github.com/Sevlin/slaptctl/model"
)

type updateCommand struct {
	cleanCache string
	addKeys    bool
	gpgCheck   bool
}

func registerUpdateCommand(app *fisk.Application) {
	cmd := &updateCommand{}

	up := app.Command("update", "Updates the package sources").Action(cmd.updateAction)
	up.Flag("clean-cache", "Also clean the package cache (all, old)").Default(model.CleanNone).
		EnumVar(&cmd.cleanCache, model.CleanNone, model.CleanAll, model.CleanYes, model.CleanOld)
	up.Flag("add-keys", "Also retrieve the GPG keys for all package sources").UnNegatableBoolVar(&cmd.addKeys)
	up.Flag("gpg-check", "Verify package signatures").Default("true").BoolVar(&cmd.gpgCheck)
}

func (c *updateCommand) updateAction(_ *fisk.ParseContext) error {
	req := model.NewRequest()
	req.UpdateCache = true
	req.CleanCache = c.cleanCache
	req.AddGPGKeys = c.addKeys
	req.GPGCheck = c.gpgCheck

	return runRequest(req)
}
