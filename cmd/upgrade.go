// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/choria-io/fisk"

	"github.com/Sevlin/slaptctl/model"
)

type upgradeCommand struct {
	dist           bool
	updateCache    bool
	gpgCheck       bool
	ignoreExcludes bool
	ignoreChecksum bool
}

func registerUpgradeCommand(app *fisk.Application) {
	cmd := &upgradeCommand{}

	up := app.Command("upgrade", "Upgrades installed packages to their newest versions").Action(cmd.upgradeAction)
	up.Flag("dist", "Perform a distribution upgrade including new dependencies").UnNegatableBoolVar(&cmd.dist)
	up.Flag("update-cache", "Update the package sources first").UnNegatableBoolVar(&cmd.updateCache)
	up.Flag("gpg-check", "Verify package signatures").Default("true").BoolVar(&cmd.gpgCheck)
	up.Flag("ignore-excludes", "Override the exclude list from the slapt-get configuration").UnNegatableBoolVar(&cmd.ignoreExcludes)
	up.Flag("ignore-checksum", "Skip MD5 verification of downloaded packages").UnNegatableBoolVar(&cmd.ignoreChecksum)
}

func (c *upgradeCommand) upgradeAction(_ *fisk.ParseContext) error {
	req := model.NewRequest()
	req.Upgrade = model.UpgradeStandard
	if c.dist {
		req.Upgrade = model.UpgradeDist
	}
	req.UpdateCache = c.updateCache
	req.GPGCheck = c.gpgCheck
	req.IgnoreExcludes = c.ignoreExcludes
	req.IgnoreChecksum = c.ignoreChecksum

	return runRequest(req)
}
