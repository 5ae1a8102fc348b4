// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package slaptget

import (
	"context"
	"fmt"

	"github.com/Sevlin/slaptctl/model"
)

// SimulatePlan runs at most one simulated slapt-get invocation for the request
// and parses its report into an action plan.
//
// Named packages and global upgrades are mutually exclusive by request
// validation so the branches below never both fire. A request that only does
// cache maintenance yields an empty plan without touching the tool. The exit
// code of the simulated run is deliberately ignored, simulation output is
// advisory and an unparseable or partial report degrades to a smaller plan.
func (p *Provider) SimulatePlan(ctx context.Context, req *model.Request) (*model.ActionPlan, error) {
	var action []string

	switch {
	case len(req.Packages) > 0:
		switch {
		case req.InstallSet:
			action = []string{actionInstallSet}
		case req.WantsRemove():
			action = []string{actionRemove}
		default:
			// simulate with the same modifier the apply stage will use so the
			// plan never promises an upgrade the real install would refuse
			action = []string{actionInstall}
			if !req.AllowsUpgradeOnInstall() {
				action = append(action, flagNoUpgrade)
			}
		}

	case req.Upgrade == model.UpgradeStandard:
		action = []string{actionUpgrade}

	case req.Upgrade == model.UpgradeDist:
		action = []string{actionDistUpgrade}

	default:
		return model.NewActionPlan(), nil
	}

	p.log.Debug("Simulating transaction", "action", action, "packages", req.Packages)

	stdout, _, exitcode, err := p.execute(ctx, req, true, action, req.Packages...)
	if err != nil {
		return nil, fmt.Errorf("failed to simulate %s: %w", action[0], err)
	}

	plan := ParsePlan(string(stdout), req.Suggested)

	p.log.Debug("Simulated transaction", "action", action, "exitcode", exitcode,
		"install", len(plan.Install), "upgrade", len(plan.Upgrade), "remove", len(plan.Remove))

	return plan, nil
}
