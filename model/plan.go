// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package model

// ActionPlan is the set of package actions a simulated slapt-get run reported,
// each list holds fully qualified package tokens in the order they were printed
type ActionPlan struct {
	Install []string `json:"install" yaml:"install"`
	Upgrade []string `json:"upgrade" yaml:"upgrade"`
	Remove  []string `json:"remove" yaml:"remove"`
}

// NewActionPlan creates an empty plan
func NewActionPlan() *ActionPlan {
	return &ActionPlan{
		Install: []string{},
		Upgrade: []string{},
		Remove:  []string{},
	}
}

// IsEmpty indicates no actions are planned in any category
func (p *ActionPlan) IsEmpty() bool {
	return len(p.Install) == 0 && len(p.Upgrade) == 0 && len(p.Remove) == 0
}

// Dedupe removes repeated package tokens from each list while keeping order,
// repeating a name on the command line must not repeat the action
func (p *ActionPlan) Dedupe() {
	p.Install = uniqueNames(p.Install)
	p.Upgrade = uniqueNames(p.Upgrade)
	p.Remove = uniqueNames(p.Remove)
}

func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	res := make([]string, 0, len(names))

	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		res = append(res, n)
	}

	return res
}
