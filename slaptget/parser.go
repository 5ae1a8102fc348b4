// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package slaptget

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/Sevlin/slaptctl/model"
)

// The simulate report is split into sections by these literal headers, they
// are the de facto wire format between us and slapt-get and must match its
// output byte for byte. The C locale pinned by the runner keeps them English.
const (
	headerInstall   = "The following NEW packages will be installed:"
	headerUpgrade   = "The following packages will be upgraded:"
	headerRemove    = "The following packages will be REMOVED:"
	headerSuggested = "Suggested packages:"
)

const (
	sectionInstall = "install"
	sectionUpgrade = "upgrade"
	sectionRemove  = "remove"

	// sectionDiscard collects lines belonging to no recognized section, it is
	// never read back
	sectionDiscard = "discard"
)

// continuationRegex matches the indented package list lines below a header.
// It is checked before the headers so a header indented by two spaces would be
// misread as a continuation, real slapt-get output never indents headers.
var continuationRegex = regexp.MustCompile(`^\s{2}(\S+|\s)+`)

// ParsePlan converts the free text report of a simulated slapt-get run into a
// structured action plan.
//
// A single pass state machine assigns every line to the currently active
// section: continuation lines feed the active accumulator, header lines switch
// sections and any other line resets to the discard sink. Unexpected text is
// never an error, it simply contributes nothing to the plan.
func ParsePlan(output string, includeSuggested bool) *model.ActionPlan {
	plan := model.NewActionPlan()

	if len(output) == 0 {
		return plan
	}

	sections := map[string][]string{}
	current := sectionDiscard

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case continuationRegex.MatchString(line):
			sections[current] = append(sections[current], strings.Fields(line)...)

		case strings.HasPrefix(line, headerInstall):
			current = sectionInstall

		case strings.HasPrefix(line, headerUpgrade):
			current = sectionUpgrade

		case strings.HasPrefix(line, headerRemove):
			current = sectionRemove

		case includeSuggested && strings.HasPrefix(line, headerSuggested):
			// suggested packages fold into the install set when requested
			current = sectionInstall

		default:
			current = sectionDiscard
		}
	}

	if names := sections[sectionInstall]; names != nil {
		plan.Install = names
	}
	if names := sections[sectionUpgrade]; names != nil {
		plan.Upgrade = names
	}
	if names := sections[sectionRemove]; names != nil {
		plan.Remove = names
	}

	plan.Dedupe()

	return plan
}
