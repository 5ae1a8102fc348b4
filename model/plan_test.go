// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ActionPlan", func() {
	Describe("IsEmpty", func() {
		It("Should detect empty and non empty plans", func() {
			Expect(NewActionPlan().IsEmpty()).To(BeTrue())

			plan := NewActionPlan()
			plan.Remove = []string{"zsh-5.9-x86_64-1"}
			Expect(plan.IsEmpty()).To(BeFalse())
		})
	})

	Describe("Dedupe", func() {
		It("Should remove repeated names while keeping order", func() {
			plan := &ActionPlan{
				Install: []string{"a-1", "b-1", "a-1", "c-1", "b-1"},
				Upgrade: []string{"d-2", "d-2"},
				Remove:  []string{},
			}

			plan.Dedupe()

			Expect(plan.Install).To(Equal([]string{"a-1", "b-1", "c-1"}))
			Expect(plan.Upgrade).To(Equal([]string{"d-2"}))
			Expect(plan.Remove).To(BeEmpty())
		})
	})
})
