// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TransactionEvent", func() {
	It("Should create events with identity and empty package lists", func() {
		event := NewTransactionEvent(NewRequest("zsh"))

		Expect(event.Protocol).To(Equal(TransactionEventProtocol))
		Expect(event.EventID).ToNot(BeEmpty())
		Expect(event.TimeStamp).ToNot(BeZero())
		Expect(event.Packages.Installed).To(BeEmpty())
		Expect(event.Packages.Upgraded).To(BeEmpty())
		Expect(event.Packages.Removed).To(BeEmpty())
	})

	It("Should have sortable event IDs", func() {
		first := NewTransactionEvent(NewRequest("zsh"))
		second := NewTransactionEvent(NewRequest("zsh"))

		Expect(first.EventID).ToNot(Equal(second.EventID))
	})

	Describe("Result", func() {
		It("Should expose the caller facing outcome", func() {
			event := NewTransactionEvent(NewRequest("zsh"))
			event.Changed = true
			event.Packages = PackageChanges{
				Installed: []string{"zsh-5.9-x86_64-1"},
				Upgraded:  []string{},
				Removed:   []string{},
			}

			res := event.Result()
			Expect(res.Changed).To(BeTrue())
			Expect(res.Packages.Installed).To(Equal([]string{"zsh-5.9-x86_64-1"}))
		})
	})
})
