// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package slaptget

import (
	"context"
	"errors"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/Sevlin/slaptctl/model"
	"github.com/Sevlin/slaptctl/model/modelmocks"
)

var _ = Describe("SimulatePlan", func() {
	var (
		mockctl *gomock.Controller
		runner  *modelmocks.MockCommandRunner
		log     *modelmocks.MockLogger
		prov    *Provider
		ctx     context.Context
		err     error
	)

	BeforeEach(func() {
		mockctl = gomock.NewController(GinkgoT())
		runner = modelmocks.NewMockCommandRunner(mockctl)
		log = modelmocks.NewMockLogger(mockctl)
		log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
		log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

		prov, err = New(log, runner)
		Expect(err).ToNot(HaveOccurred())

		ctx = context.Background()
	})

	AfterEach(func() {
		mockctl.Finish()
	})

	It("Should simulate installs with the modifier the apply stage will use", func() {
		report, err := os.ReadFile("testdata/simulate_install.txt")
		Expect(err).ToNot(HaveOccurred())

		runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--simulate", "--install", "--no-upgrade", "iptables").Return(report, nil, 0, nil)

		plan, err := prov.SimulatePlan(ctx, model.NewRequest("iptables"))
		Expect(err).ToNot(HaveOccurred())
		Expect(plan.Install).To(Equal([]string{"iptables-1.8.4-x86_64-1"}))
		Expect(plan.Upgrade).To(BeEmpty())
		Expect(plan.Remove).To(BeEmpty())
	})

	It("Should drop the modifier when the latest version is requested", func() {
		req := model.NewRequest("iptables")
		req.Ensure = model.EnsureLatest

		runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--simulate", "--install", "iptables").Return(nil, nil, 0, nil)

		plan, err := prov.SimulatePlan(ctx, req)
		Expect(err).ToNot(HaveOccurred())
		Expect(plan.IsEmpty()).To(BeTrue())
	})

	It("Should simulate disk set installs", func() {
		req := model.NewRequest("xap")
		req.InstallSet = true

		runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--simulate", "--install-set", "xap").Return(nil, nil, 0, nil)

		_, err := prov.SimulatePlan(ctx, req)
		Expect(err).ToNot(HaveOccurred())
	})

	It("Should simulate removals", func() {
		req := model.NewRequest("joe")
		req.Ensure = model.EnsureAbsent

		report, err := os.ReadFile("testdata/simulate_remove.txt")
		Expect(err).ToNot(HaveOccurred())

		runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--simulate", "--remove", "joe").Return(report, nil, 0, nil)

		plan, err := prov.SimulatePlan(ctx, req)
		Expect(err).ToNot(HaveOccurred())
		Expect(plan.Remove).To(Equal([]string{"joe-4.6-x86_64-1"}))
	})

	It("Should simulate standard and dist upgrades", func() {
		report, err := os.ReadFile("testdata/simulate_upgrade.txt")
		Expect(err).ToNot(HaveOccurred())

		req := model.NewRequest()
		req.Upgrade = model.UpgradeStandard
		runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--simulate", "--upgrade").Return(report, nil, 0, nil)

		plan, err := prov.SimulatePlan(ctx, req)
		Expect(err).ToNot(HaveOccurred())
		Expect(plan.Upgrade).To(HaveLen(3))

		req.Upgrade = model.UpgradeDist
		runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--simulate", "--dist-upgrade").Return(report, nil, 0, nil)

		plan, err = prov.SimulatePlan(ctx, req)
		Expect(err).ToNot(HaveOccurred())
		Expect(plan.Upgrade).To(HaveLen(3))
	})

	It("Should yield an empty plan without spawning for cache only requests", func() {
		req := model.NewRequest()
		req.UpdateCache = true

		plan, err := prov.SimulatePlan(ctx, req)
		Expect(err).ToNot(HaveOccurred())
		Expect(plan.IsEmpty()).To(BeTrue())
	})

	It("Should tolerate a non zero exit from the simulation", func() {
		runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--simulate", "--install", "--no-upgrade", "iptables").Return([]byte("Reading Package Lists... Done\n"), []byte("warning"), 1, nil)

		plan, err := prov.SimulatePlan(ctx, model.NewRequest("iptables"))
		Expect(err).ToNot(HaveOccurred())
		Expect(plan.IsEmpty()).To(BeTrue())
	})

	It("Should fail when the tool cannot be spawned", func() {
		runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--simulate", "--install", "--no-upgrade", "iptables").Return(nil, nil, -1, errors.New("no such file or directory"))

		_, err := prov.SimulatePlan(ctx, model.NewRequest("iptables"))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("failed to simulate"))
	})

	It("Should fold suggested packages into the plan when requested", func() {
		report, err := os.ReadFile("testdata/simulate_mixed.txt")
		Expect(err).ToNot(HaveOccurred())

		req := model.NewRequest("nginx")
		req.Suggested = true
		runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--simulate", "--install", "--no-upgrade", "nginx").Return(report, nil, 0, nil)

		plan, err := prov.SimulatePlan(ctx, req)
		Expect(err).ToNot(HaveOccurred())
		Expect(plan.Install).To(ContainElement("certbot-2.6.0-x86_64-1"))
	})
})
