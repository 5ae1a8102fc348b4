// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package slaptget

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/Sevlin/slaptctl/model"
	"github.com/Sevlin/slaptctl/model/modelmocks"
)

var _ = Describe("Provider", func() {
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

	Describe("New", func() {
		It("Should support executable and flag overrides", func() {
			prov, err = New(log, runner, WithExecutable("/opt/slapt/bin/slapt-get"), WithExtraFlags([]string{"--config", "/etc/slapt-get/rc.test"}))
			Expect(err).ToNot(HaveOccurred())
			Expect(prov.executable).To(Equal("/opt/slapt/bin/slapt-get"))
			Expect(prov.extraFlags).To(Equal([]string{"--config", "/etc/slapt-get/rc.test"}))
			Expect(prov.Name()).To(Equal("slapt-get"))
		})

		It("Should ignore an empty executable override", func() {
			prov, err = New(log, runner, WithExecutable(""))
			Expect(err).ToNot(HaveOccurred())
			Expect(prov.executable).To(Equal(DefaultExecutable))
		})
	})

	Describe("Update", func() {
		It("Should refresh the package sources", func() {
			runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--update").Return(nil, nil, 0, nil)

			Expect(prov.Update(ctx, model.NewRequest())).To(Succeed())
		})

		It("Should report failures with the tool output", func() {
			runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--update").Return(nil, []byte("Failed to connect to mirror"), 1, nil)

			err = prov.Update(ctx, model.NewRequest())
			Expect(err).To(MatchError(model.ErrCacheUpdateFailed))
			Expect(err.Error()).To(ContainSubstring("Failed to connect to mirror"))
		})

		It("Should report spawn errors", func() {
			runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--update").Return(nil, nil, -1, errors.New("no such file or directory"))

			err = prov.Update(ctx, model.NewRequest())
			Expect(err).To(MatchError(model.ErrCacheUpdateFailed))
		})
	})

	Describe("Clean", func() {
		It("Should clean the whole cache for all and yes", func() {
			req := model.NewRequest()
			req.CleanCache = model.CleanAll
			runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--clean").Return(nil, nil, 0, nil)
			Expect(prov.Clean(ctx, req)).To(Succeed())

			req.CleanCache = model.CleanYes
			runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--clean").Return(nil, nil, 0, nil)
			Expect(prov.Clean(ctx, req)).To(Succeed())
		})

		It("Should only clean stale packages for old", func() {
			req := model.NewRequest()
			req.CleanCache = model.CleanOld
			runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--autoclean").Return(nil, nil, 0, nil)

			Expect(prov.Clean(ctx, req)).To(Succeed())
		})

		It("Should report failures", func() {
			req := model.NewRequest()
			req.CleanCache = model.CleanAll
			runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--clean").Return(nil, []byte("permission denied"), 1, nil)

			Expect(prov.Clean(ctx, req)).To(MatchError(model.ErrCacheCleanFailed))
		})
	})

	Describe("AddKeys", func() {
		It("Should retrieve source keys", func() {
			runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--add-keys").Return(nil, nil, 0, nil)

			Expect(prov.AddKeys(ctx, model.NewRequest())).To(Succeed())
		})

		It("Should report failures", func() {
			runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--add-keys").Return(nil, []byte("gpg not found"), 1, nil)

			Expect(prov.AddKeys(ctx, model.NewRequest())).To(MatchError(model.ErrKeyAddFailed))
		})
	})

	Describe("Install", func() {
		It("Should never upgrade when only presence is requested", func() {
			runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--install", "--no-upgrade", "iptables").Return(nil, nil, 0, nil)

			Expect(prov.Install(ctx, model.NewRequest("iptables"), "iptables")).To(Succeed())
		})

		It("Should allow the upgrade when latest is requested", func() {
			req := model.NewRequest("iptables")
			req.Ensure = model.EnsureLatest
			runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--install", "iptables").Return(nil, nil, 0, nil)

			Expect(prov.Install(ctx, req, "iptables")).To(Succeed())
		})

		It("Should report failures naming the package", func() {
			runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--install", "--no-upgrade", "iptables").Return(nil, []byte("md5 mismatch"), 1, nil)

			err = prov.Install(ctx, model.NewRequest("iptables"), "iptables")
			Expect(err).To(MatchError(model.ErrInstallFailed))
			Expect(err.Error()).To(ContainSubstring("iptables"))
		})
	})

	Describe("Upgrade", func() {
		It("Should install without the no-upgrade modifier", func() {
			req := model.NewRequest()
			req.Upgrade = model.UpgradeStandard
			runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--install", "openssl").Return(nil, nil, 0, nil)

			Expect(prov.Upgrade(ctx, req, "openssl")).To(Succeed())
		})
	})

	Describe("Remove", func() {
		It("Should remove without dependency checking", func() {
			req := model.NewRequest("joe")
			req.Ensure = model.EnsureAbsent
			runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--remove", "--no-dep", "joe").Return(nil, nil, 0, nil)

			Expect(prov.Remove(ctx, req, "joe")).To(Succeed())
		})

		It("Should report failures naming the package", func() {
			req := model.NewRequest("joe")
			req.Ensure = model.EnsureAbsent
			runner.EXPECT().Execute(gomock.Any(), DefaultExecutable, "--no-prompt", "--remove", "--no-dep", "joe").Return(nil, []byte("not installed"), 1, nil)

			err = prov.Remove(ctx, req, "joe")
			Expect(err).To(MatchError(model.ErrRemoveFailed))
			Expect(err.Error()).To(ContainSubstring("joe"))
		})
	})

	Describe("globalFlags", func() {
		It("Should map request toggles onto fixed switches in a stable order", func() {
			req := model.NewRequest("zsh")
			req.GPGCheck = false
			req.IgnoreExcludes = true
			req.IgnoreDeps = true
			req.IgnoreChecksum = true

			prov, err = New(log, runner, WithExtraFlags([]string{"--retry", "3"}))
			Expect(err).ToNot(HaveOccurred())

			Expect(prov.globalFlags(req)).To(Equal([]string{
				"--no-prompt", "--allow-unauthenticated", "--ignore-excludes", "--no-dep", "--no-md5", "--retry", "3",
			}))
		})

		It("Should only pass the prompt suppression by default", func() {
			Expect(prov.globalFlags(model.NewRequest("zsh"))).To(Equal([]string{"--no-prompt"}))
		})
	})
})
