// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package modelmocks

import (
	"go.uber.org/mock/gomock"
)

// NewManager creates a manager mock with a quiet logger and the given runner
// pre-wired, the common setup for provider and reconciler tests
func NewManager(runner *MockCommandRunner, checkMode bool, ctl *gomock.Controller) (*MockManager, *MockLogger) {
	logger := NewMockLogger(ctl)
	mgr := NewMockManager(ctl)

	mgr.EXPECT().Logger(gomock.Any()).AnyTimes().Return(logger, nil)
	mgr.EXPECT().NewRunner().AnyTimes().Return(runner, nil)
	mgr.EXPECT().CheckMode().AnyTimes().Return(checkMode)
	mgr.EXPECT().Executable().AnyTimes().Return("/usr/sbin/slapt-get")
	mgr.EXPECT().ExtraFlags().AnyTimes().Return(nil)
	mgr.EXPECT().RecordEvent(gomock.Any()).AnyTimes().Return(nil)

	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().With(gomock.Any()).AnyTimes().Return(logger)

	return mgr, logger
}
