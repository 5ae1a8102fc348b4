// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"fmt"
	"sync"

	"github.com/Sevlin/slaptctl/internal/cmdrunner"
	"github.com/Sevlin/slaptctl/model"
	"github.com/Sevlin/slaptctl/slaptget"
)

// Slapt holds the runtime settings shared by all reconcile runs: where the
// slapt-get binary lives, which extra flags every invocation carries and
// whether real actions may be taken
type Slapt struct {
	log        model.Logger
	userLogger model.Logger
	executable string
	extraFlags []string
	checkMode  bool
	events     []*model.TransactionEvent

	mu sync.Mutex
}

var _ model.Manager = (*Slapt)(nil)

// NewManager creates a new manager with the provided loggers
func NewManager(log model.Logger, userLogger model.Logger, opts ...Option) (*Slapt, error) {
	mgr := &Slapt{
		log:        log,
		userLogger: userLogger,
		executable: slaptget.DefaultExecutable,
	}

	for _, opt := range opts {
		err := opt(mgr)
		if err != nil {
			return nil, err
		}
	}

	return mgr, nil
}

// Logger creates a new logger with the provided key-value pairs added to the context
func (m *Slapt) Logger(args ...any) (model.Logger, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("invalid logger arguments, must be key value pairs")
	}

	return m.log.With(args...), nil
}

// NewRunner creates a new command runner instance
func (m *Slapt) NewRunner() (model.CommandRunner, error) {
	log, err := m.Logger("component", "runner")
	if err != nil {
		return nil, err
	}

	return cmdrunner.NewCommandRunner(log)
}

// CheckMode indicates that no real actions should be taken
func (m *Slapt) CheckMode() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.checkMode
}

// Executable is the path to the slapt-get binary
func (m *Slapt) Executable() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.executable
}

// ExtraFlags are additional global flags appended to every invocation
func (m *Slapt) ExtraFlags() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.extraFlags
}

// RecordEvent logs the event to the user facing logger and retains it
func (m *Slapt) RecordEvent(event *model.TransactionEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if event == nil {
		return fmt.Errorf("no event given")
	}

	event.LogStatus(m.userLogger)
	m.events = append(m.events, event)

	return nil
}

// Events returns all events recorded by this manager in order
func (m *Slapt) Events() []*model.TransactionEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := make([]*model.TransactionEvent, len(m.events))
	copy(res, m.events)

	return res
}
