// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"time"

	"github.com/segmentio/ksuid"
)

const TransactionEventProtocol = "ua.org.nix.slaptctl.v1.transaction.event"

// PackageChanges lists the packages each category of the plan acted on
type PackageChanges struct {
	Installed []string `json:"installed" yaml:"installed"`
	Upgraded  []string `json:"upgraded" yaml:"upgraded"`
	Removed   []string `json:"removed" yaml:"removed"`
}

// Result is the machine readable outcome surface of a reconcile run
type Result struct {
	Changed  bool           `json:"changed" yaml:"changed"`
	Packages PackageChanges `json:"packages" yaml:"packages"`
}

// TransactionEvent represents a single reconcile run against the package database
type TransactionEvent struct {
	Protocol  string        `json:"protocol" yaml:"protocol"`
	EventID   string        `json:"event_id" yaml:"event_id"`
	TimeStamp time.Time     `json:"timestamp" yaml:"timestamp"`
	Request   *Request      `json:"request,omitempty" yaml:"request,omitempty"`
	Duration  time.Duration `json:"duration" yaml:"duration"`

	Packages PackageChanges `json:"packages" yaml:"packages"`

	Error     string `json:"error" yaml:"error"`
	Changed   bool   `json:"changed" yaml:"changed"`
	Failed    bool   `json:"failed" yaml:"failed"`
	CheckMode bool   `json:"check_mode" yaml:"check_mode"`
}

// NewTransactionEvent creates an event for a reconcile run, event IDs are
// k-sortable so log archives keep time order
func NewTransactionEvent(req *Request) *TransactionEvent {
	return &TransactionEvent{
		Protocol:  TransactionEventProtocol,
		EventID:   ksuid.New().String(),
		TimeStamp: time.Now().UTC(),
		Request:   req,
		Packages: PackageChanges{
			Installed: []string{},
			Upgraded:  []string{},
			Removed:   []string{},
		},
	}
}

// Result extracts the caller facing outcome from the event
func (t *TransactionEvent) Result() *Result {
	return &Result{
		Changed:  t.Changed,
		Packages: t.Packages,
	}
}

// LogStatus logs a one line summary of the event to the given logger
func (t *TransactionEvent) LogStatus(log Logger) {
	args := []any{
		"runtime", t.Duration.Truncate(time.Millisecond),
		"installed", len(t.Packages.Installed),
		"upgraded", len(t.Packages.Upgraded),
		"removed", len(t.Packages.Removed),
	}

	if t.CheckMode {
		args = append(args, "check_mode", true)
	}

	switch {
	case t.Failed:
		log.Error("package state failed", append(args, "error", t.Error)...)
	case t.Changed:
		log.Warn("package state changed", args...)
	default:
		log.Info("package state stable", args...)
	}
}

func (t *TransactionEvent) String() string {
	switch {
	case t.Failed:
		return fmt.Sprintf("%s failed runtime=%v error=%v", t.EventID, t.Duration, t.Error)
	case t.Changed:
		return fmt.Sprintf("%s changed runtime=%v installed=%d upgraded=%d removed=%d", t.EventID, t.Duration, len(t.Packages.Installed), len(t.Packages.Upgraded), len(t.Packages.Removed))
	default:
		return fmt.Sprintf("%s stable runtime=%v", t.EventID, t.Duration)
	}
}
