// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

// Package reconcile converges the installed package set with a desired state
// request, using simulated slapt-get runs to decide the minimal actions.
package reconcile

import (
	"context"
	"time"

	"github.com/Sevlin/slaptctl/metrics"
	"github.com/Sevlin/slaptctl/model"
	"github.com/Sevlin/slaptctl/slaptget"
)

// Reconciler applies desired package state requests
type Reconciler struct {
	mgr      model.Manager
	log      model.Logger
	provider *slaptget.Provider
}

// New creates a reconciler using the managers runner and slapt-get settings
func New(mgr model.Manager) (*Reconciler, error) {
	log, err := mgr.Logger("component", "reconcile")
	if err != nil {
		return nil, err
	}

	runner, err := mgr.NewRunner()
	if err != nil {
		return nil, err
	}

	provider, err := slaptget.New(log, runner,
		slaptget.WithExecutable(mgr.Executable()),
		slaptget.WithExtraFlags(mgr.ExtraFlags()))
	if err != nil {
		return nil, err
	}

	return &Reconciler{mgr: mgr, log: log, provider: provider}, nil
}

// Apply executes a single reconcile run and reports what changed.
//
// The stages run in a fixed order: cache update, cache clean, key retrieval,
// planning, apply. Every stage is optional and any failure is immediately
// fatal, packages applied before a failure stay applied. In check mode the
// plan is computed and reported but nothing is executed.
func (r *Reconciler) Apply(ctx context.Context, req *model.Request) (*model.TransactionEvent, error) {
	event := model.NewTransactionEvent(req)
	event.CheckMode = r.mgr.CheckMode()

	start := time.Now()
	err := r.apply(ctx, req, event)
	event.Duration = time.Since(start)

	if err != nil {
		event.Failed = true
		event.Error = err.Error()
	}
	observeRun(event)

	return event, err
}

func observeRun(event *model.TransactionEvent) {
	metrics.RunTime.WithLabelValues().Observe(event.Duration.Seconds())
	metrics.RunTotalCount.WithLabelValues().Inc()

	switch {
	case event.Failed:
		metrics.RunFailedCount.WithLabelValues().Inc()
	case event.Changed:
		metrics.RunChangedCount.WithLabelValues().Inc()
	}
}

func (r *Reconciler) apply(ctx context.Context, req *model.Request, event *model.TransactionEvent) error {
	err := req.Validate()
	if err != nil {
		return err
	}

	if req.UpdateCache {
		err = r.provider.Update(ctx, req)
		if err != nil {
			return err
		}
	}

	if req.WantsClean() {
		err = r.provider.Clean(ctx, req)
		if err != nil {
			return err
		}
	}

	if req.AddGPGKeys {
		err = r.provider.AddKeys(ctx, req)
		if err != nil {
			return err
		}
	}

	plan, err := r.provider.SimulatePlan(ctx, req)
	if err != nil {
		return err
	}

	// the plan lists are reported even in check mode, they are what a real
	// run would have applied
	event.Packages = model.PackageChanges{
		Installed: plan.Install,
		Upgraded:  plan.Upgrade,
		Removed:   plan.Remove,
	}

	if r.mgr.CheckMode() {
		if !plan.IsEmpty() {
			r.log.Info("Check mode, skipping pending actions",
				"install", len(plan.Install), "upgrade", len(plan.Upgrade), "remove", len(plan.Remove))
		}

		return nil
	}

	for _, pkg := range plan.Install {
		err = r.provider.Install(ctx, req, pkg)
		if err != nil {
			return err
		}
		metrics.PackageActionCount.WithLabelValues("install").Inc()
	}

	for _, pkg := range plan.Upgrade {
		err = r.provider.Upgrade(ctx, req, pkg)
		if err != nil {
			return err
		}
		metrics.PackageActionCount.WithLabelValues("upgrade").Inc()
	}

	for _, pkg := range plan.Remove {
		err = r.provider.Remove(ctx, req, pkg)
		if err != nil {
			return err
		}
		metrics.PackageActionCount.WithLabelValues("remove").Inc()
	}

	event.Changed = !plan.IsEmpty()

	return nil
}
