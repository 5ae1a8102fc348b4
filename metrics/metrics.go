// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Sevlin/slaptctl/model"
)

var (
	NameSpace = "slaptctl"
	Subsystem = "reconcile"

	// RunTime is a summary of the time taken by a full reconcile run
	RunTime = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "run_duration_seconds"),
		Help: "Time taken by a full reconcile run",
	}, []string{})

	// RunTotalCount counts reconcile runs
	RunTotalCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "run_total_count"),
		Help: "How many reconcile runs were performed",
	}, []string{})

	// RunChangedCount counts reconcile runs that changed package state
	RunChangedCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "run_changed_count"),
		Help: "How many reconcile runs changed package state",
	}, []string{})

	// RunFailedCount counts reconcile runs that failed
	RunFailedCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "run_failed_count"),
		Help: "How many reconcile runs failed",
	}, []string{})

	// PackageActionCount counts individual package actions by category
	PackageActionCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(NameSpace, Subsystem, "package_action_count"),
		Help: "How many package actions were applied",
	}, []string{"action"})
)

func RegisterMetrics() {
	prometheus.MustRegister(RunTime)
	prometheus.MustRegister(RunTotalCount)
	prometheus.MustRegister(RunChangedCount)
	prometheus.MustRegister(RunFailedCount)
	prometheus.MustRegister(PackageActionCount)
}

func ListenAndServe(port int, log model.Logger) {
	if port <= 0 {
		return
	}

	go func() {
		log.Info("Starting monitoring server", "port", port)
		http.Handle("/metrics", promhttp.Handler())
		err := http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
		if err != nil {
			log.Error("HTTP Listener failed", "error", err)
		}
	}()
}
