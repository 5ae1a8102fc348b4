// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/choria-io/fisk"

	"github.com/Sevlin/slaptctl/metrics"
)

var (
	ctx        context.Context
	debug      bool
	info       bool
	checkMode  bool
	configFile string
	executable string
	extraFlags string
	Version    = "development"
)

func main() {
	app := fisk.New("slaptctl", "Declarative package state management for slapt-get")
	app.Version(Version)
	app.Author("https://nix.org.ua")

	app.Flag("debug", "Enable debug logging").UnNegatableBoolVar(&debug)
	app.Flag("info", "Enable info logging").UnNegatableBoolVar(&info)
	app.Flag("noop", "Plan actions without applying them").UnNegatableBoolVar(&checkMode)
	app.Flag("config", "Configuration file to use").PlaceHolder("FILE").StringVar(&configFile)
	app.Flag("slapt-get", "Path to the slapt-get binary").PlaceHolder("PATH").StringVar(&executable)
	app.Flag("flags", "Extra global flags passed to every slapt-get invocation").PlaceHolder("FLAGS").StringVar(&extraFlags)

	registerEnsureCommand(app)
	registerRemoveCommand(app)
	registerUpgradeCommand(app)
	registerUpdateCommand(app)

	metrics.RegisterMetrics()

	ctx, _ = signal.NotifyContext(context.Background(), os.Interrupt)

	app.MustParseWithUsage(os.Args[1:])
}
