// Copyright (c) 2026, Mykyta Solomko <sev@nix.org.ua>
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/SladkyCitron/slogcolor"
	"github.com/adrg/xdg"

	"github.com/Sevlin/slaptctl/config"
	iu "github.com/Sevlin/slaptctl/internal/util"
	"github.com/Sevlin/slaptctl/manager"
	"github.com/Sevlin/slaptctl/metrics"
	"github.com/Sevlin/slaptctl/model"
	"github.com/Sevlin/slaptctl/reconcile"
)

const systemConfigFile = "/etc/slaptctl/config.yaml"

func loadConfig() (*config.Config, error) {
	path := configFile

	if path == "" {
		userFile := filepath.Join(xdg.ConfigHome, "slaptctl", "config.yaml")
		switch {
		case xdg.ConfigHome != "" && iu.FileExists(userFile):
			path = userFile
		case iu.FileExists(systemConfigFile):
			path = systemConfigFile
		}
	}

	if path == "" {
		return config.NewDefaultConfig(), nil
	}

	return config.LoadConfig(path)
}

func newManager() (*manager.Slapt, model.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger()
	out := newOutputLogger()

	opts := []manager.Option{}

	if checkMode {
		opts = append(opts, manager.WithCheckMode())
	}

	switch {
	case executable != "":
		opts = append(opts, manager.WithExecutable(resolveExecutable(executable)))
	default:
		opts = append(opts, manager.WithExecutable(cfg.Executable))
	}

	cfgFlags, err := cfg.ExtraFlags()
	if err != nil {
		return nil, nil, err
	}
	opts = append(opts, manager.WithExtraFlags(cfgFlags...))
	opts = append(opts, manager.WithExtraFlagsString(extraFlags))

	mgr, err := manager.NewManager(logger, out, opts...)
	if err != nil {
		return nil, nil, err
	}

	metrics.ListenAndServe(cfg.MonitorPort, logger)

	return mgr, out, nil
}

// resolveExecutable turns a bare binary name into a full path via PATH lookup,
// absolute and relative paths pass through untouched
func resolveExecutable(name string) string {
	if strings.ContainsRune(name, os.PathSeparator) {
		return name
	}

	path, ok, _ := iu.ExecutableInPath(name)
	if !ok {
		return name
	}

	return path
}

// runRequest performs one reconcile run for the request and renders the
// result as JSON on stdout for automation callers
func runRequest(req *model.Request) error {
	mgr, _, err := newManager()
	if err != nil {
		return err
	}

	rec, err := reconcile.New(mgr)
	if err != nil {
		return err
	}

	event, err := rec.Apply(ctx, req)
	if event != nil {
		mgr.RecordEvent(event)
	}
	if err != nil {
		return err
	}

	j, err := json.MarshalIndent(event.Result(), "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(j))

	return nil
}

func newOutputLogger() model.Logger {
	var level slog.Level

	switch {
	case debug:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	if iu.IsTerminal() {
		return manager.NewSlogLogger(slog.New(slogcolor.NewHandler(os.Stdout, &slogcolor.Options{Level: level})))
	}

	return manager.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func newLogger() model.Logger {
	var level slog.Level

	switch {
	case debug:
		level = slog.LevelDebug
	case info:
		level = slog.LevelInfo
	default:
		level = slog.LevelWarn
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return manager.NewSlogLogger(logger)
}
