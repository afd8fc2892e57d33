// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/go-identity/internal/adapter"
	"github.com/MKhiriev/go-identity/internal/client"
	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/tui"
	"github.com/MKhiriev/go-identity/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: identity-client [-a address] [-timeout 10s] [-token token] <command> [flags]

commands:
  register [-email e] [-password p] [-copy]   create an account and print its token
  login    [-email e] [-password p] [-copy]   print a new token
  me       [-token t]                         print the identity of a token
  version                                     print build information`

func main() {
	log := logger.NewClientLogger("identity-client", logPath())

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if len(args) > 0 && args[0] == "version" {
		printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, tui.New(log), cfg, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprintln(os.Stderr, usage)
		}
		stop()
		os.Exit(1)
	}
}

// logPath puts the client log next to the executable.
func logPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "identity-client.log"
	}
	return filepath.Join(filepath.Dir(exe), "identity-client.log")
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
