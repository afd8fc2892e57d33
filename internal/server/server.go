// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/handler"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/workers"
)

const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	workers    *workers.Workers
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, ws *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{workers: ws, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcServer, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcServer
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer blocks until SIGINT, SIGTERM or SIGQUIT, then shuts everything
// down. A transport that fails to serve shuts the rest down too and its error
// is returned.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown(ctx context.Context) {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown(ctx)
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown(ctx)
	}
}

// run serves until ctx is cancelled or a transport stops with an error.
func (s *server) run(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	workersCtx, stopWorkers := context.WithCancel(ctx)
	var wg sync.WaitGroup
	if s.workers != nil {
		wg.Go(func() {
			s.workers.Run(workersCtx)
		})
	}

	// launch all created servers
	serveErrs := make(chan error, 2)
	serve := func(run func() error) {
		wg.Go(func() {
			if err := run(); err != nil {
				serveErrs <- err
			}
		})
	}
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		serve(s.httpServer.RunServer)
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		serve(s.gRPCServer.RunServer)
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serveErrs:
		s.logger.Error().Err(runErr).Msg("server stopped unexpectedly, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	stopWorkers()
	s.Shutdown(shutdownCtx)
	wg.Wait()

	if runErr != nil {
		return runErr
	}
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
