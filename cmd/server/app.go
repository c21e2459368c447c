package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	dochandler "contium/internal/document/handler"
	docmetrics "contium/internal/document/metrics"
	docservice "contium/internal/document/service"
	"contium/internal/document/store"
	"contium/internal/leaderboard"
	"contium/internal/ledger"
	"contium/internal/platform/config"
	"contium/internal/platform/health"
	httpmetrics "contium/internal/platform/metrics"
	"contium/internal/platform/tracer"
	"contium/internal/risk"
	"contium/internal/seeder"
	"contium/internal/session"
	httptransport "contium/internal/transport/http"
	"contium/internal/user"
	"contium/internal/verification"
	verifyhandler "contium/internal/verification/handler"
	verifymetrics "contium/internal/verification/metrics"
	"contium/pkg/platform/audit"
	auditmetrics "contium/pkg/platform/audit/metrics"
	"contium/pkg/platform/audit/publisher"
	"contium/pkg/platform/audit/store/memory"
	"contium/pkg/platform/circuit"
)

type app struct {
	handler http.Handler
	close   func()
}

// build wires stores, services and handlers. Everything is in memory and
// lives for the process lifetime.
func build(ctx context.Context, cfg config.Server, log *slog.Logger) (*app, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	auditStore := memory.NewInMemoryStore()
	pubOpts := []publisher.PublisherOption{
		publisher.WithPublisherLogger(log),
		publisher.WithMetrics(auditmetrics.New(reg)),
	}
	if cfg.AuditBuffer > 0 {
		pubOpts = append(pubOpts, publisher.WithAsyncBuffer(cfg.AuditBuffer))
	}
	auditPublisher := publisher.NewPublisher(auditStore, pubOpts...)

	directory := user.NewDirectory(user.SeedUsers()...)
	documents := store.New()
	if cfg.SeedDemoData {
		if err := seeder.New(directory, documents, auditStore, log).SeedAll(ctx); err != nil {
			auditPublisher.Close()
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
	}

	references := risk.DefaultTable()
	if cfg.ReferencePricesFile != "" {
		loaded, err := risk.LoadReferenceTable(cfg.ReferencePricesFile)
		if err != nil {
			auditPublisher.Close()
			return nil, fmt.Errorf("load reference prices: %w", err)
		}
		references = loaded
		log.Info("loaded reference prices", "path", cfg.ReferencePricesFile, "bands", len(loaded.Entries()))
	}

	chain := ledger.NewGuarded(
		ledger.NewSimulated(ledger.WithExplorerURL(cfg.LedgerExplorerURL)),
		circuit.New("ledger"),
		log,
	)

	docs := docservice.NewService(documents,
		docservice.WithLogger(log),
		docservice.WithMetrics(docmetrics.New(reg)),
		docservice.WithAuditor(auditPublisher),
		docservice.WithDirectory(directory),
		docservice.WithLedger(chain),
		docservice.WithReferenceTable(references),
		docservice.WithTerminalStatusLock(cfg.LockTerminalStatus),
	)
	verifier := verification.NewService(docs,
		verification.WithLogger(log),
		verification.WithMetrics(verifymetrics.New(reg)),
		verification.WithAuditor(auditPublisher),
		verification.WithLedger(chain),
		verification.WithTracer(tracer.NewOTel()),
		verification.WithPacing(cfg.VerificationPacing),
	)
	board := leaderboard.NewService(directory, auditPublisher)
	sessions := session.NewService(directory, session.NewTokens(cfg.SessionSigningKey, cfg.SessionTTL),
		session.WithLogger(log),
		session.WithAuditor(auditPublisher),
	)

	probes := health.New(cfg.Environment)
	probes.RegisterCheck("documents", func(ctx context.Context) error {
		_, err := documents.List(ctx)
		return err
	})
	probes.RegisterCheck("audit", func(ctx context.Context) error {
		_, err := auditPublisher.ListByAction(ctx, audit.EventVerificationRun)
		return err
	})

	router := httptransport.NewRouter(httptransport.Config{
		Logger:         log,
		Sessions:       sessions,
		Health:         probes,
		Metrics:        httpmetrics.New(reg),
		Gatherer:       reg,
		AllowedOrigins: cfg.AllowedOrigins,
		Handlers: []httptransport.RouteRegistrar{
			session.NewHandler(sessions, directory, log),
			dochandler.New(docs, log),
			verifyhandler.New(verifier, log),
			leaderboard.NewHandler(board, log),
		},
	})

	return &app{handler: router, close: auditPublisher.Close}, nil
}
