package main

// headers walks a bitcoin node from its current tip back to genesis over JSON-RPC
// and writes every block header, genesis first, to a flat binary file.

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/duneanalytics/blockchain-headers/client/jsonrpc"
	"github.com/duneanalytics/blockchain-headers/config"
	"github.com/duneanalytics/blockchain-headers/walker"
	"github.com/go-errors/errors"
	flags "github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func init() {
	// always use UTC
	time.Local = time.UTC
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		// handle Interrupt (ctrl-c) Term, used by `kill` et al
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case s := <-quit:
			logger.Warn("Caught UNIX signal", "signal", s)
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := run(ctx, logger, os.Args[1:]); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		logger.Error("Walk failed", "error", err)
		var goErr *errors.Error
		if errors.As(err, &goErr) {
			logger.Debug("Walk failed", "stack", goErr.ErrorStack())
		}
		cancel()
		os.Exit(1)
	}
}

// run parses args, loads the credential and walks the node until genesis or the first error.
func run(ctx context.Context, logger *slog.Logger, args []string) error {
	cfg, err := config.ParseArgs(args)
	if err != nil {
		return err
	}

	// the credential must be usable before we touch the network
	credential, err := config.LoadCookie(cfg.RPCNode.CookieFile)
	if err != nil {
		return err
	}

	rpcClient, err := jsonrpc.NewClient(logger, jsonrpc.Config{
		URL:            cfg.RPCNode.NodeURL,
		Credential:     credential,
		MaxRetries:     cfg.RPCNode.MaxRetries,
		RequestTimeout: cfg.RPCNode.RequestTimeout,
	})
	if err != nil {
		return err
	}
	defer rpcClient.Close()

	w := walker.New(logger, rpcClient, walker.Config{
		OutputFile:          cfg.OutputFile,
		CompressOutput:      cfg.CompressOutput,
		ReportProgressEvery: cfg.ReportProgressEvery,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer cancel()
		return w.Run(groupCtx)
	})
	if cfg.MetricsListenAddr != "" {
		serveMetrics(groupCtx, group, logger, cfg.MetricsListenAddr)
	}
	if err := group.Wait(); err != nil {
		return err
	}

	info := w.Info()
	logger.Info("Done", "tip", info.TipHash, "headers", info.FetchedHeaders, "elapsed", info.Elapsed())
	return nil
}

func serveMetrics(ctx context.Context, group *errgroup.Group, logger *slog.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	group.Go(func() error {
		logger.Info("Serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}
