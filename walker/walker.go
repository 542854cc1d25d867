package walker

import (
	"context"
	"log/slog"

	"github.com/duneanalytics/blockchain-headers/client/jsonrpc"
	"github.com/duneanalytics/blockchain-headers/models"
)

type Walker interface {
	// Run walks the chain from the current tip back to genesis and writes every header,
	// genesis first, to the output file. Nothing is written if the walk fails.
	Run(ctx context.Context) error

	// Walk fetches the headers from the tip back to genesis, one request at a time.
	// The returned sequence iterates genesis first.
	Walk(ctx context.Context) (*models.HeaderSequence, error)

	Info() Info
}

const defaultReportProgressEvery = 1000

type Config struct {
	OutputFile          string
	CompressOutput      bool
	ReportProgressEvery int
}

type walker struct {
	log  *slog.Logger
	node jsonrpc.BlockchainClient
	cfg  Config
	info Info
}

func New(log *slog.Logger, node jsonrpc.BlockchainClient, cfg Config) Walker {
	w := &walker{
		log:  log.With("module", "walker"),
		node: node,
		cfg:  cfg,
	}
	if w.cfg.ReportProgressEvery <= 0 {
		w.cfg.ReportProgressEvery = defaultReportProgressEvery
	}
	return w
}

func (w *walker) Info() Info {
	return w.info
}
