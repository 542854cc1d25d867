package walker

import (
	"context"
	"time"

	"github.com/duneanalytics/blockchain-headers/client/jsonrpc"
	"github.com/duneanalytics/blockchain-headers/lib/headerfile"
	"github.com/duneanalytics/blockchain-headers/models"
	"github.com/go-errors/errors"
)

var ErrMissingBlock = errors.New("missing block")

// Run fetches every header from the node and writes them to the output file.
//
// BestBlockHash -> BlockHeader(tip) -> BlockHeader(parent) -> ... -> genesis -> output file
//
// The headers are kept in memory until genesis is reached, so a failed walk leaves no file behind.
func (w *walker) Run(ctx context.Context) error {
	headers, err := w.Walk(ctx)
	if err != nil {
		return err
	}

	w.log.Info("Writing file",
		"path", w.cfg.OutputFile,
		"headers", headers.Len(),
		"compress", w.cfg.CompressOutput,
	)
	startTime := time.Now()
	err = headerfile.Save(w.cfg.OutputFile, headers, headerfile.Options{Compress: w.cfg.CompressOutput})
	if err != nil {
		w.log.Error("Failed to write output file", "path", w.cfg.OutputFile, "error", err)
		return err
	}
	metricWrittenHeaders.Add(float64(headers.Len()))
	w.log.Info("Wrote file",
		"path", w.cfg.OutputFile,
		"headers", headers.Len(),
		"elapsed", time.Since(startTime),
	)
	return nil
}

func (w *walker) Walk(ctx context.Context) (*models.HeaderSequence, error) {
	w.info = Info{Since: time.Now()}

	tip, err := w.node.BestBlockHash(ctx)
	if err != nil {
		w.log.Error("Failed to get best block hash", "error", err)
		return nil, errors.Errorf("get best block hash: %w", err)
	}
	w.info.TipHash = tip
	w.log.Info("Starting walk", "tip", tip, "reportProgressEvery", w.cfg.ReportProgressEvery)

	headers := models.NewHeaderSequence()
	hash := tip
	for hash != models.GenesisParentHash {
		w.info.CurrentHash = hash
		if err := ctx.Err(); err != nil {
			w.log.Info("Walk: context is done", "hash", hash, "fetched", headers.Len())
			return nil, err
		}

		header, err := w.node.BlockHeader(ctx, hash)
		if jsonrpc.IsBlockNotFound(err) {
			w.log.Error("Block is missing on the node", "hash", hash, "fetched", headers.Len(), "error", err)
			return nil, errors.Errorf("%w %s: %w", ErrMissingBlock, hash, err)
		}
		if err != nil {
			w.log.Error("Failed to get block header", "hash", hash, "fetched", headers.Len(), "error", err)
			return nil, errors.Errorf("get block header %s: %w", hash, err)
		}
		if header == nil {
			w.log.Error("Block is missing on the node", "hash", hash, "fetched", headers.Len())
			return nil, errors.Errorf("%w %s", ErrMissingBlock, hash)
		}

		headers.Push(*header)
		hash = header.PrevBlock()

		w.info.FetchedHeaders++
		metricFetchedHeaders.Inc()
		metricLastHeaderTimestamp.Set(float64(header.Timestamp().Unix()))
		if w.info.FetchedHeaders%int64(w.cfg.ReportProgressEvery) == 0 {
			w.log.Info("Processed headers",
				"count", w.info.FetchedHeaders,
				"parent", hash,
				"headerTime", header.Timestamp().UTC(),
				"headersPerSec", int64(w.info.HeadersPerSec()),
			)
		}
	}
	w.info.CurrentHash = hash
	w.info.Finished = time.Now()

	w.log.Info("Reached genesis",
		"tip", tip,
		"headers", headers.Len(),
		"elapsed", w.info.Elapsed(),
	)
	return headers, nil
}
