package walker

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

type Info struct {
	TipHash chainhash.Hash
	// CurrentHash is the next hash to fetch, the sentinel once the walk is done
	CurrentHash    chainhash.Hash
	FetchedHeaders int64
	Since          time.Time
	Finished       time.Time
}

func (info Info) Elapsed() time.Duration {
	if info.Since.IsZero() {
		return 0
	}
	if info.Finished.IsZero() {
		return time.Since(info.Since)
	}
	return info.Finished.Sub(info.Since)
}

// HeadersPerSec is the average fetch rate over the walk so far.
func (info Info) HeadersPerSec() float64 {
	elapsed := info.Elapsed().Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(info.FetchedHeaders) / elapsed
}
