package jsonrpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/duneanalytics/blockchain-headers/lib/hexutils"
	"github.com/duneanalytics/blockchain-headers/models"
)

//go:generate moq -pkg jsonrpc_mock -out ../../mocks/jsonrpc/blockchainclient.go . BlockchainClient

type BlockchainClient interface {
	// BestBlockHash returns the hash of the current chain tip.
	BestBlockHash(ctx context.Context) (chainhash.Hash, error)

	// BlockHeader returns the serialized header of the block with the given hash,
	// or nil if the node answers with a null result. Bitcoin Core reports an unknown
	// hash as an *RPCError instead, see IsBlockNotFound.
	BlockHeader(ctx context.Context, hash chainhash.Hash) (*models.BlockHeader, error)

	Close() error
}

// RPCInvalidAddressOrKey is the code Bitcoin Core returns for an unknown block hash
const RPCInvalidAddressOrKey = -5

// IsBlockNotFound reports whether err carries the node's "block not found" error.
func IsBlockNotFound(err error) bool {
	var rpcErr *RPCError
	return errors.As(err, &rpcErr) && rpcErr.Code == RPCInvalidAddressOrKey
}

type BitcoinCoreClient struct {
	rpcClient
}

var _ BlockchainClient = &BitcoinCoreClient{}

func NewClient(log *slog.Logger, cfg Config) (*BitcoinCoreClient, error) {
	log = log.With("module", "jsonrpc")
	return NewRPCClient(log, NewHTTPClient(log, cfg), cfg)
}

// NewRPCClient builds a client on top of an existing HTTPClient.
func NewRPCClient(log *slog.Logger, httpClient HTTPClient, cfg Config) (*BitcoinCoreClient, error) {
	if cfg.URL == "" {
		return nil, errors.New("RPC node URL is required")
	}
	return &BitcoinCoreClient{*newClient(log, httpClient, cfg)}, nil
}

func (c *BitcoinCoreClient) BestBlockHash(ctx context.Context) (chainhash.Hash, error) {
	const method = "getbestblockhash"
	result, err := call[string](ctx, &c.rpcClient, method, []any{})
	if err != nil {
		return chainhash.Hash{}, err
	}
	if result == nil {
		return chainhash.Hash{}, fmt.Errorf("method %s: %w", method, ErrNullResult)
	}
	return hexutils.HashFromHex(*result)
}

func (c *BitcoinCoreClient) BlockHeader(ctx context.Context, hash chainhash.Hash) (*models.BlockHeader, error) {
	const method = "getblockheader"
	// verbose=false asks for the hex serialization instead of a JSON object
	result, err := call[string](ctx, &c.rpcClient, method, []any{hash.String(), false})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	header, err := hexutils.HeaderFromHex(*result)
	if err != nil {
		return nil, fmt.Errorf("method %s for block %s: %w", method, hash, err)
	}
	return &header, nil
}

func (c *BitcoinCoreClient) Close() error {
	return nil
}
