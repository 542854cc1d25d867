package hexutils

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/duneanalytics/blockchain-headers/models"
	"github.com/go-errors/errors"
)

var (
	ErrInvalidHeader = errors.New("invalid block header")
	ErrInvalidHash   = errors.New("invalid block hash")
)

// HeaderFromHex decodes a serialized header as returned by getblockheader with verbose=false.
func HeaderFromHex(hexHeader string) (models.BlockHeader, error) {
	var header models.BlockHeader
	raw, err := hex.DecodeString(hexHeader)
	if err != nil {
		return header, errors.Errorf("%w: couldn't decode hex: %w", ErrInvalidHeader, err)
	}
	if len(raw) != models.HeaderSize {
		return header, errors.Errorf("%w: expected %d bytes, got %d", ErrInvalidHeader, models.HeaderSize, len(raw))
	}
	copy(header[:], raw)
	return header, nil
}

// HashFromHex parses a block hash in display form. Unlike chainhash.NewHashFromStr it
// rejects anything shorter than the full 64 characters.
func HashFromHex(hexHash string) (chainhash.Hash, error) {
	if len(hexHash) != chainhash.MaxHashStringSize {
		return chainhash.Hash{}, errors.Errorf("%w: '%s' must be %d characters long",
			ErrInvalidHash, hexHash, chainhash.MaxHashStringSize)
	}
	hash, err := chainhash.NewHashFromStr(hexHash)
	if err != nil {
		return chainhash.Hash{}, errors.Errorf("%w: '%s': %w", ErrInvalidHash, hexHash, err)
	}
	return *hash, nil
}
