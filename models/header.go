package models

import (
	"encoding/binary"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// HeaderSize is the length of a serialized block header.
const HeaderSize = 80

// GenesisParentHash is the parent recorded in the genesis header. The walk stops when it reaches it.
var GenesisParentHash = chainhash.Hash{}

// BlockHeader is a block header in the node's wire layout:
//
//	[0,4)   version
//	[4,36)  previous block hash
//	[36,68) merkle root
//	[68,72) timestamp
//	[72,76) bits
//	[76,80) nonce
//
// All integers are little endian. Hashes are kept in wire byte order, which is the
// reverse of how they are displayed.
type BlockHeader [HeaderSize]byte

func (h *BlockHeader) Version() int32 {
	return int32(binary.LittleEndian.Uint32(h[0:4]))
}

// PrevBlock returns the hash of the parent block. Its String() is the display form
// the node accepts as a lookup key.
func (h *BlockHeader) PrevBlock() chainhash.Hash {
	var hash chainhash.Hash
	copy(hash[:], h[4:36])
	return hash
}

func (h *BlockHeader) MerkleRoot() chainhash.Hash {
	var hash chainhash.Hash
	copy(hash[:], h[36:68])
	return hash
}

func (h *BlockHeader) Timestamp() time.Time {
	return time.Unix(int64(binary.LittleEndian.Uint32(h[68:72])), 0)
}

func (h *BlockHeader) Bits() uint32 {
	return binary.LittleEndian.Uint32(h[72:76])
}

func (h *BlockHeader) Nonce() uint32 {
	return binary.LittleEndian.Uint32(h[76:80])
}

// Hash computes the block hash. It is only used for reporting, headers are never checked against it.
func (h *BlockHeader) Hash() chainhash.Hash {
	return chainhash.DoubleHashH(h[:])
}

// HeaderSequence accumulates headers while walking from the tip towards genesis
// and hands them back genesis first.
type HeaderSequence struct {
	stack *arraystack.Stack
}

func NewHeaderSequence() *HeaderSequence {
	return &HeaderSequence{stack: arraystack.New()}
}

func (s *HeaderSequence) Push(header BlockHeader) {
	s.stack.Push(header)
}

func (s *HeaderSequence) Len() int {
	return s.stack.Size()
}

// Ascending calls fn for every header, starting with the last one pushed (genesis).
// It stops at the first error returned by fn.
func (s *HeaderSequence) Ascending(fn func(BlockHeader) error) error {
	it := s.stack.Iterator()
	for it.Next() {
		if err := fn(it.Value().(BlockHeader)); err != nil {
			return err
		}
	}
	return nil
}
