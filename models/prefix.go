// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const (
	// MinPrefixSize is the shortest hash prefix the local databases accept.
	MinPrefixSize = 4
	// FullHashSize is the length of a complete URL hash. A prefix of this
	// size is the full hash itself.
	FullHashSize = 32
)

// PrefixBlock is the wire representation of a run of equally sized hash
// prefixes: Size bytes per prefix, concatenated back to back in Data.
// The remote list service encodes both reset and diff additions this way.
type PrefixBlock struct {
	// Size is the length in bytes of every prefix in the block, in
	// [MinPrefixSize, FullHashSize].
	Size int `json:"prefix_size"`

	// Data holds len(Data)/Size prefixes concatenated without separators.
	Data []byte `json:"raw_prefixes"`
}

// Validate checks the block's size bounds and that Data splits evenly into
// prefixes of that size.
func (b PrefixBlock) Validate() error {
	if b.Size < MinPrefixSize || b.Size > FullHashSize {
		return fmt.Errorf("%w: prefix size %d", ErrMalformedPrefixBlock, b.Size)
	}
	if len(b.Data)%b.Size != 0 {
		return fmt.Errorf("%w: %d bytes is not a multiple of prefix size %d",
			ErrMalformedPrefixBlock, len(b.Data), b.Size)
	}
	return nil
}

// Count returns the number of prefixes carried by the block.
func (b PrefixBlock) Count() int {
	if b.Size == 0 {
		return 0
	}
	return len(b.Data) / b.Size
}

// Prefixes splits the block into individual prefix byte slices. Each returned
// slice is a copy, safe to retain past the lifetime of the block.
func (b PrefixBlock) Prefixes() [][]byte {
	n := b.Count()
	out := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		p := make([]byte, b.Size)
		copy(p, b.Data[i*b.Size:(i+1)*b.Size])
		out = append(out, p)
	}
	return out
}
