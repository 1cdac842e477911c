// Copyright (c) 2024 The gbfcore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package funcarchive persists the emitted source text of a Module's
// decompiled functions, keyed by a hash of the bytecode that produced
// each one, so a repeated batch run over an unchanged Module need not
// redo decompilation and emission for functions whose bytecode hasn't
// moved (SPEC_FULL.md §5.2).
//
// Encoding follows inference/inferred_map.go's GobEncode/GobDecode pair
// technique byte for byte: gob-encode the payload, then wrap the writer
// in an s2 compressor. An ast.Function graph itself is not gob-portable
// as-is — its Node/Expr/Stmt interfaces would need every concrete type
// gob.Register'd, and its per-process nodeid.ID values must never be
// serialised (spec.md §9, "Global NodeId counter" — equality must never
// depend on it). Caching the already-emitted GS2 text sidesteps both
// problems while still skipping the decompile-and-emit work for an
// unchanged function on the next run.
package funcarchive

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"sync"

	"github.com/klauspost/compress/s2"

	"github.com/preagonal/gbfcore/bytecode"
)

// Hash is a content hash of one function's bytecode, used as the
// archive's cache key (SPEC_FULL.md §5.2). The function's name is not
// part of the key.
type Hash [sha256.Size]byte

// HashFunction computes a deterministic content hash over a function's
// instructions and edges. Two bytecode.Function values with identical
// instructions/operands/edges hash identically regardless of Name, so a
// renamed-but-unchanged function is still recognised as a cache hit.
func HashFunction(fn *bytecode.Function) Hash {
	h := sha256.New()
	var scratch [4]byte
	writeInt := func(n int) {
		binary.BigEndian.PutUint32(scratch[:], uint32(n))
		h.Write(scratch[:])
	}
	writeInt(len(fn.Blocks))
	for _, b := range fn.Blocks {
		writeInt(len(b.Instructions))
		for _, instr := range b.Instructions {
			h.Write([]byte(instr.Opcode))
			if instr.Operand != nil {
				writeInt(int(instr.Operand.Kind))
				writeInt(int(instr.Operand.Int))
				h.Write([]byte(instr.Operand.String))
				h.Write([]byte(instr.Operand.Float))
			}
		}
		writeInt(len(b.Succs))
		for _, e := range b.Succs {
			writeInt(e.To)
			writeInt(int(e.Kind))
		}
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// entry is one cached function's payload, gob-encoded as a whole via
// Archive's GobEncode/GobDecode.
type entry struct {
	Hash   Hash
	Name   string
	Source string
}

// Archive is a concurrency-safe, compressible cache of emitted function
// source, keyed by HashFunction's output.
type Archive struct {
	mu      sync.RWMutex
	entries map[Hash]entry
}

// New returns an empty Archive.
func New() *Archive {
	return &Archive{entries: make(map[Hash]entry)}
}

// Lookup returns the cached source for a function whose current bytecode
// hashes to h, if present.
func (a *Archive) Lookup(h Hash) (source string, ok bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	e, ok := a.entries[h]
	return e.Source, ok
}

// Store records the emitted source for a function, keyed by its
// bytecode hash.
func (a *Archive) Store(h Hash, name, source string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries[h] = entry{Hash: h, Name: name, Source: source}
}

// Len returns the number of cached entries.
func (a *Archive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.entries)
}

// GobEncode gob-encodes the archive's entries, then s2-compresses the
// result, mirroring inference/inferred_map.go's GobEncode.
func (a *Archive) GobEncode() (b []byte, err error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var buf bytes.Buffer
	writer := s2.NewWriter(&buf)
	defer func() {
		if cerr := writer.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	list := make([]entry, 0, len(a.entries))
	for _, e := range a.entries {
		list = append(list, e)
	}
	if err := gob.NewEncoder(writer).Encode(list); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode reverses GobEncode, mirroring inference/inferred_map.go's
// GobDecode.
func (a *Archive) GobDecode(input []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var list []entry
	buf := bytes.NewBuffer(input)
	if err := gob.NewDecoder(s2.NewReader(buf)).Decode(&list); err != nil {
		return err
	}

	a.entries = make(map[Hash]entry, len(list))
	for _, e := range list {
		a.entries[e.Hash] = e
	}
	return nil
}
