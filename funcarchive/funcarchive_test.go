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

package funcarchive_test

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/preagonal/gbfcore/bytecode"
	"github.com/preagonal/gbfcore/funcarchive"
)

func sampleFunction(retVal int32) *bytecode.Function {
	return &bytecode.Function{
		Name:  "f",
		Entry: 0,
		Blocks: []bytecode.BasicBlock{
			{
				ID: 0,
				Instructions: []bytecode.Instruction{
					{Opcode: bytecode.OpPushNumber, Operand: &bytecode.Operand{Kind: bytecode.OperandInt, Int: retVal}},
					{Opcode: bytecode.OpRet},
				},
			},
		},
	}
}

func TestHashFunctionIsStableAndContentSensitive(t *testing.T) {
	a := sampleFunction(1)
	b := sampleFunction(1)
	c := sampleFunction(2)

	require.Equal(t, funcarchive.HashFunction(a), funcarchive.HashFunction(b))
	require.NotEqual(t, funcarchive.HashFunction(a), funcarchive.HashFunction(c))
}

func TestHashFunctionIgnoresName(t *testing.T) {
	a := sampleFunction(1)
	b := sampleFunction(1)
	b.Name = "different-name"

	require.Equal(t, funcarchive.HashFunction(a), funcarchive.HashFunction(b))
}

func TestArchiveStoreLookup(t *testing.T) {
	ar := funcarchive.New()
	h := funcarchive.HashFunction(sampleFunction(1))

	_, ok := ar.Lookup(h)
	require.False(t, ok)

	ar.Store(h, "f", "return 1;\n")
	source, ok := ar.Lookup(h)
	require.True(t, ok)
	require.Equal(t, "return 1;\n", source)
	require.Equal(t, 1, ar.Len())
}

func TestArchiveGobRoundTrip(t *testing.T) {
	ar := funcarchive.New()
	h1 := funcarchive.HashFunction(sampleFunction(1))
	h2 := funcarchive.HashFunction(sampleFunction(2))
	ar.Store(h1, "f1", "return 1;\n")
	ar.Store(h2, "f2", "return 2;\n")

	encoded, err := ar.GobEncode()
	require.NoError(t, err)

	decoded := funcarchive.New()
	require.NoError(t, decoded.GobDecode(encoded))
	require.Equal(t, ar.Len(), decoded.Len())

	source, ok := decoded.Lookup(h1)
	require.True(t, ok)
	require.Equal(t, "return 1;\n", source)
}

// Archive must round-trip through gob's top-level Encoder/Decoder too,
// not just the raw GobEncode/GobDecode byte slice.
func TestArchiveGobEncoderDecoder(t *testing.T) {
	ar := funcarchive.New()
	h := funcarchive.HashFunction(sampleFunction(1))
	ar.Store(h, "f", "return 1;\n")

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(ar))

	decoded := funcarchive.New()
	require.NoError(t, gob.NewDecoder(&buf).Decode(decoded))

	source, ok := decoded.Lookup(h)
	require.True(t, ok)
	require.Equal(t, "return 1;\n", source)
}
