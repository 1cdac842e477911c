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

package batch_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/preagonal/gbfcore/batch"
	"github.com/preagonal/gbfcore/bytecode"
	"github.com/preagonal/gbfcore/config"
	"github.com/preagonal/gbfcore/funcarchive"
	"github.com/preagonal/gbfcore/gbferrors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func retFunc(name string, v int32) bytecode.Function {
	return bytecode.Function{
		Name:  name,
		Entry: 0,
		Blocks: []bytecode.BasicBlock{
			{
				ID: 0,
				Instructions: []bytecode.Instruction{
					{Opcode: bytecode.OpPushNumber, Operand: &bytecode.Operand{Kind: bytecode.OperandInt, Int: v}},
					{Opcode: bytecode.OpRet},
				},
			},
		},
	}
}

func TestDecompileModuleSucceeds(t *testing.T) {
	mod := &bytecode.Module{
		Name:      "m",
		Functions: []bytecode.Function{retFunc("a", 1), retFunc("b", 2), retFunc("c", 3)},
	}

	result, err := batch.DecompileModule(context.Background(), mod, config.Default(), nil, nil)
	require.NoError(t, err)
	require.Len(t, result.Functions, 3)
	require.Equal(t, "return 1;\n", result.Functions[0].Source)
	require.Equal(t, "return 2;\n", result.Functions[1].Source)
	require.Equal(t, "return 3;\n", result.Functions[2].Source)
	for _, r := range result.Functions {
		require.NoError(t, r.Err)
		require.False(t, r.Cached)
	}
}

func TestDecompileModuleReportsPerFunctionErrors(t *testing.T) {
	bad := bytecode.Function{
		Name:  "bad",
		Entry: 0,
		Blocks: []bytecode.BasicBlock{
			{ID: 0, Instructions: []bytecode.Instruction{{Opcode: bytecode.Opcode("NotReal")}}},
		},
	}
	mod := &bytecode.Module{Name: "m", Functions: []bytecode.Function{retFunc("good", 1), bad}}

	result, err := batch.DecompileModule(context.Background(), mod, config.Default(), nil, nil)
	require.Error(t, err)
	require.NoError(t, result.Functions[0].Err)
	require.Error(t, result.Functions[1].Err)
}

func TestDecompileModuleUsesArchiveCache(t *testing.T) {
	mod := &bytecode.Module{Name: "m", Functions: []bytecode.Function{retFunc("a", 1)}}
	ar := funcarchive.New()

	_, err := batch.DecompileModule(context.Background(), mod, config.Default(), nil, ar)
	require.NoError(t, err)
	require.Equal(t, 1, ar.Len())

	result, err := batch.DecompileModule(context.Background(), mod, config.Default(), nil, ar)
	require.NoError(t, err)
	require.True(t, result.Functions[0].Cached)
}

func TestDecompileModuleHonoursCancelledContext(t *testing.T) {
	mod := &bytecode.Module{Name: "m", Functions: []bytecode.Function{retFunc("a", 1)}}
	cfg := config.Default()
	cfg.PerFunctionBudget = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := batch.DecompileModule(ctx, mod, cfg, nil, nil)
	require.Error(t, err)
	require.Error(t, result.Functions[0].Err)

	var gbfErr *gbferrors.Error
	require.ErrorAs(t, result.Functions[0].Err, &gbfErr)
	require.Equal(t, gbferrors.TimeoutExceeded, gbfErr.Kind)
}
