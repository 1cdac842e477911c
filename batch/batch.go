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

// Package batch fans a Module's functions out across goroutines and
// collects their decompiled source, one result per function (SPEC_FULL.md
// §5.3). Functions share no mutable state beyond the process-wide NodeId
// counter (already atomic; spec.md §5, §9), so they decompile safely in
// parallel.
//
// The fan-out/collect shape — one goroutine per unit of work, a
// sync.WaitGroup, a result channel closed by a dedicated goroutine once
// the group drains, and panic recovery converting into an error result
// rather than crashing the batch — mirrors
// assertion/function/analyzer.go's per-function analysis launcher. That
// launcher spawns one goroutine per function unconditionally; this
// package additionally bounds concurrency to runtime.GOMAXPROCS(0) with a
// semaphore, per SPEC_FULL.md §5.3's explicit "bounded by a worker pool"
// requirement.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"github.com/preagonal/gbfcore/bytecode"
	"github.com/preagonal/gbfcore/config"
	"github.com/preagonal/gbfcore/decompiler"
	"github.com/preagonal/gbfcore/emitter"
	"github.com/preagonal/gbfcore/funcarchive"
	"github.com/preagonal/gbfcore/gbferrors"
)

// FunctionResult is one function's decompilation outcome.
type FunctionResult struct {
	Name   string
	Index  int
	Source string
	Err    error
	// Cached reports whether Source was served from the archive instead
	// of freshly decompiled.
	Cached bool
}

// Result is the outcome of decompiling every function in a Module.
type Result struct {
	Functions []FunctionResult
	// Err is the join of every per-function error, nil if all succeeded.
	Err error
}

type functionResult struct {
	FunctionResult
}

// DecompileModule decompiles every function in mod concurrently, bounded
// by runtime.GOMAXPROCS(0) workers, optionally consulting and populating
// archive as a cross-run cache (SPEC_FULL.md §5.2, §5.3). log receives one
// structured entry per function outcome; archive and log may both be nil.
func DecompileModule(ctx context.Context, mod *bytecode.Module, cfg *config.Config, log *zap.Logger, archive *funcarchive.Archive) (*Result, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}

	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	resChan := make(chan functionResult)

	for i, fn := range mod.Functions {
		wg.Add(1)
		go decompileOne(ctx, cfg, fn, i, resChan, &wg, sem, log, archive)
	}

	go func() {
		wg.Wait()
		close(resChan)
	}()

	results := make([]FunctionResult, len(mod.Functions))
	var joined error
	for r := range resChan {
		results[r.Index] = r.FunctionResult
		if r.Err != nil {
			joined = joinErrors(joined, fmt.Errorf("function %s: %w", r.Name, r.Err))
		}
	}

	log.Info("module decompiled",
		zap.String("module", mod.Name),
		zap.Int("functions", len(mod.Functions)),
		zap.Bool("hasErrors", joined != nil))

	return &Result{Functions: results, Err: joined}, joined
}

func decompileOne(
	ctx context.Context,
	cfg *config.Config,
	fn bytecode.Function,
	index int,
	resChan chan<- functionResult,
	wg *sync.WaitGroup,
	sem chan struct{},
	log *zap.Logger,
	archive *funcarchive.Archive,
) {
	defer wg.Done()
	defer func() {
		if r := recover(); r != nil {
			resChan <- functionResult{FunctionResult{
				Name:  fn.Name,
				Index: index,
				Err:   fmt.Errorf("internal panic: %v\n%s", r, string(debug.Stack())),
			}}
		}
	}()

	sem <- struct{}{}
	defer func() { <-sem }()

	hash := funcarchive.HashFunction(&fn)
	if archive != nil {
		if source, ok := archive.Lookup(hash); ok {
			log.Debug("function cache hit", zap.String("function", fn.Name))
			resChan <- functionResult{FunctionResult{Name: fn.Name, Index: index, Source: source, Cached: true}}
			return
		}
	}

	runCtx := ctx
	var cancel context.CancelFunc
	if cfg.PerFunctionBudget > 0 {
		runCtx, cancel = context.WithTimeout(ctx, cfg.PerFunctionBudget)
		defer cancel()
	}

	source, err := decompileWithBudget(runCtx, cfg, fn)
	if err != nil {
		log.Warn("function decompilation failed", zap.String("function", fn.Name), zap.Error(err))
		resChan <- functionResult{FunctionResult{Name: fn.Name, Index: index, Err: err}}
		return
	}

	if archive != nil {
		archive.Store(hash, fn.Name, source)
	}
	resChan <- functionResult{FunctionResult{Name: fn.Name, Index: index, Source: source}}
}

// decompileWithBudget runs stages B/C/D for one function, returning a
// gbferrors.TimeoutExceeded error if runCtx expires first (SPEC_FULL.md
// §5.3, §7).
func decompileWithBudget(runCtx context.Context, cfg *config.Config, fn bytecode.Function) (string, error) {
	if err := runCtx.Err(); err != nil {
		return "", budgetExceededError(fn.Name, err)
	}

	type outcome struct {
		source string
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("internal panic: %v\n%s", r, string(debug.Stack()))}
			}
		}()
		astFn, err := decompiler.DecompileFunction(&fn)
		if err != nil {
			done <- outcome{err: err}
			return
		}
		source, err := emitter.Emit(astFn, cfg)
		done <- outcome{source: source, err: err}
	}()

	select {
	case o := <-done:
		return o.source, o.err
	case <-runCtx.Done():
		return "", budgetExceededError(fn.Name, runCtx.Err())
	}
}

// budgetExceededError wraps runCtx's cancellation cause as a
// gbferrors.TimeoutExceeded error, so callers can errors.As it to the
// core's own taxonomy instead of matching on context.DeadlineExceeded.
func budgetExceededError(fnName string, cause error) error {
	return gbferrors.Wrap(gbferrors.TimeoutExceeded, gbferrors.Context{FunctionName: fnName},
		"per-function budget exceeded", cause)
}

func joinErrors(a, b error) error {
	if a == nil {
		return b
	}
	return fmt.Errorf("%w; %w", a, b)
}
