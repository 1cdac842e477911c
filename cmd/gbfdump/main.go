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

// gbfdump is a standalone command that decompiles every function in a
// bytecode.Module and prints the emitted GS2 source to stdout, one function
// at a time, separated by a comment naming it. It is the ambient CLI surface
// every teacher tool ships (cmd/nilaway/main.go), adapted here to drive the
// batch package instead of an analysis.Pass.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/preagonal/gbfcore/batch"
	"github.com/preagonal/gbfcore/bytecode"
	"github.com/preagonal/gbfcore/config"
	"github.com/preagonal/gbfcore/funcarchive"
)

var (
	_inputPath    string
	_indentWidth  int
	_noPretty     bool
	_perFuncLimit time.Duration
	_verbose      bool
)

func main() {
	flag.StringVar(&_inputPath, "in", "", "path to a JSON-encoded bytecode.Module (required)")
	flag.IntVar(&_indentWidth, "indent", 4, "number of spaces per indent level in emitted source")
	flag.BoolVar(&_noPretty, "compact", false, "disable pretty-printing (single-line output)")
	flag.DurationVar(&_perFuncLimit, "per-function-timeout", 0, "abort a single function's decompilation after this long (0 disables)")
	flag.BoolVar(&_verbose, "v", false, "log per-function progress to stderr")
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gbfdump: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if _inputPath == "" {
		return fmt.Errorf("missing required -in flag")
	}

	raw, err := os.ReadFile(_inputPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", _inputPath, err)
	}

	var mod bytecode.Module
	if err := json.Unmarshal(raw, &mod); err != nil {
		return fmt.Errorf("decode module from %s: %w", _inputPath, err)
	}

	cfg := config.Default()
	cfg.IndentWidth = _indentWidth
	cfg.PrettyPrint = !_noPretty
	cfg.PerFunctionBudget = _perFuncLimit

	log := zap.NewNop()
	if _verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		log = l
		defer log.Sync() //nolint:errcheck
	}

	result, err := batch.DecompileModule(context.Background(), &mod, cfg, log, funcarchive.New())
	if result == nil {
		return err
	}

	for _, fn := range result.Functions {
		fmt.Printf("// --- %s ---\n", fn.Name)
		if fn.Err != nil {
			fmt.Printf("// error: %v\n\n", fn.Err)
			continue
		}
		fmt.Print(fn.Source)
		fmt.Print("\n")
	}

	if err != nil {
		return fmt.Errorf("one or more functions failed to decompile: %w", err)
	}
	return nil
}
