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

// Package gbferrors implements the core's error taxonomy (spec.md §7).
//
// Every error that can escape the four core subsystems is a *Error: it
// carries a Kind from the closed taxonomy, a Context snapshotting where in
// the function the error occurred, and — where available — a captured
// stack backtrace. No error is recovered inside the core; they all bubble
// to the function-level entry point, and it is left to the caller (the
// batch orchestrator, or a CLI) to decide whether to report-and-skip or
// fail outright.
package gbferrors

import (
	"fmt"
	"runtime"
	"strings"
)

// Kind enumerates the closed set of error kinds the core can raise, per the
// four categories in spec.md §7.
type Kind uint8

// The closed set of error kinds.
const (
	// Structural errors.
	UnimplementedOpcode Kind = iota + 1
	InstructionMustHaveOperand
	IrreducibleGraph
	RegionNotFound

	// Stack-discipline errors.
	ExpectedExpression
	ExpectedAssignable
	StackNotEmptyAtBlockEnd
	StackUnderflow

	// AST-validity errors.
	InvalidOperand
	AstNodeError

	// Budget errors.
	ReductionFixpointNotReached
	TimeoutExceeded
)

var kindNames = map[Kind]string{
	UnimplementedOpcode:         "UnimplementedOpcode",
	InstructionMustHaveOperand:  "InstructionMustHaveOperand",
	IrreducibleGraph:            "IrreducibleGraph",
	RegionNotFound:              "RegionNotFound",
	ExpectedExpression:          "ExpectedExpression",
	ExpectedAssignable:          "ExpectedAssignable",
	StackNotEmptyAtBlockEnd:     "StackNotEmptyAtBlockEnd",
	StackUnderflow:              "StackUnderflow",
	InvalidOperand:              "InvalidOperand",
	AstNodeError:                "AstNodeError",
	ReductionFixpointNotReached: "ReductionFixpointNotReached",
	TimeoutExceeded:             "TimeoutExceeded",
}

// String renders the kind's canonical name, used verbatim in Error().
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Context snapshots where in a function's decompilation an error occurred,
// per spec.md §6.3's ErrorContext contract.
type Context struct {
	FunctionName string
	BlockID      int
	InstrIndex   int
	StackDepth   int
	StackSummary string
}

func (c Context) String() string {
	fn := c.FunctionName
	if fn == "" {
		fn = "<unknown>"
	}
	return fmt.Sprintf("%s:%d#%d", fn, c.BlockID, c.InstrIndex)
}

// Error is the concrete error type raised anywhere in the core.
type Error struct {
	Kind   Kind
	Ctx    Context
	Detail string
	Cause  error

	stack []uintptr
}

// New constructs an Error, capturing the current call stack.
func New(kind Kind, ctx Context, detail string) *Error {
	return &Error{Kind: kind, Ctx: ctx, Detail: detail, stack: captureStack()}
}

// Wrap constructs an Error that chains an underlying cause.
func Wrap(kind Kind, ctx Context, detail string, cause error) *Error {
	return &Error{Kind: kind, Ctx: ctx, Detail: detail, Cause: cause, stack: captureStack()}
}

func captureStack() []uintptr {
	const depth = 32
	pcs := make([]uintptr, depth)
	// skip Callers, captureStack, and New/Wrap.
	n := runtime.Callers(3, pcs)
	return pcs[:n]
}

// Error renders the single-line, user-visible form required by spec.md §7:
// "gbf: <kind> at <function>:<block>#<insn>: <detail>".
func (e *Error) Error() string {
	msg := fmt.Sprintf("gbf: %s at %s: %s", e.Kind, e.Ctx, e.Detail)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes the chained cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Verbose renders Error() followed by the symbolized backtrace, for use
// when verbose logging is enabled (spec.md §7).
func (e *Error) Verbose() string {
	var b strings.Builder
	b.WriteString(e.Error())
	if len(e.stack) == 0 {
		return b.String()
	}
	b.WriteString("\n")
	frames := runtime.CallersFrames(e.stack)
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "\t%s\n\t\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}
