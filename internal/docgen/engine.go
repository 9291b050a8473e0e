// Package docgen is the seam to the documentation-generation engine. The
// rest of docrun treats the engine as an opaque, blocking collaborator with
// one method per operation variant; the only observable outcomes are
// "returned" and "returned an error".
package docgen

import (
	"context"
	"fmt"

	"github.com/vk/docrun/internal/term"
)

// Engine is the documentation-generation subsystem. Each method is one
// operation variant; the variant is part of the contract, so callers never
// fill in defaults on the engine's behalf beyond choosing the variant.
type Engine interface {
	// File generates documentation for a single source file.
	File(ctx context.Context, source term.Value) error
	FileWithOptions(ctx context.Context, source, options term.Value) error

	// Files generates documentation for a batch of source files.
	Files(ctx context.Context, sources term.Value) error
	FilesWithOptions(ctx context.Context, sources, options term.Value) error

	// Packages generates documentation for a batch of packages.
	Packages(ctx context.Context, packages term.Value) error
	PackagesWithOptions(ctx context.Context, packages, options term.Value) error

	// Application generates documentation for a whole application.
	Application(ctx context.Context, app term.Value) error
	ApplicationWithOptions(ctx context.Context, app, options term.Value) error
	ApplicationIn(ctx context.Context, app, dir, options term.Value) error

	// Toc generates a table of contents for the given paths.
	Toc(ctx context.Context, dir, paths term.Value) error
	TocWithOptions(ctx context.Context, dir, paths, options term.Value) error
}

// EngineError wraps a failure signaled by the engine while performing an
// operation.
type EngineError struct {
	Op     string
	Detail error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("doc generation %s failed: %v", e.Op, e.Detail)
}

func (e *EngineError) Unwrap() error { return e.Detail }
