package docgen

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/docrun/internal/ctxlog"
	"github.com/vk/docrun/internal/term"
)

// Generator is the default Engine. Documentation generation proper lives in
// the backend this binary fronts; the generator resolves and validates the
// requested targets and records the request, failing early on targets that
// do not exist so the operator gets a precise diagnostic instead of a
// backend stack trace.
type Generator struct{}

// NewGenerator returns the default engine implementation.
func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) File(ctx context.Context, source term.Value) error {
	return g.generate(ctx, "file", term.List{source}, nil)
}

func (g *Generator) FileWithOptions(ctx context.Context, source, options term.Value) error {
	return g.generate(ctx, "file", term.List{source}, options)
}

func (g *Generator) Files(ctx context.Context, sources term.Value) error {
	return g.generate(ctx, "files", term.List{sources}, nil)
}

func (g *Generator) FilesWithOptions(ctx context.Context, sources, options term.Value) error {
	return g.generate(ctx, "files", term.List{sources}, options)
}

func (g *Generator) Packages(ctx context.Context, packages term.Value) error {
	return g.generate(ctx, "packages", term.List{packages}, nil)
}

func (g *Generator) PackagesWithOptions(ctx context.Context, packages, options term.Value) error {
	return g.generate(ctx, "packages", term.List{packages}, options)
}

func (g *Generator) Application(ctx context.Context, app term.Value) error {
	return g.generate(ctx, "application", term.List{app}, nil)
}

func (g *Generator) ApplicationWithOptions(ctx context.Context, app, options term.Value) error {
	return g.generate(ctx, "application", term.List{app}, options)
}

func (g *Generator) ApplicationIn(ctx context.Context, app, dir, options term.Value) error {
	return g.generate(ctx, "application", term.List{app, dir}, options)
}

func (g *Generator) Toc(ctx context.Context, dir, paths term.Value) error {
	return g.generate(ctx, "toc", term.List{dir, paths}, nil)
}

func (g *Generator) TocWithOptions(ctx context.Context, dir, paths, options term.Value) error {
	return g.generate(ctx, "toc", term.List{dir, paths}, options)
}

func (g *Generator) generate(ctx context.Context, op string, targets term.List, options term.Value) error {
	if err := checkTargets(targets); err != nil {
		return &EngineError{Op: op, Detail: err}
	}

	logger := ctxlog.FromContext(ctx)
	if options != nil {
		logger.Info("doc generation requested", "op", op, "targets", term.Render(targets), "options", term.Render(options))
	} else {
		logger.Info("doc generation requested", "op", op, "targets", term.Render(targets))
	}
	return nil
}

// checkTargets verifies that every string target, at any nesting depth,
// names an existing file or directory. Symbols (application and package
// names) are resolved by the backend, not the filesystem.
func checkTargets(v term.Value) error {
	switch v := v.(type) {
	case term.String:
		if _, err := os.Stat(string(v)); err != nil {
			return fmt.Errorf("target %s: %w", term.Render(v), err)
		}
	case term.List:
		for _, el := range v {
			if err := checkTargets(el); err != nil {
				return err
			}
		}
	}
	return nil
}
