package docgen

import (
	"context"

	"github.com/vk/docrun/internal/term"
)

// Recorder is an Engine stand-in for tests. It records which variant fired
// and with which decoded values, and returns Err from every variant.
// Variants are named name/arity, e.g. "files/2".
type Recorder struct {
	Calls   int
	Variant string
	Args    []term.Value
	Err     error
}

func (r *Recorder) record(variant string, args ...term.Value) error {
	r.Calls++
	r.Variant = variant
	r.Args = args
	return r.Err
}

func (r *Recorder) File(_ context.Context, source term.Value) error {
	return r.record("file/1", source)
}

func (r *Recorder) FileWithOptions(_ context.Context, source, options term.Value) error {
	return r.record("file/2", source, options)
}

func (r *Recorder) Files(_ context.Context, sources term.Value) error {
	return r.record("files/1", sources)
}

func (r *Recorder) FilesWithOptions(_ context.Context, sources, options term.Value) error {
	return r.record("files/2", sources, options)
}

func (r *Recorder) Packages(_ context.Context, packages term.Value) error {
	return r.record("packages/1", packages)
}

func (r *Recorder) PackagesWithOptions(_ context.Context, packages, options term.Value) error {
	return r.record("packages/2", packages, options)
}

func (r *Recorder) Application(_ context.Context, app term.Value) error {
	return r.record("application/1", app)
}

func (r *Recorder) ApplicationWithOptions(_ context.Context, app, options term.Value) error {
	return r.record("application/2", app, options)
}

func (r *Recorder) ApplicationIn(_ context.Context, app, dir, options term.Value) error {
	return r.record("application/3", app, dir, options)
}

func (r *Recorder) Toc(_ context.Context, dir, paths term.Value) error {
	return r.record("toc/2", dir, paths)
}

func (r *Recorder) TocWithOptions(_ context.Context, dir, paths, options term.Value) error {
	return r.record("toc/3", dir, paths, options)
}
