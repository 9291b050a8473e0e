// Package dispatch maps a decoded argument list onto one of the engine's
// operation variants. Resolution is by argument count alone: each entry
// point accepts a fixed set of lengths, and each length names exactly one
// variant. Element contents are never inspected here; type checking is the
// engine's concern.
package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/docrun/internal/docgen"
	"github.com/vk/docrun/internal/term"
)

// Entry identifies one of the documentation entry points.
type Entry string

const (
	EntryFile        Entry = "file"
	EntryFiles       Entry = "files"
	EntryPackages    Entry = "packages"
	EntryApplication Entry = "application"
	EntryToc         Entry = "toc"
)

// BadArgsError reports an argument list whose length matches no variant of
// the invoked entry point. It carries the original raw tokens, not the
// decoded values, so the diagnostic shows what the launcher actually sent.
type BadArgsError struct {
	Entry  Entry
	Tokens []string
}

func (e *BadArgsError) Error() string {
	return fmt.Sprintf("%s: bad arguments: [%s]", e.Entry, strings.Join(e.Tokens, ", "))
}

// Dispatch decodes the raw tokens and invokes the engine variant selected by
// the entry point and the decoded argument count. A decode failure aborts
// before any variant is considered; a count outside the entry point's
// accepted set yields a BadArgsError and the engine is never called.
func Dispatch(ctx context.Context, eng docgen.Engine, entry Entry, tokens []string) error {
	args, err := term.Decode(tokens)
	if err != nil {
		return err
	}

	switch entry {
	case EntryFile:
		switch len(args) {
		case 1:
			return eng.File(ctx, args[0])
		case 2:
			return eng.FileWithOptions(ctx, args[0], args[1])
		}
	case EntryFiles:
		switch len(args) {
		case 1:
			return eng.Files(ctx, args[0])
		case 2:
			return eng.FilesWithOptions(ctx, args[0], args[1])
		}
	case EntryPackages:
		switch len(args) {
		case 1:
			return eng.Packages(ctx, args[0])
		case 2:
			return eng.PackagesWithOptions(ctx, args[0], args[1])
		}
	case EntryApplication:
		switch len(args) {
		case 1:
			return eng.Application(ctx, args[0])
		case 2:
			return eng.ApplicationWithOptions(ctx, args[0], args[1])
		case 3:
			return eng.ApplicationIn(ctx, args[0], args[1], args[2])
		}
	case EntryToc:
		// A lone directory is never valid here: the path list is required.
		switch len(args) {
		case 2:
			return eng.Toc(ctx, args[0], args[1])
		case 3:
			return eng.TocWithOptions(ctx, args[0], args[1], args[2])
		}
	}

	return &BadArgsError{Entry: entry, Tokens: tokens}
}
