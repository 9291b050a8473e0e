// Package cli defines the docrun command surface: one subcommand per
// documentation entry point, each composing decode, dispatch and the
// lifecycle controller. The controller owns diagnostics and the exit
// status, so cobra's own error and usage printing is silenced.
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vk/docrun/internal/app"
	"github.com/vk/docrun/internal/dispatch"
	"github.com/vk/docrun/internal/docgen"
)

// CLI carries the injection points for tests. The zero value is the
// production configuration: stderr diagnostics, the default engine, real
// exit and sleep.
type CLI struct {
	ErrW   io.Writer
	Engine docgen.Engine
	Exit   func(code int)
	Sleep  func(d time.Duration)
}

// entryPoints is the full invocation surface. Accepted argument counts live
// in the dispatcher; cobra passes the raw tokens through untouched so that
// an arity mismatch is reported by the same path as every other failure.
var entryPoints = []struct {
	entry dispatch.Entry
	use   string
	short string
}{
	{dispatch.EntryFile, "file SOURCE [OPTIONS]", "Generate documentation for a single source file"},
	{dispatch.EntryFiles, "files SOURCES [OPTIONS]", "Generate documentation for a batch of source files"},
	{dispatch.EntryPackages, "packages PACKAGES [OPTIONS]", "Generate documentation for a batch of packages"},
	{dispatch.EntryApplication, "application NAME [DIR] [OPTIONS]", "Generate documentation for a whole application"},
	{dispatch.EntryToc, "toc DIR PATHS [OPTIONS]", "Generate a table of contents for the given paths"},
}

// Root builds the docrun command tree.
func (c *CLI) Root() *cobra.Command {
	var cfg app.Config

	root := &cobra.Command{
		Use:           "docrun",
		Short:         "Command-line front end for the documentation engine",
		Long:          "docrun decodes its arguments as constant literal expressions,\ndispatches them to a documentation-generation operation, and exits\nwith status 0 on success and 1 on any failure.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", "", "log format: text or json (default: by terminal)")
	root.PersistentFlags().IntVar(&cfg.HealthPort, "health-port", 0, "serve a readiness endpoint on this port (0 disables)")

	for _, ep := range entryPoints {
		root.AddCommand(c.command(ep.entry, ep.use, ep.short, &cfg))
	}
	return root
}

func (c *CLI) command(entry dispatch.Entry, use, short string, cfg *app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a := app.New(c.errW(), *cfg, c.Engine)

			ctrl := a.Controller()
			ctrl.Exit = c.Exit
			ctrl.Sleep = c.Sleep

			ctrl.Run(func(ctx context.Context) error {
				return dispatch.Dispatch(ctx, a.Engine(), entry, args)
			})
		},
	}
}

func (c *CLI) errW() io.Writer {
	if c.ErrW != nil {
		return c.ErrW
	}
	return os.Stderr
}

// Execute runs the production CLI. It only returns for command-surface
// errors (unknown subcommand, bad flag); once an entry point runs, the
// lifecycle controller terminates the process itself.
func Execute() error {
	c := &CLI{}
	return c.Root().Execute()
}
