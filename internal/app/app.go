// Package app wires one docrun invocation together: the isolated logger,
// the engine, the readiness signal the startup gate waits on, and the
// optional health endpoint that exposes that signal.
package app

import (
	"io"
	"log/slog"

	"github.com/vk/docrun/internal/docgen"
	"github.com/vk/docrun/internal/lifecycle"
	"github.com/vk/docrun/internal/ready"
)

// Config holds the wiring knobs for one invocation.
type Config struct {
	LogLevel   string
	LogFormat  string
	HealthPort int
}

// App bundles the runtime services of a single invocation.
type App struct {
	logger *slog.Logger
	errW   io.Writer
	signal *ready.Signal
	engine docgen.Engine
}

// New constructs the invocation's services and publishes readiness once they
// are all in place. A nil engine selects the default generator.
func New(errW io.Writer, cfg Config, eng docgen.Engine) *App {
	a := &App{
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, errW),
		errW:   errW,
		signal: &ready.Signal{},
		engine: eng,
	}
	if a.engine == nil {
		a.engine = docgen.NewGenerator()
	}

	if cfg.HealthPort > 0 {
		a.startHealthServer(cfg.HealthPort)
	}

	// Everything the gate guards is now constructed.
	a.signal.Set()
	a.logger.Debug("runtime services ready")
	return a
}

// Engine returns the invocation's engine.
func (a *App) Engine() docgen.Engine {
	return a.engine
}

// Logger returns the invocation's isolated logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Controller returns a lifecycle controller gated on this App's readiness.
func (a *App) Controller() *lifecycle.Controller {
	return &lifecycle.Controller{
		Gate:   ready.NewGate(a.signal),
		Logger: a.logger,
		Sink:   a.errW,
	}
}
