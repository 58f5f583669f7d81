package hxcmd

import "go.uber.org/zap"

// Engine processes server-command fragments against an injected host.
//
// An Engine is a pure per-fragment processor: it holds no cross-request
// state beyond its collaborators and is safe to reuse for the lifetime of a
// page session.
//
//	engine := hxcmd.New(host, history, nav)
//	sanitized, task := engine.Transform(fragment, ctxElt)
//	// display sanitized immediately; task runs the commands
type Engine struct {
	host    Host
	history History
	nav     Navigator
	log     *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for developer-facing warnings (nested
// command tags, trigger target fallback). The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// New creates an Engine with the given collaborators.
func New(host Host, history History, nav Navigator, opts ...Option) *Engine {
	e := &Engine{
		host:    host,
		history: history,
		nav:     nav,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
