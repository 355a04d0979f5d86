package pathx

import "go.uber.org/zap"

const (
	defaultExpressionCacheSize = 256
	defaultSearchCacheSize     = 256
	defaultMaxNodeSetSize      = 0 // unbounded
)

// Config holds the tunables an Engine is built with. There is no file or
// environment-variable loading here: every value is set programmatically
// through an Option, since a path-expression engine embedded in a larger
// program has no configuration surface of its own to read from disk.
type Config struct {
	logger              *zap.Logger
	expressionCacheSize int
	searchCacheSize     int
	maxNodeSetSize      int
}

// Option configures an Engine at construction time.
type Option func(*Config)

// WithLogger attaches a *zap.Logger the Engine uses for Debug-level
// tracing of parses, cache hits/misses, and latched errors. A nil logger
// (the default) disables all engine logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) { c.logger = l }
}

// WithExpressionCacheSize bounds how many distinct parsed-and-checked
// expressions the Engine keeps in its AST cache. n <= 0 disables the
// cache entirely (every Parse re-parses from scratch).
func WithExpressionCacheSize(n int) Option {
	return func(c *Config) { c.expressionCacheSize = n }
}

// WithSearchCacheSize bounds how many (expression, context node) search
// results the Engine keeps for ExpandTree to reuse.
func WithSearchCacheSize(n int) Option {
	return func(c *Config) { c.searchCacheSize = n }
}

// WithMaxNodeSetSize caps how many nodes a single node-set may hold
// during evaluation or search. Exceeding it fails the Session with
// EResourceLimit instead of growing an unbounded result against a
// pathological or adversarial tree. 0 (the default) means unbounded.
func WithMaxNodeSetSize(n int) Option {
	return func(c *Config) { c.maxNodeSetSize = n }
}

func newConfig(opts ...Option) *Config {
	c := &Config{
		expressionCacheSize: defaultExpressionCacheSize,
		searchCacheSize:     defaultSearchCacheSize,
		maxNodeSetSize:      defaultMaxNodeSetSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Engine owns the shared caches and configuration backing every Session
// parsed from it. Parse reads and updates the expression cache without
// locking, so Parse calls on one Engine must not run concurrently while
// that cache is enabled.
type Engine struct {
	log        *engineLogger
	asts       *astCache
	searches   *searchCache
	maxNodeSet int
}

// NewEngine builds an Engine from the given Options, falling back to
// package defaults for anything left unset.
func NewEngine(opts ...Option) *Engine {
	c := newConfig(opts...)
	e := &Engine{
		log:        newEngineLogger(c.logger),
		maxNodeSet: c.maxNodeSetSize,
	}
	if c.expressionCacheSize > 0 {
		e.asts = newASTCache(c.expressionCacheSize)
	}
	if c.searchCacheSize > 0 {
		e.searches = newSearchCache(c.searchCacheSize)
	}
	return e
}
