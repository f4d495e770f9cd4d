package envmap

import (
	"time"

	"github.com/goliatone/go-envmap/pkg/activity"
	"github.com/goliatone/go-envmap/pkg/envtab"
)

// Table is the injected flat-table abstraction. See envtab for the bundled
// process-environment, in-memory, and layered implementations.
type Table = envtab.Table

// Store exposes a hierarchical dot-path view over a single flat Table. The
// nested tree is rebuilt from the table on every read; the table stays the
// sole source of truth.
type Store struct {
	table Table
	cfg   storeConfig
}

// Option configures a single store operation.
type Option func(*callConfig)

type callConfig struct {
	caseSensitive bool
	parse         bool
	stringify     bool
}

// WithCaseSensitive disables the default case folding: paths are no longer
// lowercased on decode, keys are no longer uppercased on encode, and the
// prefix match compares verbatim.
func WithCaseSensitive(enabled bool) Option {
	return func(cfg *callConfig) {
		cfg.caseSensitive = enabled
	}
}

// WithParse enables JSON parsing of values on the way out of the table.
// Values that fail to parse are returned as their original text.
func WithParse(enabled bool) Option {
	return func(cfg *callConfig) {
		cfg.parse = enabled
	}
}

// WithStringify enables JSON serialization of non-string values on the way
// into the table. Values that fail to serialize fall back to plain textual
// coercion.
func WithStringify(enabled bool) Option {
	return func(cfg *callConfig) {
		cfg.stringify = enabled
	}
}

func (s *Store) callConfig(opts []Option) callConfig {
	cfg := s.cfg.defaults
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// StoreOption configures a Store at construction time.
type StoreOption func(*storeConfig)

type storeConfig struct {
	defaults  callConfig
	logger    Logger
	hooks     activity.Hooks
	evaluator Evaluator
	cache     ProgramCache
	functions *FunctionRegistry
}

// WithDefaults sets per-operation options applied to every call on the store.
// Options passed to an individual operation layer on top of these.
func WithDefaults(opts ...Option) StoreOption {
	return func(cfg *storeConfig) {
		for _, opt := range opts {
			if opt != nil {
				opt(&cfg.defaults)
			}
		}
	}
}

// WithEvaluator configures the expression evaluator used by Evaluate.
func WithEvaluator(e Evaluator) StoreOption {
	return func(cfg *storeConfig) {
		cfg.evaluator = e
	}
}

// WithProgramCache registers a compiled-program cache handed to the default
// evaluator.
func WithProgramCache(cache ProgramCache) StoreOption {
	return func(cfg *storeConfig) {
		cfg.cache = cache
	}
}

// WithActivityHooks attaches activity hooks notified after successful
// mutations. Hooks are cloned and nil entries dropped.
func WithActivityHooks(hooks activity.Hooks) StoreOption {
	normalized := cloneActivityHooks(hooks)
	return func(cfg *storeConfig) {
		cfg.hooks = normalized
	}
}

func cloneActivityHooks(hooks activity.Hooks) activity.Hooks {
	if len(hooks) == 0 {
		return nil
	}
	normalized := make([]activity.Hook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		normalized = append(normalized, hook)
	}
	if len(normalized) == 0 {
		return nil
	}
	return activity.Hooks(normalized)
}

// New constructs a Store over table. A nil table binds to the process
// environment.
func New(table Table, opts ...StoreOption) *Store {
	if table == nil {
		table = envtab.OS()
	}
	cfg := storeConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Store{table: table, cfg: cfg}
}

// Table returns the underlying flat table.
func (s *Store) Table() Table {
	return s.table
}

// EvalContext carries inputs needed when evaluating an expression against a
// materialized tree.
type EvalContext struct {
	Snapshot any
	Path     string
	Now      *time.Time
	Args     map[string]any
	Metadata map[string]any
}

func (ctx EvalContext) withDefaultNow() EvalContext {
	if ctx.Now != nil {
		return ctx
	}
	now := time.Now()
	ctx.Now = &now
	return ctx
}

func (ctx EvalContext) timestamp() time.Time {
	ctx = ctx.withDefaultNow()
	return *ctx.Now
}

func (ctx EvalContext) withDefaultMaps() EvalContext {
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]any{}
	}
	return ctx
}

func (ctx EvalContext) pathLabel() string {
	if ctx.Path == "" {
		return "root"
	}
	return ctx.Path
}

// Evaluator executes expressions against an evaluation context.
type Evaluator interface {
	Evaluate(ctx EvalContext, expr string) (any, error)
	Compile(expr string, opts ...CompileOption) (CompiledRule, error)
}

// CompiledRule represents a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx EvalContext) (any, error)
}

// CompileOption configures evaluator compile behaviour.
type CompileOption interface {
	applyCompileOption(*compileConfig)
}

type compileConfig struct{}

type compileOptionFunc func(*compileConfig)

func (f compileOptionFunc) applyCompileOption(cfg *compileConfig) {
	if f != nil {
		f(cfg)
	}
}

func (s *Store) evaluatorInstance() Evaluator {
	return s.cfg.evaluator
}

func (s *Store) setEvaluator(e Evaluator) {
	s.cfg.evaluator = e
}

func (s *Store) programCache() ProgramCache {
	return s.cfg.cache
}

func (s *Store) functionRegistry() *FunctionRegistry {
	return s.cfg.functions
}

func (s *Store) logger() Logger {
	if s.cfg.logger != nil {
		return s.cfg.logger
	}
	return noopLogger{}
}
