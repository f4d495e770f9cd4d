package envmap

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoEvaluator indicates an expression ran without a configured evaluator.
var ErrNoEvaluator = errors.New("envmap: evaluator not configured")

// Response stores a typed result produced by an evaluator.
type Response[T any] struct {
	Value T
}

// Evaluate materializes the whole table as a tree and runs expr against it
// using the configured evaluator.
func (s *Store) Evaluate(expr string, opts ...Option) (Response[any], error) {
	return s.EvaluateAt("", expr, opts...)
}

// EvaluateAt materializes the subtree at path and runs expr against it.
func (s *Store) EvaluateAt(path, expr string, opts ...Option) (Response[any], error) {
	cfg := s.callConfig(opts)
	snapshot, _, _ := s.read(path, cfg)
	return s.EvaluateWith(EvalContext{Snapshot: snapshot, Path: path}, expr)
}

// EvaluateWith executes expr using ctx, materializing the root tree when
// ctx.Snapshot is nil.
func (s *Store) EvaluateWith(ctx EvalContext, expr string) (Response[any], error) {
	if expr == "" {
		return Response[any]{}, fmt.Errorf("expression must not be empty")
	}
	evaluator, err := s.resolveEvaluator()
	if err != nil {
		return Response[any]{}, err
	}
	if ctx.Snapshot == nil {
		snapshot, _, _ := s.read(ctx.Path, s.cfg.defaults)
		ctx.Snapshot = snapshot
	}
	ctx = ctx.withDefaultNow().withDefaultMaps()
	engine := evaluatorEngineName(evaluator)
	start := time.Now()
	value, evalErr := evaluator.Evaluate(ctx, expr)
	duration := time.Since(start)
	evalErr = wrapEvaluationError(engine, expr, ctx.pathLabel(), evalErr)
	s.logger().LogOperation(LogEvent{
		Op:       "evaluate",
		Path:     ctx.pathLabel(),
		Engine:   engine,
		Expr:     expr,
		Duration: duration,
		Err:      evalErr,
	})
	if evalErr != nil {
		return Response[any]{}, evalErr
	}
	return Response[any]{Value: value}, nil
}

func (s *Store) resolveEvaluator() (Evaluator, error) {
	evaluator := s.evaluatorInstance()
	if evaluator != nil {
		return evaluator, nil
	}
	var exprOpts []ExprEvaluatorOption
	if cache := s.programCache(); cache != nil {
		exprOpts = append(exprOpts, ExprWithProgramCache(cache))
	}
	if registry := s.functionRegistry(); registry != nil {
		exprOpts = append(exprOpts, ExprWithFunctionRegistry(registry))
	}
	defaultEvaluator := NewExprEvaluator(exprOpts...)
	if defaultEvaluator == nil {
		return nil, ErrNoEvaluator
	}
	s.setEvaluator(defaultEvaluator)
	return defaultEvaluator, nil
}

func evaluatorEngineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*envmap.exprEvaluator":
		return "expr"
	case "*envmap.celEvaluator":
		return "cel"
	case "*envmap.jsEvaluator":
		return "js"
	default:
		return "custom"
	}
}
