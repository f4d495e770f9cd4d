//go:build !js_eval

package envmap

// NewJSEvaluator returns nil in builds without the js_eval tag; the store
// falls back to the default expr engine when handed a nil evaluator.
func NewJSEvaluator(opts ...JSEvaluatorOption) Evaluator {
	_ = applyJSEvaluatorOptions(opts)
	return nil
}

// jsEvaluatorAvailable reports whether the goja engine was compiled in.
func jsEvaluatorAvailable() bool {
	return false
}
