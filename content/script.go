package content

import (
	"context"
	"fmt"

	"github.com/d5/tengo/v2"
)

// ScriptEnv is the environment dialogue conditions are evaluated against.
type ScriptEnv struct {
	Funding int
	Stage   string
	Story   bool
}

// EvalWhen evaluates a tengo condition expression against the environment.
// The expression sees `funding`, `stage`, and `story`.
func EvalWhen(expr string, env ScriptEnv) (bool, error) {
	out, err := tengo.Eval(context.Background(), expr, map[string]interface{}{
		"funding": env.Funding,
		"stage":   env.Stage,
		"story":   env.Story,
	})
	if err != nil {
		return false, fmt.Errorf("content: eval %q: %w", expr, err)
	}
	switch v := out.(type) {
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	default:
		return false, fmt.Errorf("content: condition %q returned %T, want bool", expr, out)
	}
}
