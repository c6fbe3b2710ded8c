package content

import "testing"

func TestEvalWhen(t *testing.T) {
	cases := []struct {
		name    string
		expr    string
		env     ScriptEnv
		want    bool
		wantErr bool
	}{
		{"funding_true", "funding >= 300", ScriptEnv{Funding: 300}, true, false},
		{"funding_false", "funding >= 300", ScriptEnv{Funding: 299}, false, false},
		{"stage_match", `stage == "met_mayor"`, ScriptEnv{Stage: "met_mayor"}, true, false},
		{"story_flag", "story", ScriptEnv{Story: true}, true, false},
		{"combined", `story && funding > 0`, ScriptEnv{Story: true, Funding: 1}, true, false},
		{"bad_expr", "funding >=", ScriptEnv{}, false, true},
		{"non_bool", `"hello"`, ScriptEnv{}, false, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := EvalWhen(c.expr, c.env)
			if (err != nil) != c.wantErr {
				t.Fatalf("EvalWhen(%q) error = %v, wantErr %v", c.expr, err, c.wantErr)
			}
			if got != c.want {
				t.Fatalf("EvalWhen(%q) = %v, want %v", c.expr, got, c.want)
			}
		})
	}
}
