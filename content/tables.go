package content

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tables holds the loaded dialogue and cutscene tables.
type Tables struct {
	Dialogues map[string]*Dialogue
	Cutscenes map[string]*Cutscene
}

// LoadSpec unmarshals a YAML content file into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("content: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("content: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// LoadTables loads and validates both content tables. Validation failures are
// deterministic load errors, not per-use surprises.
func LoadTables() (*Tables, error) {
	dialogues, err := LoadSpec[map[string]*Dialogue]("dialogues.yaml")
	if err != nil {
		return nil, err
	}
	for key, d := range dialogues {
		if d == nil || len(d.Lines) == 0 {
			return nil, fmt.Errorf("content: dialogue %q has no lines", key)
		}
		if d.Name == "" {
			return nil, fmt.Errorf("content: dialogue %q has no speaker name", key)
		}
	}

	cutscenes, err := LoadSpec[map[string]*Cutscene]("cutscenes.yaml")
	if err != nil {
		return nil, err
	}
	for key, c := range cutscenes {
		if c == nil {
			return nil, fmt.Errorf("content: cutscene %q is empty", key)
		}
		if err := c.validate(key); err != nil {
			return nil, err
		}
	}

	return &Tables{Dialogues: dialogues, Cutscenes: cutscenes}, nil
}

// Dialogue looks up a dialogue by id.
func (t *Tables) Dialogue(id string) (*Dialogue, bool) {
	d, ok := t.Dialogues[id]
	return d, ok
}

// Cutscene looks up a cutscene by trigger key.
func (t *Tables) Cutscene(key string) (*Cutscene, bool) {
	c, ok := t.Cutscenes[key]
	return c, ok
}
