// Package content holds the static dialogue and cutscene tables, authored as
// YAML specs and keyed by string id.
package content

import "log"

// Dialogue is a sequence of lines for one speaker with a cursor. Instances
// live in the table for the whole session; the cursor is reset every time the
// dialogue is selected for display.
type Dialogue struct {
	Name  string   `yaml:"name"`
	Lines []string `yaml:"lines"`

	// StoryLines is an optional alternate line set; When is an optional tengo
	// expression (over funding, stage, story) selecting it.
	StoryLines []string `yaml:"story_lines,omitempty"`
	When       string   `yaml:"when,omitempty"`

	// Money is granted once on completion; the guard is cleared by Reset.
	Money int `yaml:"money,omitempty"`
	// Stage is a quest-stage tag applied on completion.
	Stage string `yaml:"stage,omitempty"`
	// Ending marks the dialogue that leads into the ending sequence.
	Ending bool `yaml:"ending,omitempty"`

	active     []string
	cursor     int
	moneyGiven bool
}

// Start resets the cursor and resolves which line set is active for this
// playthrough of the dialogue.
func (d *Dialogue) Start(env ScriptEnv) {
	d.cursor = 0
	d.active = d.Lines
	if len(d.StoryLines) == 0 {
		return
	}
	use := env.Story
	if d.When != "" {
		ok, err := EvalWhen(d.When, env)
		if err != nil {
			log.Printf("content: dialogue %q condition: %v", d.Name, err)
		} else {
			use = ok
		}
	}
	if use {
		d.active = d.StoryLines
	}
}

func (d *Dialogue) lines() []string {
	if d.active != nil {
		return d.active
	}
	return d.Lines
}

// CurrentLine returns the line at the cursor, or false when the dialogue is
// finished.
func (d *Dialogue) CurrentLine() (string, bool) {
	lines := d.lines()
	if d.cursor < 0 || d.cursor >= len(lines) {
		return "", false
	}
	return lines[d.cursor], true
}

// Advance moves to the next line and returns it, or false once the dialogue
// is exhausted. Further calls after exhaustion are no-ops.
func (d *Dialogue) Advance() (string, bool) {
	lines := d.lines()
	if d.cursor >= len(lines) {
		return "", false
	}
	d.cursor++
	if d.cursor >= len(lines) {
		return "", false
	}
	return lines[d.cursor], true
}

func (d *Dialogue) Finished() bool {
	return d.cursor >= len(d.lines())
}

// TakeMoney returns the dialogue's grant the first time it is called after a
// reset, and 0 afterwards.
func (d *Dialogue) TakeMoney() int {
	if d.moneyGiven || d.Money == 0 {
		return 0
	}
	d.moneyGiven = true
	return d.Money
}

// Reset zeroes the cursor and clears the one-shot grant guard, so a replayed
// dialogue can grant again.
func (d *Dialogue) Reset() {
	d.cursor = 0
	d.moneyGiven = false
}
