package content

import "testing"

func TestCutsceneValidate(t *testing.T) {
	cases := []struct {
		name    string
		cs      Cutscene
		wantErr bool
	}{
		{"equal_lengths", Cutscene{Images: []string{"a.png", ""}, Sentences: []string{"one", "two"}}, false},
		{"mismatched", Cutscene{Images: []string{"a.png"}, Sentences: []string{"one", "two"}}, true},
		{"empty", Cutscene{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.cs.validate(c.name)
			if (err != nil) != c.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestCutsceneSlides(t *testing.T) {
	cs := Cutscene{Images: []string{"a.png", ""}, Sentences: []string{"one", "two"}}
	if cs.Slides() != 2 {
		t.Fatalf("Slides = %d, want 2", cs.Slides())
	}
	img, sentence := cs.Slide(1)
	if img != "" || sentence != "two" {
		t.Fatalf("Slide(1) = %q, %q; want \"\", \"two\"", img, sentence)
	}
}

func TestLoadTables(t *testing.T) {
	tables, err := LoadTables()
	if err != nil {
		t.Fatalf("LoadTables: %v", err)
	}

	d, ok := tables.Dialogue("mayor_greeting")
	if !ok {
		t.Fatalf("mayor_greeting missing from dialogue table")
	}
	if d.Money != 100 {
		t.Fatalf("mayor_greeting money = %d, want 100", d.Money)
	}

	if _, ok := tables.Dialogue("piermaster_ending"); !ok {
		t.Fatalf("piermaster_ending missing from dialogue table")
	}

	cs, ok := tables.Cutscene("intro_story")
	if !ok {
		t.Fatalf("intro_story missing from cutscene table")
	}
	if cs.Slides() != 4 {
		t.Fatalf("intro_story slides = %d, want 4", cs.Slides())
	}
	if img, _ := cs.Slide(3); img != "" {
		t.Fatalf("intro_story slide 3 image = %q, want text-only slide", img)
	}
	if cs.Music == "" {
		t.Fatalf("intro_story should carry a music track")
	}

	for key, c := range tables.Cutscenes {
		if len(c.Images) != len(c.Sentences) {
			t.Fatalf("cutscene %q has %d images but %d sentences", key, len(c.Images), len(c.Sentences))
		}
	}
}
