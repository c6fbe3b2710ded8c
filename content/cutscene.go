package content

import "fmt"

// Cutscene is an ordered list of slides: an image reference (empty string for
// a text-only slide on black) paired with a sentence. Immutable after load.
type Cutscene struct {
	Images    []string `yaml:"images"`
	Sentences []string `yaml:"sentences"`
	// Music optionally names a track played for the whole cutscene.
	Music string `yaml:"music,omitempty"`
}

func (c *Cutscene) validate(key string) error {
	if len(c.Images) != len(c.Sentences) {
		return fmt.Errorf("content: cutscene %q has %d images but %d sentences", key, len(c.Images), len(c.Sentences))
	}
	if len(c.Sentences) == 0 {
		return fmt.Errorf("content: cutscene %q has no slides", key)
	}
	return nil
}

// Slides returns the slide count.
func (c *Cutscene) Slides() int {
	return len(c.Sentences)
}

// Slide returns the image reference and sentence for slide i.
func (c *Cutscene) Slide(i int) (string, string) {
	return c.Images[i], c.Sentences[i]
}
