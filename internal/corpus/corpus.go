package corpus

import "fmt"

// Language classifies the script mix of a post's text.
type Language string

const (
	LanguageEnglish      Language = "English"
	LanguageEnglishMixed Language = "EnglishMixed"
	LanguageOther        Language = "Other"
)

// Valid reports whether the language is one of the known values.
func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageEnglishMixed, LanguageOther:
		return true
	}
	return false
}

// RawPost is a manually curated post before preprocessing.
type RawPost struct {
	Text string `json:"text"`
}

// ProcessedPost is a post enriched by the normalizer. It is created once by
// the batch preprocessing pass and never mutated afterwards.
type ProcessedPost struct {
	Text      string   `json:"text"`
	LineCount int      `json:"line_count"`
	Language  Language `json:"language"`
	Tags      []string `json:"tags"`
}

// Validate checks the invariants a processed post must hold on load.
func (p *ProcessedPost) Validate() error {
	if p.Text == "" {
		return fmt.Errorf("empty text")
	}
	if p.LineCount < 1 {
		return fmt.Errorf("line_count %d is not positive", p.LineCount)
	}
	if !p.Language.Valid() {
		return fmt.Errorf("unknown language %q", p.Language)
	}
	if len(p.Tags) == 0 {
		return fmt.Errorf("tags is empty")
	}
	for _, tag := range p.Tags {
		if tag == "" {
			return fmt.Errorf("blank tag")
		}
	}
	return nil
}

// HasTag reports whether the post carries the given tag.
func (p *ProcessedPost) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
