package normalizer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sahanperera/postgen/internal/corpus"
)

// Error is a per-record normalization failure. During batch runs it is logged
// and the record skipped; it never aborts the batch.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("normalize: %s", e.Reason)
}

// Normalizer cleans raw post text and derives its metadata.
type Normalizer struct {
	vocab Vocabulary
}

// New creates a normalizer with the given tag vocabulary. A nil vocabulary
// falls back to DefaultVocabulary.
func New(vocab Vocabulary) *Normalizer {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Normalizer{vocab: vocab}
}

// Vocabulary returns the vocabulary the normalizer tags against.
func (n *Normalizer) Vocabulary() Vocabulary {
	return n.vocab
}

// Normalize cleans raw text and derives line count, language and tags.
// It fails only when nothing textual survives cleaning.
func (n *Normalizer) Normalize(raw string) (corpus.ProcessedPost, error) {
	cleaned := Clean(raw)
	if cleaned == "" {
		return corpus.ProcessedPost{}, &Error{Reason: "empty text after cleaning"}
	}

	return corpus.ProcessedPost{
		Text:      cleaned,
		LineCount: CountLines(cleaned),
		Language:  DetectLanguage(cleaned),
		Tags:      n.tag(cleaned),
	}, nil
}

// Clean strips non-textual artifacts from raw post text. Printable ASCII and
// Unicode text above U+00A0 (Sinhala included) pass through; control
// characters, stray encoding errors and other junk become spaces. Line breaks
// survive so line counts stay meaningful.
func Clean(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))

	for _, r := range raw {
		switch {
		case r == '\n':
			sb.WriteRune('\n')
		case r == '\r' || r == '\t':
			sb.WriteRune(' ')
		case r >= 0x20 && r <= 0x7E:
			sb.WriteRune(r)
		case r >= 0xA0 && r != utf8.RuneError && !unicode.IsControl(r):
			sb.WriteRune(r)
		default:
			sb.WriteRune(' ')
		}
	}

	lines := strings.Split(sb.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// CountLines counts the non-blank newline-delimited lines of text.
func CountLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// DetectLanguage applies the script-mix heuristic: Sinhala script mixed with
// Latin words is EnglishMixed, any other non-Latin script is Other, pure
// Latin text is English.
func DetectLanguage(text string) corpus.Language {
	var hasLatin, hasSinhala, hasOtherScript bool

	for _, r := range text {
		switch {
		case r >= 0x0D80 && r <= 0x0DFF:
			hasSinhala = true
		case r <= unicode.MaxASCII && unicode.IsLetter(r):
			hasLatin = true
		case unicode.IsLetter(r) && unicode.In(r, unicode.Latin):
			hasLatin = true
		case unicode.IsLetter(r):
			hasOtherScript = true
		}
	}

	switch {
	case hasSinhala && hasLatin:
		return corpus.LanguageEnglishMixed
	case hasSinhala || hasOtherScript:
		return corpus.LanguageOther
	default:
		return corpus.LanguageEnglish
	}
}

// tag matches the cleaned text against the vocabulary. Every post gets at
// least one tag; General is the catch-all.
func (n *Normalizer) tag(text string) []string {
	lower := strings.ToLower(text)

	var tags []string
	for _, topic := range n.vocab {
		for _, kw := range topic.Keywords {
			if containsKeyword(lower, kw) {
				tags = append(tags, topic.Tag)
				break
			}
		}
	}

	if len(tags) == 0 {
		tags = []string{GeneralTag}
	}
	return tags
}

// containsKeyword reports whether text contains kw on word boundaries.
// Both arguments must already be lowercase.
func containsKeyword(text, kw string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], kw)
		if idx == -1 {
			return false
		}
		idx += start

		boundaryBefore := idx == 0 || !isWordByte(text[idx-1])
		end := idx + len(kw)
		boundaryAfter := end == len(text) || !isWordByte(text[end])
		if boundaryBefore && boundaryAfter {
			return true
		}

		start = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
