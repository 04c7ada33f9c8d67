package prompt

import (
	"fmt"

	"github.com/sahanperera/postgen/internal/corpus"
	"github.com/sahanperera/postgen/internal/selector"
)

// OutputLanguage is the language/style the caller wants the generated post in.
type OutputLanguage string

const (
	OutputEnglish           OutputLanguage = "English"
	OutputSinhalaEnglishMix OutputLanguage = "SinhalaEnglishMix"
)

// ParseOutputLanguage converts user input into an output language.
func ParseOutputLanguage(s string) (OutputLanguage, error) {
	switch OutputLanguage(s) {
	case OutputEnglish, OutputSinhalaEnglishMix:
		return OutputLanguage(s), nil
	}
	return "", fmt.Errorf("unknown language %q (want English or SinhalaEnglishMix)", s)
}

// Request is a validated generation request. Construct it with NewRequest so
// invalid topic, length and language values are rejected at the boundary.
type Request struct {
	Topic    string
	Bucket   selector.LengthBucket
	Language OutputLanguage
}

// NewRequest validates the user-facing parameters against the enumerated
// topic list and the known buckets and languages.
func NewRequest(topic, length, language string, topics []string) (Request, error) {
	if topic == "" {
		return Request{}, fmt.Errorf("topic is required")
	}

	known := false
	for _, t := range topics {
		if t == topic {
			known = true
			break
		}
	}
	if !known {
		return Request{}, fmt.Errorf("unknown topic %q", topic)
	}

	bucket, err := selector.ParseBucket(length)
	if err != nil {
		return Request{}, err
	}

	lang, err := ParseOutputLanguage(language)
	if err != nil {
		return Request{}, err
	}

	return Request{Topic: topic, Bucket: bucket, Language: lang}, nil
}

// Context carries everything the builder needs for one prompt.
type Context struct {
	Request  Request
	Examples []corpus.ProcessedPost
}
