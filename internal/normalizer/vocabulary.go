package normalizer

// GeneralTag is assigned when no vocabulary keyword matches.
const GeneralTag = "General"

// Topic maps a tag name to the keywords that imply it.
type Topic struct {
	Tag      string
	Keywords []string
}

// Vocabulary is the controlled tag vocabulary, in priority order. Tags on a
// processed post always follow this order, so preprocessing output is stable.
type Vocabulary []Topic

// DefaultVocabulary covers the topics of the curated corpus. Treat this as
// configuration: callers may pass their own vocabulary to New.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		{Tag: "Job Search", Keywords: []string{"job", "vacancy", "interview", "cv", "resume", "hiring", "recruit", "opportunity"}},
		{Tag: "Mental Health", Keywords: []string{"mental health", "stress", "anxiety", "burnout", "wellbeing", "well-being", "therapy"}},
		{Tag: "Career Advice", Keywords: []string{"career", "promotion", "skill", "mentor", "advice", "growth"}},
		{Tag: "Motivation", Keywords: []string{"motivation", "inspire", "stay strong", "never give up", "keep going", "believe"}},
		{Tag: "Self Improvement", Keywords: []string{"self improvement", "learn", "habit", "discipline", "improve yourself"}},
		{Tag: "Scams", Keywords: []string{"scam", "fraud", "fake offer", "phishing"}},
		{Tag: "Networking", Keywords: []string{"network", "connection", "linkedin", "community"}},
	}
}

// Tags returns the tag names of the vocabulary plus the catch-all, in order.
func (v Vocabulary) Tags() []string {
	tags := make([]string, 0, len(v)+1)
	for _, t := range v {
		tags = append(tags, t.Tag)
	}
	return append(tags, GeneralTag)
}

// Contains reports whether tag is in the vocabulary or is the catch-all.
func (v Vocabulary) Contains(tag string) bool {
	if tag == GeneralTag {
		return true
	}
	for _, t := range v {
		if t.Tag == tag {
			return true
		}
	}
	return false
}
