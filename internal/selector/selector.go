package selector

import (
	"fmt"

	"github.com/sahanperera/postgen/internal/corpus"
)

// LengthBucket is a closed, ordered range classification over line counts.
type LengthBucket string

const (
	BucketShort  LengthBucket = "Short"
	BucketMedium LengthBucket = "Medium"
	BucketLong   LengthBucket = "Long"
)

// ParseBucket converts user input into a length bucket.
func ParseBucket(s string) (LengthBucket, error) {
	switch LengthBucket(s) {
	case BucketShort, BucketMedium, BucketLong:
		return LengthBucket(s), nil
	}
	return "", fmt.Errorf("unknown length %q (want Short, Medium or Long)", s)
}

// Range returns the inclusive line-count range of the bucket.
func (b LengthBucket) Range() (min, max int) {
	switch b {
	case BucketShort:
		return 1, 5
	case BucketMedium:
		return 6, 10
	default:
		return 11, 15
	}
}

// RangeText renders the bucket as the explicit range wording used in prompts.
func (b LengthBucket) RangeText() string {
	min, max := b.Range()
	return fmt.Sprintf("%d to %d lines", min, max)
}

// BucketOf classifies a line count. Counts beyond the Long ceiling still
// classify as Long; the corpus is curated short, so outliers stay in the
// nearest bucket rather than falling out of the enum.
func BucketOf(lineCount int) LengthBucket {
	switch {
	case lineCount <= 5:
		return BucketShort
	case lineCount <= 10:
		return BucketMedium
	default:
		return BucketLong
	}
}

// SelectExamples picks up to maxCount few-shot examples for a topic and
// length bucket. Filtering relaxes in stages so a non-empty corpus always
// yields at least one example: exact topic-and-bucket match first, then topic
// only, then the corpus prefix as a global fallback. Selection is pure and
// keeps corpus storage order, so the same corpus and request always give the
// same examples.
func SelectExamples(posts []corpus.ProcessedPost, topic string, bucket LengthBucket, maxCount int) []corpus.ProcessedPost {
	if maxCount <= 0 || len(posts) == 0 {
		return nil
	}

	matched := filter(posts, func(p *corpus.ProcessedPost) bool {
		return p.HasTag(topic) && BucketOf(p.LineCount) == bucket
	})

	if len(matched) == 0 {
		matched = filter(posts, func(p *corpus.ProcessedPost) bool {
			return p.HasTag(topic)
		})
	}

	if len(matched) == 0 {
		matched = posts
	}

	if len(matched) > maxCount {
		matched = matched[:maxCount]
	}

	out := make([]corpus.ProcessedPost, len(matched))
	copy(out, matched)
	return out
}

func filter(posts []corpus.ProcessedPost, keep func(*corpus.ProcessedPost) bool) []corpus.ProcessedPost {
	var out []corpus.ProcessedPost
	for i := range posts {
		if keep(&posts[i]) {
			out = append(out, posts[i])
		}
	}
	return out
}
