package prompt

import (
	"fmt"
	"strings"
)

const exampleFence = `"""`

// Build composes the generation instruction for one request. The output is a
// pure function of the context: identical requests against the same corpus
// snapshot produce byte-identical prompts.
func Build(ctx Context) string {
	var sb strings.Builder

	sb.WriteString(Preamble)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "1) Topic: %s\n", ctx.Request.Topic)
	fmt.Fprintf(&sb, "2) Length: %s\n", ctx.Request.Bucket.RangeText())
	fmt.Fprintf(&sb, "3) Language: %s\n", languageDirective(ctx.Request.Language))

	if len(ctx.Examples) > 0 {
		sb.WriteString(ExamplesHeader)
		sb.WriteString("\n")
		for i := range ctx.Examples {
			fmt.Fprintf(&sb, "\nExample %d:\n%s\n%s\n%s\n",
				i+1, exampleFence, neutralize(ctx.Examples[i].Text), exampleFence)
		}
	}

	return sb.String()
}

func languageDirective(lang OutputLanguage) string {
	if lang == OutputSinhalaEnglishMix {
		return SinhalaMixDirective
	}
	return EnglishDirective
}

// neutralize keeps example text from closing its own fence. Triple quotes
// inside a post would end the block early and let the remainder read as
// instructions.
func neutralize(text string) string {
	return strings.ReplaceAll(text, exampleFence, `'''`)
}
