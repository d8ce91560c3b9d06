package ocr

import (
	"context"
	"fmt"
	"strings"
)

// SectionMarker separates the output of successive recognition passes in
// the combined text. The extraction pipeline treats marker lines as noise.
const SectionMarker = "----"

// Pass names one recognition run over the image.
type Pass struct {
	Name      string
	Languages []string
}

// DefaultPasses is the two-pass strategy for mixed-script workbook pages:
// a Latin-only pass picks up headwords the mixed model tends to garble,
// then a mixed pass captures the Japanese glosses.
func DefaultPasses() []Pass {
	return []Pass{
		{Name: "latin", Languages: []string{"eng"}},
		{Name: "mixed", Languages: []string{"jpn", "eng"}},
	}
}

// MultiPass recognizes an image once per pass and joins the outputs with
// SectionMarker lines. Engines come from the factory per pass so that each
// pass can carry its own language set.
func MultiPass(ctx context.Context, factory func(languages []string) Engine, imagePath string, passes []Pass, onProgress Progress) (string, error) {
	if len(passes) == 0 {
		passes = DefaultPasses()
	}

	sections := make([]string, 0, len(passes))
	for i, pass := range passes {
		base := i * 100 / len(passes)
		report(onProgress, "pass "+pass.Name, base)

		text, err := factory(pass.Languages).Recognize(ctx, imagePath, nil)
		if err != nil {
			return "", fmt.Errorf("pass %s: %w", pass.Name, err)
		}
		sections = append(sections, strings.TrimRight(text, "\n"))
	}
	report(onProgress, "done", 100)

	return strings.Join(sections, "\n"+SectionMarker+"\n"), nil
}
