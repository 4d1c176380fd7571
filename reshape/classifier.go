// ABOUTME: Branded/neutral prompt classifier
// ABOUTME: Substring heuristic isolated behind a named function so its failure modes are testable
package reshape

import (
	"strings"

	"github.com/harperreed/beacon/models"
)

// Classify tags a prompt as branded when the brand name occurs in it,
// case-insensitively. This is a heuristic: a brand name that happens to be a
// common word ("Visible", "On") will misclassify unrelated prompts as
// branded, and prompts referring to the brand by a synonym the generator
// didn't produce come back neutral. Callers that need better precision should
// match against the full synonym list.
func Classify(brandName, prompt string) models.Classification {
	brand := strings.TrimSpace(strings.ToLower(brandName))
	if brand == "" {
		return models.ClassificationNeutral
	}
	if strings.Contains(strings.ToLower(prompt), brand) {
		return models.ClassificationBranded
	}
	return models.ClassificationNeutral
}
