// ABOUTME: Research result ingestion
// ABOUTME: Flattens nested category-keyed prompt groups into editable topic entries
package reshape

import (
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/harperreed/beacon/models"
)

// Category keys that hold aggregates rather than prompt arrays.
var reservedCategoryKeys = map[string]bool{
	"total":         true,
	"total_prompts": true,
}

// Ingest flattens a research result into the draft's editable shape: one
// TopicEntry per (classification, category) pair plus normalized, dual-keyed
// competitor entries. Pure over its input; diagnostics for dropped prompts go
// to the log and never fail the transform.
func Ingest(res *models.ResearchResult) ([]models.CompetitorEntry, []models.TopicEntry) {
	if res == nil {
		return nil, nil
	}

	competitors := make([]models.CompetitorEntry, 0, len(res.Competitors))
	for _, c := range res.Competitors {
		name := c.DisplayName()
		if name == "" {
			continue
		}
		competitors = append(competitors, models.NewCompetitorEntry(name, c.Domain))
	}

	var topics []models.TopicEntry
	topics = append(topics, flattenGroup(res.BrandedPrompts, models.ClassificationBranded)...)
	topics = append(topics, flattenGroup(res.NeutralPrompts, models.ClassificationNeutral)...)

	return competitors, topics
}

// flattenGroup turns one category-keyed prompt group into topic entries,
// sorted by key for a stable presentation order.
func flattenGroup(group map[string]models.PromptCategory, class models.Classification) []models.TopicEntry {
	if len(group) == 0 {
		return nil
	}

	keys := make([]string, 0, len(group))
	for key := range group {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var topics []models.TopicEntry
	for _, key := range keys {
		if reservedCategoryKeys[key] {
			continue
		}
		cat := group[key]
		if !cat.IsArray {
			// Scalar aggregate living next to the prompt arrays.
			continue
		}

		topic := models.TopicEntry{
			ID:             uuid.New(),
			Key:            key,
			Name:           TitleizeKey(key),
			Classification: class,
			Weight:         0,
		}
		for _, entry := range cat.Entries {
			if strings.TrimSpace(entry.Prompt) == "" {
				log.Printf("ingest: dropping empty prompt in category %q", key)
				continue
			}
			topic.Queries = append(topic.Queries, entry.Prompt)
			topic.Weight++
		}
		topics = append(topics, topic)
	}
	return topics
}

// TitleizeKey converts a category slug into a display name: separators become
// spaces and each word is title-cased. Display collisions between distinct
// slugs are cosmetic; identity stays with the slug.
func TitleizeKey(key string) string {
	key = strings.ReplaceAll(key, "_", " ")
	key = strings.ReplaceAll(key, "-", " ")
	words := strings.Fields(key)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		if len(r) > 0 {
			r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
