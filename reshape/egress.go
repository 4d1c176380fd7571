// ABOUTME: Submission payload assembly
// ABOUTME: Folds the draft, enrichment, and collector selection into the backend's nested shape
package reshape

import "github.com/harperreed/beacon/models"

// BuildSubmission assembles the create-brand payload from the accumulated
// wizard state. Total over any syntactically valid draft: missing pieces
// become empty collections, never a panic or an omitted field.
func BuildSubmission(draft models.WizardDraft, enrichment models.EnrichmentState, collectors []string) models.SubmissionPayload {
	payload := models.SubmissionPayload{
		BrandName:      draft.BrandName,
		WebsiteURL:     draft.WebsiteURL,
		Country:        draft.Country,
		Industry:       draft.Industry,
		Description:    draft.Description,
		Synonyms:       emptyNotNil(enrichment.BrandSynonyms),
		Products:       emptyNotNil(enrichment.BrandProducts),
		Competitors:    []models.CompetitorPayload{},
		Topics:         []models.TopicWeight{},
		BrandedQueries: []models.QueryItem{},
		NeutralQueries: []models.QueryItem{},
		Collectors:     emptyNotNil(collectors),
	}

	for _, c := range draft.Competitors {
		name := c.DisplayName()
		payload.Competitors = append(payload.Competitors, models.CompetitorPayload{
			Name:     name,
			Domain:   c.Domain,
			Synonyms: emptyNotNil(enrichment.CompetitorSynonyms[name]),
			Products: emptyNotNil(enrichment.CompetitorProducts[name]),
		})
	}

	// One query item per (topic, query) pair, partitioned by classification.
	// Orphaned enrichment keys for removed competitors are simply never read.
	seenTopics := make(map[string]bool)
	for _, topic := range draft.Topics {
		for _, q := range topic.Queries {
			item := models.QueryItem{Prompt: q, Topic: topic.Name}
			if topic.Classification == models.ClassificationBranded {
				payload.BrandedQueries = append(payload.BrandedQueries, item)
			} else {
				payload.NeutralQueries = append(payload.NeutralQueries, item)
			}
			payload.Metadata.QueryTopicPairs = append(payload.Metadata.QueryTopicPairs, item)
		}

		if seenTopics[topic.Name] {
			continue
		}
		seenTopics[topic.Name] = true
		weight := topic.Weight
		if weight < 1 {
			weight = 1
		}
		payload.Topics = append(payload.Topics, models.TopicWeight{Name: topic.Name, Weight: weight})
	}

	if payload.Metadata.QueryTopicPairs == nil {
		payload.Metadata.QueryTopicPairs = []models.QueryItem{}
	}
	// Collection is triggered manually after review, never by the create call.
	payload.Metadata.AutoCollect = false
	payload.Metadata.Source = "beacon-cli"

	return payload
}

func emptyNotNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
