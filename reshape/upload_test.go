// ABOUTME: Tests for import-file validation
// ABOUTME: Verifies schema rejection happens before any state is produced
package reshape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/beacon/models"
)

func TestParseUploadValid(t *testing.T) {
	data := []byte(`{
		"company_profile": {"company_name": "Acme", "website": "https://acme.com"},
		"competitors": [{"company_name": "Initech", "domain": "initech.com"}],
		"biased_prompts": {"reviews": [{"prompt": "acme reviews", "category": "reviews"}]},
		"blind_prompts": {"pricing": [{"prompt": "widget prices", "category": "pricing"}]},
		"industry": "Manufacturing"
	}`)

	res, err := ParseUpload(data)
	require.NoError(t, err)
	assert.Equal(t, "Acme", res.CompanyProfile.CompanyName)
	assert.Equal(t, "Manufacturing", res.Industry)
	require.Len(t, res.Competitors, 1)
	assert.Equal(t, "Initech", res.Competitors[0].DisplayName())

	// Biased/blind group names map onto branded/neutral.
	competitors, topics := Ingest(res)
	assert.Len(t, competitors, 1)
	require.Len(t, topics, 2)
	byClass := make(map[models.Classification]string)
	for _, topic := range topics {
		byClass[topic.Classification] = topic.Key
	}
	assert.Equal(t, "reviews", byClass[models.ClassificationBranded])
	assert.Equal(t, "pricing", byClass[models.ClassificationNeutral])
}

func TestParseUploadMissingCompetitors(t *testing.T) {
	data := []byte(`{
		"company_profile": {"company_name": "Acme", "website": "https://acme.com"}
	}`)

	res, err := ParseUpload(data)
	assert.Nil(t, res)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "competitors")
}

func TestParseUploadMalformedJSON(t *testing.T) {
	res, err := ParseUpload([]byte(`{"company_profile": `))
	assert.Nil(t, res)
	assert.Error(t, err)
}

func TestParseUploadMissingProfileFields(t *testing.T) {
	data := []byte(`{
		"company_profile": {"company_name": "Acme"},
		"competitors": []
	}`)

	_, err := ParseUpload(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "website")
}
