// ABOUTME: Data models for brand onboarding
// ABOUTME: Defines WizardDraft, TopicEntry, EnrichmentState, and submission payload structs
package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Classification tags a search query as containing the brand name or not.
type Classification string

const (
	ClassificationBranded Classification = "branded"
	ClassificationNeutral Classification = "neutral"
)

// Collector identifiers for the AI assistants the backend can poll.
const (
	CollectorChatGPT    = "chatgpt"
	CollectorClaude     = "claude"
	CollectorGemini     = "gemini"
	CollectorPerplexity = "perplexity"
)

// DefaultCollectors returns the collector set a fresh draft starts with.
func DefaultCollectors() []string {
	return []string{CollectorChatGPT, CollectorClaude, CollectorGemini, CollectorPerplexity}
}

// CompetitorEntry is one competitor row in the draft. Name and CompanyName
// carry the same value: the research and import flows historically read
// different keys, so both are kept on the wire.
type CompetitorEntry struct {
	Name        string            `json:"name"`
	CompanyName string            `json:"company_name"`
	Domain      string            `json:"domain,omitempty"`
	RawMetadata map[string]string `json:"raw_metadata,omitempty"`
}

// NewCompetitorEntry builds a dual-keyed competitor record.
func NewCompetitorEntry(name, domain string) CompetitorEntry {
	return CompetitorEntry{
		Name:        name,
		CompanyName: name,
		Domain:      domain,
	}
}

// DisplayName resolves the competitor's name regardless of which key was set.
func (c CompetitorEntry) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.CompanyName
}

// TopicEntry is a named group of queries. Key preserves the original category
// slug so that two categories whose names title-case identically stay distinct.
type TopicEntry struct {
	ID             uuid.UUID      `json:"id"`
	Key            string         `json:"key"`
	Name           string         `json:"name"`
	Classification Classification `json:"classification"`
	Queries        []string       `json:"queries"`
	Weight         int            `json:"weight,omitempty"`
}

// WizardDraft is the accumulating, user-editable onboarding state.
type WizardDraft struct {
	BrandName   string            `json:"brand_name"`
	WebsiteURL  string            `json:"website_url"`
	Country     string            `json:"country,omitempty"`
	Industry    string            `json:"industry,omitempty"`
	Description string            `json:"description,omitempty"`
	Competitors []CompetitorEntry `json:"competitors"`
	Topics      []TopicEntry      `json:"topics"`
}

// RemoveCompetitor removes the competitor matching name, preserving the
// relative order of the rest. Returns true if an entry was removed.
func (d *WizardDraft) RemoveCompetitor(name string) bool {
	for i, c := range d.Competitors {
		if c.DisplayName() == name {
			d.Competitors = append(d.Competitors[:i], d.Competitors[i+1:]...)
			return true
		}
	}
	return false
}

// FindTopic returns the topic with the given id, or nil.
func (d *WizardDraft) FindTopic(id uuid.UUID) *TopicEntry {
	for i := range d.Topics {
		if d.Topics[i].ID == id {
			return &d.Topics[i]
		}
	}
	return nil
}

// QueryCount counts queries across all topics. Topics with zero queries are
// valid but contribute nothing.
func (d *WizardDraft) QueryCount() int {
	n := 0
	for _, t := range d.Topics {
		n += len(t.Queries)
	}
	return n
}

// EnrichmentState layers synonym and product data onto the brand and its
// competitors, keyed by display name. Entries for removed competitors stay
// behind and are ignored at submission.
type EnrichmentState struct {
	BrandSynonyms      []string            `json:"brand_synonyms"`
	BrandProducts      []string            `json:"brand_products"`
	CompetitorSynonyms map[string][]string `json:"competitor_synonyms"`
	CompetitorProducts map[string][]string `json:"competitor_products"`
}

// NewEnrichmentState returns an empty enrichment with initialized maps.
func NewEnrichmentState() EnrichmentState {
	return EnrichmentState{
		CompetitorSynonyms: make(map[string][]string),
		CompetitorProducts: make(map[string][]string),
	}
}

// WizardSession is the unit of persistence: the whole wizard state serialized
// on every change and restored once at startup.
type WizardSession struct {
	CurrentStep string          `json:"current_step"`
	Draft       WizardDraft     `json:"draft"`
	Enrichment  EnrichmentState `json:"enrichment"`
	Collectors  []string        `json:"collectors"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Pristine reports whether the session carries no user input yet. A pristine
// session is never persisted, so a first visit leaves no phantom draft.
func (s *WizardSession) Pristine() bool {
	return strings.TrimSpace(s.Draft.BrandName) == "" &&
		strings.TrimSpace(s.Draft.WebsiteURL) == "" &&
		len(s.Draft.Competitors) == 0 &&
		len(s.Draft.Topics) == 0
}

// PromptEntry is one prompt inside a research category group.
type PromptEntry struct {
	Prompt   string `json:"prompt"`
	Category string `json:"category,omitempty"`
}

// ResearchCompetitor is the competitor shape returned by the research service.
// Either key may be populated depending on the backend version.
type ResearchCompetitor struct {
	Name        string `json:"name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	Domain      string `json:"domain,omitempty"`
}

// DisplayName resolves whichever key the backend populated.
func (c ResearchCompetitor) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.CompanyName
}

// CompanyProfile identifies the brand being onboarded.
type CompanyProfile struct {
	CompanyName string `json:"company_name"`
	Website     string `json:"website"`
}

// PromptCategory is one category slot in a research group. The backend puts
// prompt arrays and scalar aggregates (running totals) under sibling keys, so
// a category may hold no entries at all.
type PromptCategory struct {
	Entries []PromptEntry
	IsArray bool
}

// UnmarshalJSON tolerates non-array values: they decode to an empty,
// non-array category that ingest skips.
func (p *PromptCategory) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if !strings.HasPrefix(trimmed, "[") {
		p.IsArray = false
		p.Entries = nil
		return nil
	}
	p.IsArray = true
	return json.Unmarshal(data, &p.Entries)
}

// MarshalJSON writes the entries back as a plain array.
func (p PromptCategory) MarshalJSON() ([]byte, error) {
	if p.Entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.Entries)
}

// ResearchResult is the nested shape produced by the research service or a
// validated import file.
type ResearchResult struct {
	CompanyProfile CompanyProfile            `json:"company_profile"`
	Competitors    []ResearchCompetitor      `json:"competitors"`
	BrandedPrompts map[string]PromptCategory `json:"branded_prompts,omitempty"`
	NeutralPrompts map[string]PromptCategory `json:"neutral_prompts,omitempty"`
	Industry       string                    `json:"industry,omitempty"`
	Description    string                    `json:"description,omitempty"`
}

// SubmissionPayload is the nested external-facing shape sent to the brand
// creation endpoint. Built one-way from a draft; never read back.
type SubmissionPayload struct {
	BrandName      string              `json:"brand_name"`
	WebsiteURL     string              `json:"website_url"`
	Country        string              `json:"country,omitempty"`
	Industry       string              `json:"industry,omitempty"`
	Description    string              `json:"description,omitempty"`
	Synonyms       []string            `json:"synonyms"`
	Products       []string            `json:"products"`
	Competitors    []CompetitorPayload `json:"competitors"`
	Topics         []TopicWeight       `json:"topics"`
	BrandedQueries []QueryItem         `json:"branded_queries"`
	NeutralQueries []QueryItem         `json:"neutral_queries"`
	Collectors     []string            `json:"collectors"`
	Metadata       SubmissionMetadata  `json:"metadata"`
}

// CompetitorPayload is a competitor with its resolved enrichment.
type CompetitorPayload struct {
	Name     string   `json:"name"`
	Domain   string   `json:"domain,omitempty"`
	Synonyms []string `json:"synonyms"`
	Products []string `json:"products"`
}

// TopicWeight is one entry in the flat topic-weight list.
type TopicWeight struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// QueryItem pairs a prompt with its topic name.
type QueryItem struct {
	Prompt string `json:"prompt"`
	Topic  string `json:"topic"`
}

// SubmissionMetadata duplicates the full prompt/topic pairing for downstream
// manual processing and tells the backend not to auto-trigger collection.
type SubmissionMetadata struct {
	QueryTopicPairs []QueryItem `json:"query_topic_pairs"`
	AutoCollect     bool        `json:"auto_collect"`
	Source          string      `json:"source"`
}

// Brand is the backend's brand record, as returned by the CRUD endpoints.
type Brand struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	WebsiteURL string    `json:"website_url,omitempty"`
	Industry   string    `json:"industry,omitempty"`
	Collectors []string  `json:"collectors,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Artifact status constants for data-collection jobs.
const (
	ArtifactStatusPending   = "pending"
	ArtifactStatusRunning   = "running"
	ArtifactStatusCompleted = "completed"
	ArtifactStatusFailed    = "failed"
)

// ArtifactStatus describes one data-collection job attached to a brand.
type ArtifactStatus struct {
	ArtifactID string     `json:"artifact_id"`
	BrandID    string     `json:"brand_id"`
	Status     string     `json:"status"`
	Message    string     `json:"message,omitempty"`
	QueryCount int        `json:"query_count,omitempty"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}
