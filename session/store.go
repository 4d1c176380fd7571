// ABOUTME: Wizard session persistence over the charm KV slot
// ABOUTME: One reserved key per wizard flavor, with resume-rewind and corrupt-data tolerance
package session

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/harperreed/beacon/charm"
	"github.com/harperreed/beacon/models"
)

// Flavor names one of the two wizard variants. Each flavor owns a distinct
// slot key, so a research draft can never clobber an import draft.
type Flavor string

const (
	FlavorResearch Flavor = "research"
	FlavorImport   Flavor = "import"
)

// slotKey returns the reserved KV key for a flavor.
func (f Flavor) slotKey() []byte {
	return []byte("wizard:session:" + string(f))
}

// ConfirmFunc decides a yes/no question for a destructive action. Injected so
// the store stays testable without a terminal.
type ConfirmFunc func(prompt string) bool

// ConfirmAlways is for callers that have already obtained confirmation.
func ConfirmAlways(string) bool { return true }

// Store persists one wizard session per flavor. Save mirrors every state
// change; Load runs once at startup; Clear is gated on confirmation.
type Store struct {
	client  *charm.Client
	flavor  Flavor
	confirm ConfirmFunc

	// rewrites maps non-resumable steps to the nearest safe step. A session
	// persisted mid-research reloads at input because the in-flight call
	// cannot be re-observed.
	rewrites map[string]string
}

// NewStore creates a session store for one wizard flavor.
func NewStore(client *charm.Client, flavor Flavor, confirm ConfirmFunc) *Store {
	if confirm == nil {
		confirm = ConfirmAlways
	}
	return &Store{
		client:   client,
		flavor:   flavor,
		confirm:  confirm,
		rewrites: make(map[string]string),
	}
}

// RewriteStep registers a non-resumable step: sessions loaded at from are
// presented at to instead, with every other field intact.
func (s *Store) RewriteStep(from, to string) {
	s.rewrites[from] = to
}

// Load restores the persisted session, or returns nil when the slot is empty
// or holds data we can no longer decode. Corruption degrades to "no saved
// session" rather than an error.
func (s *Store) Load() *models.WizardSession {
	data, err := s.client.Get(s.flavor.slotKey())
	if err != nil || len(data) == 0 {
		return nil
	}

	var sess models.WizardSession
	if err := json.Unmarshal(data, &sess); err != nil {
		log.Printf("session: discarding unreadable %s draft: %v", s.flavor, err)
		return nil
	}

	if target, ok := s.rewrites[sess.CurrentStep]; ok {
		sess.CurrentStep = target
	}
	return &sess
}

// Save serializes the session into the flavor's slot. Pristine sessions are
// skipped so a first visit doesn't create a phantom draft.
func (s *Store) Save(sess *models.WizardSession) error {
	if sess == nil || sess.Pristine() {
		return nil
	}

	sess.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := s.client.Set(s.flavor.slotKey(), data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Clear removes the persisted draft after confirmation. Returns false when
// the user declined; the caller resets in-memory state only on true.
func (s *Store) Clear() (bool, error) {
	if !s.confirm(fmt.Sprintf("Discard the saved %s draft? This cannot be undone.", s.flavor)) {
		return false, nil
	}
	if err := s.client.Delete(s.flavor.slotKey()); err != nil {
		return false, fmt.Errorf("failed to clear session: %w", err)
	}
	return true, nil
}
