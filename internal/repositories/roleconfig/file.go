package roleconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/castbot/castbot/internal/models"
)

// ErrConfig is returned when a persisted config document is malformed.
var ErrConfig = errors.New("role config malformed")

const (
	tribesFile   = "tribes.json"
	pronounsFile = "pronouns.json"
)

// pronounsDocument matches the pronouns.json layout.
type pronounsDocument struct {
	PronounRoleIDs []string `json:"pronounRoleIDs"`
}

// Config holds configuration for the file-backed role config repository.
type Config struct {
	// DataDir is the directory holding tribes.json and pronouns.json
	DataDir string

	// SeedPronounRoles initializes pronouns.json when it does not exist
	SeedPronounRoles []string
}

// fileRepository implements the Repository interface on two small JSON
// documents. One mutex covers both files; tribe and pronoun updates are
// rare, human-paced operations.
type fileRepository struct {
	tribesPath   string
	pronounsPath string
	seedPronouns []string
	mu           sync.Mutex
}

// NewFile creates a new file-backed role config repository.
func NewFile(cfg *Config) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DataDir == "" {
		return nil, errors.New("data dir cannot be empty")
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	return &fileRepository{
		tribesPath:   filepath.Join(cfg.DataDir, tribesFile),
		pronounsPath: filepath.Join(cfg.DataDir, pronounsFile),
		seedPronouns: cfg.SeedPronounRoles,
	}, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return os.Rename(tmp, path)
}

// loadTribes reads tribes.json, seeding an all-null config when the file
// does not exist. Callers must hold r.mu.
func (r *fileRepository) loadTribes() (*models.TribeConfig, error) {
	data, err := os.ReadFile(r.tribesPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", r.tribesPath, err)
		}

		tribes := &models.TribeConfig{}
		if err := writeJSON(r.tribesPath, tribes); err != nil {
			return nil, err
		}
		return tribes, nil
	}

	var tribes models.TribeConfig
	if err := json.Unmarshal(data, &tribes); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfig, r.tribesPath, err)
	}

	return &tribes, nil
}

// loadPronouns reads pronouns.json, seeding it from the configured list
// when the file does not exist. Callers must hold r.mu.
func (r *fileRepository) loadPronouns() (*pronounsDocument, error) {
	data, err := os.ReadFile(r.pronounsPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", r.pronounsPath, err)
		}

		doc := &pronounsDocument{PronounRoleIDs: append([]string{}, r.seedPronouns...)}
		if err := writeJSON(r.pronounsPath, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}

	var doc pronounsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfig, r.pronounsPath, err)
	}

	return &doc, nil
}

// LoadTribes reads the persisted tribe config.
func (r *fileRepository) LoadTribes(ctx context.Context) (*models.TribeConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.loadTribes()
}

// SetTribeSlot binds a role to one slot and persists the config.
func (r *fileRepository) SetTribeSlot(ctx context.Context, input *SetTribeSlotInput) error {
	if input == nil || input.RoleID == "" {
		return errors.New("input and role ID cannot be empty")
	}

	if input.Slot < 1 || input.Slot > models.TribeSlotCount {
		return fmt.Errorf("tribe slot must be between 1 and %d, got %d", models.TribeSlotCount, input.Slot)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tribes, err := r.loadTribes()
	if err != nil {
		return err
	}

	tribes.SetSlot(input.Slot, input.RoleID, input.Emoji)

	return writeJSON(r.tribesPath, tribes)
}

// ClearTribeSlot sets one slot's role and emoji to null.
func (r *fileRepository) ClearTribeSlot(ctx context.Context, input *ClearTribeSlotInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.Slot < 1 || input.Slot > models.TribeSlotCount {
		return fmt.Errorf("tribe slot must be between 1 and %d, got %d", models.TribeSlotCount, input.Slot)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tribes, err := r.loadTribes()
	if err != nil {
		return err
	}

	tribes.ClearSlot(input.Slot)

	return writeJSON(r.tribesPath, tribes)
}

// ClearAllTribes deactivates every slot.
func (r *fileRepository) ClearAllTribes(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return writeJSON(r.tribesPath, &models.TribeConfig{})
}

// ListPronounRoles returns the pronoun role IDs in stable list order.
func (r *fileRepository) ListPronounRoles(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.loadPronouns()
	if err != nil {
		return nil, err
	}

	return doc.PronounRoleIDs, nil
}

// AddPronounRoles adds role IDs to the pronoun list. Role IDs already in
// the list are reported, not duplicated.
func (r *fileRepository) AddPronounRoles(ctx context.Context, input *AddPronounRolesInput) (*AddPronounRolesOutput, error) {
	if input == nil || len(input.RoleIDs) == 0 {
		return nil, errors.New("input and role IDs cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.loadPronouns()
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(doc.PronounRoleIDs))
	for _, id := range doc.PronounRoleIDs {
		present[id] = true
	}

	out := &AddPronounRolesOutput{}
	for _, id := range input.RoleIDs {
		if present[id] {
			out.AlreadyPresent = append(out.AlreadyPresent, id)
			continue
		}
		present[id] = true
		doc.PronounRoleIDs = append(doc.PronounRoleIDs, id)
		out.Added = append(out.Added, id)
	}

	if len(out.Added) > 0 {
		if err := writeJSON(r.pronounsPath, doc); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// RemovePronounRoles removes role IDs from the pronoun list. Role IDs not
// in the list are reported, not errors.
func (r *fileRepository) RemovePronounRoles(ctx context.Context, input *RemovePronounRolesInput) (*RemovePronounRolesOutput, error) {
	if input == nil || len(input.RoleIDs) == 0 {
		return nil, errors.New("input and role IDs cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.loadPronouns()
	if err != nil {
		return nil, err
	}

	remove := make(map[string]bool, len(input.RoleIDs))
	for _, id := range input.RoleIDs {
		remove[id] = false
	}

	kept := make([]string, 0, len(doc.PronounRoleIDs))
	for _, id := range doc.PronounRoleIDs {
		if _, ok := remove[id]; ok {
			remove[id] = true
			continue
		}
		kept = append(kept, id)
	}

	out := &RemovePronounRolesOutput{}
	for _, id := range input.RoleIDs {
		if remove[id] {
			out.Removed = append(out.Removed, id)
		} else {
			out.NotFound = append(out.NotFound, id)
		}
	}

	if len(out.Removed) > 0 {
		doc.PronounRoleIDs = kept
		if err := writeJSON(r.pronounsPath, doc); err != nil {
			return nil, err
		}
	}

	return out, nil
}
