package playerstore

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

// ErrStorage is returned when the backing file is unreadable or
// unwritable for reasons other than not existing yet.
var ErrStorage = errors.New("player store unavailable")

// Config holds configuration for the file-backed player store.
type Config struct {
	// Path of the JSON document, e.g. data/playerData.json
	Path string

	// Tribes seeds the config sub-document on first access
	Tribes TribeLoader
}

// fileRepository implements the Repository interface on a single JSON
// document. A process-wide mutex serializes every read-modify-write
// cycle, so concurrent handlers cannot lose each other's merges. There is
// still no cross-process coordination; the last writing process wins.
type fileRepository struct {
	path   string
	tribes TribeLoader
	mu     sync.Mutex
}

// NewFile creates a new file-backed player store repository.
func NewFile(cfg *Config) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	if cfg.Tribes == nil {
		return nil, errors.New("tribe loader cannot be nil")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return &fileRepository{
		path:   cfg.Path,
		tribes: cfg.Tribes,
	}, nil
}

// load reads the document, seeding a fresh one when the file does not
// exist yet. Callers must hold r.mu.
func (r *fileRepository) load(ctx context.Context) (*models.StoreDocument, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}

		tribes, err := r.tribes.LoadTribes(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to seed player store: %w", err)
		}

		doc := models.NewStoreDocument(*tribes)
		if err := r.save(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}

	var doc models.StoreDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: malformed document %s: %v", ErrStorage, r.path, err)
	}

	if doc.Players == nil {
		doc.Players = make(map[string]*models.PlayerRecord)
	}

	return &doc, nil
}

// save writes the document to a temp file and renames it into place, so a
// concurrent reader never observes a partial write. Callers must hold
// r.mu.
func (r *fileRepository) save(doc *models.StoreDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return nil
}

// Load returns the current document, creating and seeding it on first
// access.
func (r *fileRepository) Load(ctx context.Context) (*models.StoreDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

// Save overwrites the backing file with the given document.
func (r *fileRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Document == nil {
		return errors.New("input and document cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save(input.Document)
}

// Mutate applies a function to the document and persists the result under
// the store lock.
func (r *fileRepository) Mutate(ctx context.Context, input *MutateInput) error {
	if input == nil || input.Apply == nil {
		return errors.New("input and apply function cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}

	if err := input.Apply(doc); err != nil {
		return err
	}

	return r.save(doc)
}

// GetPlayer retrieves a player record, returning nil when absent.
func (r *fileRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.PlayerRecord, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	rec, ok := doc.Players[input.PlayerID]
	if !ok {
		return nil, nil
	}

	out := *rec
	return &out, nil
}

// UpdatePlayer shallow-merges a patch onto a player record and persists
// the whole document.
func (r *fileRepository) UpdatePlayer(ctx context.Context, input *UpdatePlayerInput) (*models.PlayerRecord, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	rec, ok := doc.Players[input.PlayerID]
	if !ok {
		rec = &models.PlayerRecord{}
		doc.Players[input.PlayerID] = rec
	}

	rec.Apply(input.Patch)

	if err := r.save(doc); err != nil {
		return nil, err
	}

	out := *rec
	return &out, nil
}

// ClearPlayerEmoji removes the stored emoji fields from a player record.
// Clearing an absent player is a no-op.
func (r *fileRepository) ClearPlayerEmoji(ctx context.Context, input *ClearPlayerEmojiInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}

	rec, ok := doc.Players[input.PlayerID]
	if !ok {
		return nil
	}

	rec.ClearEmoji()

	return r.save(doc)
}
