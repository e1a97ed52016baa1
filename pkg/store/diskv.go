package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/focus/pkg/task"
)

const (
	entriesKey       = "entries"
	lastCompletedKey = "last-completed"
)

// Persistence is the storage contract for the daily history: a single
// JSON array of entries plus a scalar last-completed day marker.
// Reads fail soft; only writes report errors.
type Persistence interface {
	Load() []task.DailyEntry
	Save(entries []task.DailyEntry) error
	LastCompleted() (string, bool)
	SetLastCompleted(day string) error
	Clear() error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      filepath.Join(basePath, ".tmp"),
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Load returns the full stored history. A missing key reads as an
// empty history. Malformed data also reads as empty: the corrupt key
// is erased after a warning, trading data loss for availability.
func (p *persistence) Load() []task.DailyEntry {
	val, err := p.d.Read(entriesKey)
	if err != nil {
		return []task.DailyEntry{}
	}
	var entries []task.DailyEntry
	if err := json.Unmarshal(val, &entries); err != nil {
		fmt.Fprintf(os.Stderr, "store: corrupt history, resetting: %s\n", err)
		_ = p.d.Erase(entriesKey)
		return []task.DailyEntry{}
	}
	if entries == nil {
		entries = []task.DailyEntry{}
	}
	return entries
}

// Save overwrites the full history in a single key write. diskv's
// TempDir option makes this a write-then-rename, so readers never see
// a partial write.
func (p *persistence) Save(entries []task.DailyEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return p.d.Write(entriesKey, data)
}

func (p *persistence) LastCompleted() (string, bool) {
	val, err := p.d.Read(lastCompletedKey)
	if err != nil || len(val) == 0 {
		return "", false
	}
	return string(val), true
}

func (p *persistence) SetLastCompleted(day string) error {
	return p.d.Write(lastCompletedKey, []byte(day))
}

// Clear removes both keys. Missing keys are not an error.
func (p *persistence) Clear() error {
	if p.d.Has(entriesKey) {
		if err := p.d.Erase(entriesKey); err != nil {
			return err
		}
	}
	if p.d.Has(lastCompletedKey) {
		if err := p.d.Erase(lastCompletedKey); err != nil {
			return err
		}
	}
	return nil
}
