// Package export writes and reads whole-journal snapshot documents.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/rustyeddy/egolog/journal"
)

// Snapshot is a verbatim copy of every collection at ExportedAt.
type Snapshot struct {
	EgoEntries   []journal.EgoEntry   `json:"egoEntries"`
	TradeEntries []journal.TradeEntry `json:"tradeEntries"`
	DrillEntries []journal.DrillEntry `json:"drillEntries"`
	Settings     journal.Settings     `json:"settings"`
	ExportedAt   time.Time            `json:"exportedAt"`
}

// Source is satisfied by *journal.Store.
type Source interface {
	Ego() []journal.EgoEntry
	Trades() []journal.TradeEntry
	Drills() []journal.DrillEntry
	Settings() journal.Settings
}

// Target is satisfied by *journal.Store.
type Target interface {
	Restore(ego []journal.EgoEntry, trades []journal.TradeEntry, drills []journal.DrillEntry, settings journal.Settings)
}

const xzExt = ".xz"

// Take copies the current contents of src.
func Take(src Source, now time.Time) Snapshot {
	return Snapshot{
		EgoEntries:   src.Ego(),
		TradeEntries: src.Trades(),
		DrillEntries: src.Drills(),
		Settings:     src.Settings(),
		ExportedAt:   now.UTC(),
	}
}

// Apply replaces everything in dst with the snapshot's contents.
func Apply(dst Target, snap Snapshot) {
	dst.Restore(snap.EgoEntries, snap.TradeEntries, snap.DrillEntries, snap.Settings)
}

// FileName names an export by the local date of now.
func FileName(now time.Time, compress bool) string {
	name := "egolog-" + now.Format("2006-01-02") + ".json"
	if compress {
		name += xzExt
	}
	return name
}

// Write encodes snap as indented JSON.
func Write(w io.Writer, snap Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// Read decodes a snapshot written by Write.
func Read(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// WriteFile writes snap to path, xz-compressed when path ends in ".xz".
func WriteFile(path string, snap Snapshot) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if !compressed(path) {
		return Write(f, snap)
	}

	zw, err := xz.NewWriter(f)
	if err != nil {
		return fmt.Errorf("xz writer: %w", err)
	}
	if err := Write(zw, snap); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ReadFile reads a snapshot written by WriteFile.
func ReadFile(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	if !compressed(path) {
		return Read(f)
	}

	zr, err := xz.NewReader(f)
	if err != nil {
		return Snapshot{}, fmt.Errorf("xz reader: %w", err)
	}
	return Read(zr)
}

func compressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), xzExt)
}
