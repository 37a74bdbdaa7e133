package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/openkraft/htmlcheck/internal/domain"
)

// File is where review runs are recorded, relative to the project directory.
const File = ".htmlcheck/history/reviews.json"

// FileHistory implements domain.ReviewHistory as a JSON array on disk.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

// Save appends entry to the project's history. A history file that cannot
// be parsed is left untouched and reported.
func (h *FileHistory) Save(projectPath string, entry domain.ReviewEntry) error {
	entries, err := h.Load(projectPath)
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	fp := filepath.Join(projectPath, File)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := os.WriteFile(fp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", File, err)
	}
	return nil
}

// Load returns recorded entries oldest first, or nil when nothing was recorded.
func (h *FileHistory) Load(projectPath string) ([]domain.ReviewEntry, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, File))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", File, err)
	}

	var entries []domain.ReviewEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", File, err)
	}
	return entries, nil
}
