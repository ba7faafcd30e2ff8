package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"chartserver/internal/models"
)

// ChartStore persists generated chart documents as chart_<token>.json files.
// Entries are never updated or removed.
type ChartStore struct {
	storageDir string
}

func NewChartStore(storageDir string) (*ChartStore, error) {
	if strings.TrimSpace(storageDir) == "" {
		return nil, fmt.Errorf("%w: exports directory is required", ErrStorageUnavailable)
	}
	if err := os.MkdirAll(storageDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create exports directory: %v", ErrStorageUnavailable, err)
	}
	return &ChartStore{storageDir: storageDir}, nil
}

func (store *ChartStore) Dir() string {
	return store.storageDir
}

// ChartFilename returns the document file name for token with the given extension.
func ChartFilename(token string, format models.ExportFormat) string {
	return "chart_" + token + "." + string(format)
}

// Create stores cfg under a fresh random token together with a table snapshot
// in the requested format, and returns the token and the export file name.
// The export is written first, so a chart document is only visible once its
// export exists.
func (store *ChartStore) Create(cfg models.ChartConfig, format models.ExportFormat, table *models.Table) (string, string, error) {
	token := uuid.NewString()
	raw, err := json.Marshal(cfg)
	if err != nil {
		return "", "", newStoreError("create", token, fmt.Errorf("failed to encode chart: %w", err))
	}
	exportFile, err := store.writeExport(token, format, table)
	if err != nil {
		return "", "", err
	}
	if err := store.writeFile(ChartFilename(token, models.ExportJSON), raw); err != nil {
		if exportFile != ChartFilename(token, models.ExportJSON) {
			_ = os.Remove(filepath.Join(store.storageDir, exportFile))
		}
		return "", "", newStoreError("create", token, err)
	}
	return token, exportFile, nil
}

// Read loads the chart document for token.
func (store *ChartStore) Read(token string) (*models.ChartConfig, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, newStoreError("read", token, fmt.Errorf("%w: chart %s", ErrNotFound, token))
	}
	raw, err := os.ReadFile(filepath.Join(store.storageDir, ChartFilename(token, models.ExportJSON)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newStoreError("read", token, fmt.Errorf("%w: chart %s", ErrNotFound, token))
		}
		return nil, newStoreError("read", token, fmt.Errorf("%w: %v", ErrStorageUnavailable, err))
	}
	var cfg models.ChartConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, newStoreError("read", token, fmt.Errorf("failed to decode chart: %w", err))
	}
	return &cfg, nil
}

// ExportPath resolves an export file name to its path. Names that would leave
// the directory and temporary files are reported as not found.
func (store *ChartStore) ExportPath(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", newStoreError("read", filename, fmt.Errorf("%w: export %s", ErrNotFound, filename))
	}
	path := filepath.Join(store.storageDir, filename)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", newStoreError("read", filename, fmt.Errorf("%w: export %s", ErrNotFound, filename))
		}
		return "", newStoreError("read", filename, fmt.Errorf("%w: %v", ErrStorageUnavailable, err))
	}
	if !info.Mode().IsRegular() {
		return "", newStoreError("read", filename, fmt.Errorf("%w: export %s", ErrNotFound, filename))
	}
	return path, nil
}

func (store *ChartStore) writeFile(filename string, raw []byte) error {
	tmp, err := os.CreateTemp(store.storageDir, ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := os.Rename(tmpPath, filepath.Join(store.storageDir, filename)); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}
