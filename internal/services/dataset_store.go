package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"chartserver/internal/models"
)

const (
	datasetExt = ".csv"
	schemaExt  = ".schema.json"
)

// datasetSchema records the column types a dataset was written with, so text
// columns that look numeric ("001") read back as text.
type datasetSchema struct {
	Columns []string       `json:"columns"`
	DTypes  []models.DType `json:"dtypes"`
}

// DatasetStore keeps one CSV file per dataset inside its directory.
// It is the only component that touches files in that directory.
type DatasetStore struct {
	storageDir string
}

func NewDatasetStore(storageDir string) (*DatasetStore, error) {
	if strings.TrimSpace(storageDir) == "" {
		return nil, fmt.Errorf("%w: dataset directory is required", ErrStorageUnavailable)
	}
	if err := os.MkdirAll(storageDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create dataset directory: %v", ErrStorageUnavailable, err)
	}
	return &DatasetStore{storageDir: storageDir}, nil
}

func (store *DatasetStore) Dir() string {
	return store.storageDir
}

// Filename returns the on-disk file name for a dataset key.
func Filename(name string) string {
	return name + datasetExt
}

func (store *DatasetStore) path(name string) string {
	return filepath.Join(store.storageDir, Filename(name))
}

// schemaPath is hidden so Names never lists it.
func (store *DatasetStore) schemaPath(name string) string {
	return filepath.Join(store.storageDir, "."+name+schemaExt)
}

// readHints returns the recorded column types, or nil when the schema file is
// missing or unreadable. The CSV file stays the source of truth.
func (store *DatasetStore) readHints(name string) map[string]models.DType {
	raw, err := os.ReadFile(store.schemaPath(name))
	if err != nil {
		if !os.IsNotExist(err) {
			zap.S().Warnw("Failed to read dataset schema", "dataset", name, "error", err)
		}
		return nil
	}
	var schema datasetSchema
	if err := json.Unmarshal(raw, &schema); err != nil || len(schema.Columns) != len(schema.DTypes) {
		zap.S().Warnw("Ignoring malformed dataset schema", "dataset", name, "error", err)
		return nil
	}
	hints := make(map[string]models.DType, len(schema.Columns))
	for i, col := range schema.Columns {
		hints[col] = schema.DTypes[i]
	}
	return hints
}

func (store *DatasetStore) Exists(name string) bool {
	if ValidateName(name) != nil {
		return false
	}
	info, err := os.Stat(store.path(name))
	return err == nil && info.Mode().IsRegular()
}

// Read parses the full dataset. Column types recorded at write time are kept
// where the file contents still fit them.
func (store *DatasetStore) Read(name string) (*models.Table, error) {
	if err := ValidateName(name); err != nil {
		return nil, newStoreError("read", name, err)
	}
	file, err := os.Open(store.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newStoreError("read", name, fmt.Errorf("%w: dataset %s", ErrNotFound, name))
		}
		return nil, newStoreError("read", name, fmt.Errorf("%w: %v", ErrStorageUnavailable, err))
	}
	defer file.Close()

	table, err := parseCSV(file, store.readHints(name))
	if err != nil {
		return nil, newStoreError("read", name, err)
	}
	return table, nil
}

// Write replaces the dataset file and its schema. Each is serialized to a
// temporary file in the same directory and renamed into place.
func (store *DatasetStore) Write(name string, table *models.Table) error {
	if err := ValidateName(name); err != nil {
		return newStoreError("write", name, err)
	}
	if err := ValidateTable(table); err != nil {
		return newStoreError("write", name, err)
	}
	schema, err := json.Marshal(datasetSchema{Columns: table.Columns, DTypes: schemaDTypes(table)})
	if err != nil {
		return newStoreError("write", name, fmt.Errorf("failed to encode schema: %w", err))
	}
	if err := store.writeAtomic(name, store.path(name), func(w io.Writer) error {
		return WriteCSV(w, table)
	}); err != nil {
		return err
	}
	return store.writeAtomic(name, store.schemaPath(name), func(w io.Writer) error {
		_, err := w.Write(schema)
		return err
	})
}

func schemaDTypes(table *models.Table) []models.DType {
	if len(table.DTypes) == len(table.Columns) {
		return table.DTypes
	}
	dtypes := make([]models.DType, len(table.Columns))
	for i, col := range table.Columns {
		dtypes[i] = valueDType(table.Rows, col)
	}
	return dtypes
}

func (store *DatasetStore) writeAtomic(name, target string, fill func(io.Writer) error) error {
	tmp, err := os.CreateTemp(store.storageDir, "."+name+"-*.tmp")
	if err != nil {
		return newStoreError("write", name, fmt.Errorf("%w: %v", ErrStorageUnavailable, err))
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := fill(tmp); err != nil {
		tmp.Close()
		return newStoreError("write", name, err)
	}
	if err := tmp.Close(); err != nil {
		return newStoreError("write", name, fmt.Errorf("%w: %v", ErrStorageUnavailable, err))
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return newStoreError("write", name, fmt.Errorf("%w: %v", ErrStorageUnavailable, err))
	}
	return nil
}

// Names returns the sorted dataset keys present in the directory.
func (store *DatasetStore) Names() ([]string, error) {
	entries, err := os.ReadDir(store.storageDir)
	if err != nil {
		return nil, newStoreError("list", "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err))
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		fileName := entry.Name()
		if !entry.Type().IsRegular() || strings.HasPrefix(fileName, ".") || !strings.HasSuffix(fileName, datasetExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(fileName, datasetExt))
	}
	sort.Strings(names)
	return names, nil
}

// Count returns the number of dataset files without parsing them.
func (store *DatasetStore) Count() (int, error) {
	names, err := store.Names()
	if err != nil {
		return 0, err
	}
	return len(names), nil
}

// List parses every dataset and returns its summary with the first sampleRows rows.
func (store *DatasetStore) List(sampleRows int) ([]models.DatasetSummary, error) {
	names, err := store.Names()
	if err != nil {
		return nil, err
	}
	summaries := make([]models.DatasetSummary, 0, len(names))
	for _, name := range names {
		table, err := store.Read(name)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, models.DatasetSummary{
			Name:       name,
			Filename:   Filename(name),
			Rows:       len(table.Rows),
			Columns:    table.Columns,
			Sample:     table.Head(sampleRows),
			ChartTypes: Recommend(table.Columns, table.DTypes),
		})
	}
	return summaries, nil
}
