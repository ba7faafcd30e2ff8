package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"chartserver/internal/models"
)

// ErrInvalidFile indicates an upload rejected before parsing: wrong extension or too large.
var ErrInvalidFile = errors.New("invalid file")

// multipartOverhead leaves room for form fields and part headers around the file.
const multipartOverhead = 64 << 10

// CsvUploadService stages uploaded CSV files and ingests them into the dataset store.
type CsvUploadService struct {
	datasets    *DatasetStore
	uploadsDir  string
	maxFileSize int64
}

func NewCsvUploadService(datasets *DatasetStore, uploadsDir string, maxFileSize int64) (*CsvUploadService, error) {
	if datasets == nil {
		return nil, errors.New("dataset store is required")
	}
	if strings.TrimSpace(uploadsDir) == "" {
		return nil, fmt.Errorf("%w: uploads directory is required", ErrStorageUnavailable)
	}
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create uploads directory: %v", ErrStorageUnavailable, err)
	}
	return &CsvUploadService{
		datasets:    datasets,
		uploadsDir:  uploadsDir,
		maxFileSize: maxFileSize,
	}, nil
}

// MaxRequestSize bounds the whole multipart request body, or returns 0 when
// uploads are unlimited.
func (csvService *CsvUploadService) MaxRequestSize() int64 {
	if csvService.maxFileSize <= 0 {
		return 0
	}
	return csvService.maxFileSize + multipartOverhead
}

// TooLargeError reports an upload rejected by its size.
func (csvService *CsvUploadService) TooLargeError() error {
	return fmt.Errorf("%w: file size exceeds %d bytes", ErrInvalidFile, csvService.maxFileSize)
}

// ValidateFile checks the extension and size of an upload before it is read.
func (csvService *CsvUploadService) ValidateFile(fileHeader *multipart.FileHeader) error {
	filename := strings.ToLower(fileHeader.Filename)
	if !strings.HasSuffix(filename, ".csv") {
		return fmt.Errorf("%w: only CSV files are allowed", ErrInvalidFile)
	}
	if csvService.maxFileSize > 0 && fileHeader.Size > csvService.maxFileSize {
		return csvService.TooLargeError()
	}
	return nil
}

// ProcessFile stages the upload as <name>.csv in the uploads directory, parses it
// and writes it to the dataset store under name.
func (csvService *CsvUploadService) ProcessFile(fileHeader *multipart.FileHeader, name string) (*models.Table, error) {
	if err := csvService.ValidateFile(fileHeader); err != nil {
		return nil, err
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	stagedPath, err := csvService.stage(name, file)
	if err != nil {
		return nil, err
	}

	staged, err := os.Open(stagedPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open staged file: %v", ErrStorageUnavailable, err)
	}
	defer staged.Close()

	table, err := ParseCSV(staged)
	if err != nil {
		return nil, err
	}
	if err := csvService.datasets.Write(name, table); err != nil {
		return nil, err
	}
	return table, nil
}

func (csvService *CsvUploadService) stage(name string, src io.Reader) (string, error) {
	outputPath := filepath.Join(csvService.uploadsDir, Filename(name))
	outputFile, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create staged file: %v", ErrStorageUnavailable, err)
	}
	defer outputFile.Close()

	if _, err := io.Copy(outputFile, src); err != nil {
		return "", fmt.Errorf("%w: failed to stage upload: %v", ErrStorageUnavailable, err)
	}
	return outputPath, nil
}
