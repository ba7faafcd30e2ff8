package services

import (
	"fmt"
	"strings"
)

// DeriveName turns a user supplied label into the dataset key: lowercased,
// with every space replaced by an underscore. Labels that differ only by case
// or spaces map to the same key.
func DeriveName(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "_")
}

// ValidateName rejects keys that cannot safely be used as a file name inside a store directory.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: dataset name is required", ErrValidation)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: dataset name %q must not start with a dot", ErrValidation, name)
	case strings.ContainsAny(name, `/\`), strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: dataset name %q contains a path separator", ErrValidation, name)
	}
	return nil
}
