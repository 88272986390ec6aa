package utils

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseID converts a path/query parameter into a numeric ID.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid ID %q", value)
	}
	return id, nil
}

// GenerateStoredFilename builds a unique storage filename keeping the
// original file extension.
func GenerateStoredFilename(originalName string) string {
	ext := filepath.Ext(originalName)
	return uuid.New().String() + ext
}
