package storage

import (
	"errors"

	"course-platform/pkg/utils"

	"github.com/casdoor/oss"
	"github.com/casdoor/oss/filesystem"
)

// NewStorage builds the blob store for lecture media. Only the local
// filesystem provider is deployed today; the oss interface keeps the
// door open for object-store backends without touching callers.
func NewStorage(config utils.StorageConfig) (oss.StorageInterface, error) {
	switch config.Provider {
	case "filesystem", "local":
		return filesystem.New(config.Path), nil
	default:
		return nil, errors.New("unsupported storage provider: " + config.Provider)
	}
}
