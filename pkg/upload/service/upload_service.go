package service

import (
	"context"
	"errors"

	"farmdesk/entities"
)

// ErrDisabled is returned when no storage bucket is configured.
var ErrDisabled = errors.New("uploads are not configured")

// Presigner issues direct-to-storage upload descriptors.
type Presigner interface {
	Presign(ctx context.Context, req entities.UploadRequest) (*entities.PresignedUpload, error)
}
