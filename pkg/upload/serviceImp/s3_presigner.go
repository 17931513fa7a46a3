package serviceImp

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"farmdesk/config"
	"farmdesk/entities"
	svc "farmdesk/pkg/upload/service"
)

const keyPrefix = "supervisors/"

type s3Presigner struct {
	cli    *minio.Client
	opts   config.S3Options
	newKey func(fileName string) string
	now    func() time.Time
}

// NewS3 builds a presigner for an S3 compatible bucket. It returns a
// presigner that always fails with ErrDisabled when opts are incomplete.
func NewS3(opts config.S3Options) (svc.Presigner, error) {
	if !opts.Enabled() {
		return disabled{}, nil
	}
	cli, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: true,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}
	return &s3Presigner{cli: cli, opts: opts, newKey: ObjectKey, now: time.Now}, nil
}

func (p *s3Presigner) Presign(ctx context.Context, req entities.UploadRequest) (*entities.PresignedUpload, error) {
	key := p.newKey(req.FileName)

	policy := minio.NewPostPolicy()
	if err := policy.SetBucket(p.opts.Bucket); err != nil {
		return nil, fmt.Errorf("policy bucket: %w", err)
	}
	if err := policy.SetKey(key); err != nil {
		return nil, fmt.Errorf("policy key: %w", err)
	}
	if err := policy.SetExpires(p.now().UTC().Add(p.opts.Expiry)); err != nil {
		return nil, fmt.Errorf("policy expiry: %w", err)
	}
	if req.ContentType != "" {
		if err := policy.SetContentType(req.ContentType); err != nil {
			return nil, fmt.Errorf("policy content type: %w", err)
		}
	}
	if p.opts.MaxBytes > 0 {
		if err := policy.SetContentLengthRange(1, p.opts.MaxBytes); err != nil {
			return nil, fmt.Errorf("policy length: %w", err)
		}
	}

	u, fields, err := p.cli.PresignedPostPolicy(ctx, policy)
	if err != nil {
		return nil, fmt.Errorf("presign post: %w", err)
	}
	return &entities.PresignedUpload{
		UploadURL: u.String(),
		Fields:    fields,
		FileKey:   key,
		Bucket:    p.opts.Bucket,
		Region:    p.opts.Region,
	}, nil
}

// ObjectKey returns a collision-free key that keeps the file extension.
func ObjectKey(fileName string) string {
	ext := strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(fileName, "\\", "/"))))
	if len(ext) > 8 || strings.ContainsAny(ext, " ?#%&") {
		ext = ""
	}
	return keyPrefix + uuid.NewString() + ext
}

type disabled struct{}

func (disabled) Presign(context.Context, entities.UploadRequest) (*entities.PresignedUpload, error) {
	return nil, svc.ErrDisabled
}
