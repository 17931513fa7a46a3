package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strings"

	"farmdesk/entities"
)

// PublicURL is where S3 serves an object uploaded to bucket/region.
func PublicURL(bucket, region, key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, strings.TrimLeft(key, "/"))
}

// Uploader runs the two-call photo flow: ask the backend for a presigned
// POST, then send the bytes straight to storage.
type Uploader struct {
	c          *Client
	httpClient *http.Client
	bucket     string
	region     string
}

// NewUploader uses bucket and region to build public URLs when the presign
// response does not name them.
func NewUploader(c *Client, bucket, region string) *Uploader {
	return &Uploader{c: c, httpClient: c.httpClient, bucket: bucket, region: region}
}

// Upload stores one file and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, fileName, contentType string, r io.Reader) (string, error) {
	target, err := u.c.RequestUpload(ctx, entities.UploadRequest{FileName: fileName, ContentType: contentType})
	if err != nil {
		return "", err
	}
	if target.UploadURL == "" || target.FileKey == "" {
		return "", fmt.Errorf("upload %s: presign response missing upload_url or file_key", fileName)
	}

	if err := u.post(ctx, target, fileName, contentType, r); err != nil {
		return "", fmt.Errorf("upload %s: %w", fileName, err)
	}

	bucket, region := target.Bucket, target.Region
	if bucket == "" {
		bucket = u.bucket
	}
	if region == "" {
		region = u.region
	}
	if bucket == "" || region == "" {
		return "", fmt.Errorf("upload %s: no bucket/region to build public url", fileName)
	}
	url := PublicURL(bucket, region, target.FileKey)
	u.c.log.WithField("url", url).Debug("photo uploaded")
	return url, nil
}

func (u *Uploader) post(ctx context.Context, target *entities.PresignedUpload, fileName, contentType string, r io.Reader) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	// storage backends require the policy fields before the file part
	keys := make([]string, 0, len(target.Fields))
	for k := range target.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := mw.WriteField(k, target.Fields[k]); err != nil {
			return fmt.Errorf("write field %s: %w", k, err)
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.UploadURL, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &StatusError{Method: http.MethodPost, Path: target.UploadURL, StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}
	return nil
}
