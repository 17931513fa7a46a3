package entities

// UploadRequest asks the backend for a presigned upload target.
type UploadRequest struct {
	FileName    string `json:"file_name" validate:"required"`
	ContentType string `json:"content_type"`
}

// PresignedUpload describes a direct-to-storage form POST.
type PresignedUpload struct {
	UploadURL string            `json:"upload_url"`
	Fields    map[string]string `json:"fields"`
	FileKey   string            `json:"file_key"`
	Bucket    string            `json:"bucket,omitempty"`
	Region    string            `json:"region,omitempty"`
}
