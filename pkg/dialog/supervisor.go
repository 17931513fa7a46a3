package dialog

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"farmdesk/entities"
)

// Uploader stores a file and returns its public URL. *client.Uploader
// satisfies it.
type Uploader interface {
	Upload(ctx context.Context, fileName, contentType string, r io.Reader) (string, error)
}

type photo struct {
	name        string
	contentType string
	data        []byte
}

// SupervisorDialog uploads an attached photo before saving.
type SupervisorDialog struct {
	*Dialog[entities.Supervisor]
	up    Uploader
	photo *photo
}

func NewSupervisor(saver Saver[entities.Supervisor], up Uploader) *SupervisorDialog {
	return &SupervisorDialog{Dialog: New(saver), up: up}
}

// AttachPhoto reads the photo into memory so a failed upload can be
// retried by confirming again.
func (d *SupervisorDialog) AttachPhoto(name, contentType string, r io.Reader) error {
	if !d.IsOpen() {
		return ErrClosed
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read photo %s: %w", name, err)
	}
	d.photo = &photo{name: name, contentType: contentType, data: data}
	return nil
}

func (d *SupervisorDialog) HasPhoto() bool { return d.photo != nil }

func (d *SupervisorDialog) OpenCreate(seed entities.Supervisor) {
	d.photo = nil
	d.Dialog.OpenCreate(seed)
}

func (d *SupervisorDialog) OpenEdit(id uint, current entities.Supervisor) {
	d.photo = nil
	d.Dialog.OpenEdit(id, current)
}

func (d *SupervisorDialog) Cancel() {
	d.photo = nil
	d.Dialog.Cancel()
}

// Confirm validates, uploads the staged photo into photo_url, then saves.
// An upload failure aborts the save and keeps the dialog open.
func (d *SupervisorDialog) Confirm(ctx context.Context) (*entities.Supervisor, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if d.photo != nil {
		if d.up == nil {
			return nil, fmt.Errorf("attach photo %s: uploads not configured", d.photo.name)
		}
		url, err := d.up.Upload(ctx, d.photo.name, d.photo.contentType, bytes.NewReader(d.photo.data))
		if err != nil {
			return nil, err
		}
		d.Draft().PhotoURL = url
		d.photo = nil
	}
	return d.Dialog.Confirm(ctx)
}
