// Package dialog stages one record for creation or editing, checks its
// required fields and hands it to a list controller on confirm.
package dialog

import (
	"context"
	"errors"

	"farmdesk/pkg/validation"
)

// ValidationError lists the fields that block a save.
type ValidationError = validation.Error

var ErrClosed = errors.New("dialog is not open")

// Saver is what the dialog confirms into. *listctl.Controller satisfies it.
type Saver[T any] interface {
	Create(ctx context.Context, draft T) (*T, error)
	Update(ctx context.Context, id uint, patch any) (*T, error)
}

type Mode int

const (
	Closed Mode = iota
	Creating
	Editing
)

type Dialog[T any] struct {
	saver Saver[T]
	mode  Mode
	id    uint
	draft T
}

func New[T any](saver Saver[T]) *Dialog[T] {
	return &Dialog[T]{saver: saver}
}

// OpenCreate stages seed as a new record.
func (d *Dialog[T]) OpenCreate(seed T) {
	d.mode = Creating
	d.id = 0
	d.draft = seed
}

// OpenEdit stages a copy of an existing record.
func (d *Dialog[T]) OpenEdit(id uint, current T) {
	d.mode = Editing
	d.id = id
	d.draft = current
}

func (d *Dialog[T]) Mode() Mode { return d.mode }

func (d *Dialog[T]) IsOpen() bool { return d.mode != Closed }

// Draft is the staged record; callers mutate it in place. Nil when closed.
func (d *Dialog[T]) Draft() *T {
	if d.mode == Closed {
		return nil
	}
	return &d.draft
}

// Cancel discards the draft.
func (d *Dialog[T]) Cancel() {
	var zero T
	d.mode = Closed
	d.id = 0
	d.draft = zero
}

// Validate returns a *ValidationError naming each failing field, or nil.
func (d *Dialog[T]) Validate() error {
	if d.mode == Closed {
		return ErrClosed
	}
	return validation.Check(&d.draft)
}

func (d *Dialog[T]) CanSave() bool { return d.Validate() == nil }

// Confirm saves the draft: Create when new, a full-record Update when
// editing. The dialog closes only on success; a failed save keeps the draft.
func (d *Dialog[T]) Confirm(ctx context.Context) (*T, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	var (
		out *T
		err error
	)
	if d.mode == Creating {
		out, err = d.saver.Create(ctx, d.draft)
	} else {
		out, err = d.saver.Update(ctx, d.id, d.draft)
	}
	if err != nil {
		return nil, err
	}
	d.Cancel()
	return out, nil
}
