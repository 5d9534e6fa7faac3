package note

import "errors"

var (
	ErrNoteNotFound  = errors.New("note not found")
	ErrNoteImmutable = errors.New("notes cannot be modified after saving")
)
