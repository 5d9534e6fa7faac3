package note

import "context"

type Repository interface {
	// Create persists a new note. The referenced patient must exist.
	Create(ctx context.Context, n *Note) error

	// ListByPatient returns all notes for a patient, newest first.
	// A patient with no notes yields an empty slice, not an error.
	ListByPatient(ctx context.Context, patientID uint) ([]*Note, error)

	// CountByPatient reports how many notes exist for a patient.
	CountByPatient(ctx context.Context, patientID uint) (int64, error)

	// DeleteAll removes every note row. Used only by the bulk reset.
	DeleteAll(ctx context.Context) error
}
