package patient

import "context"

type Repository interface {
	// Create persists a new patient and assigns its ID.
	Create(ctx context.Context, p *Patient) error

	// GetByID retrieves a patient by primary key. Returns ErrPatientNotFound if absent.
	GetByID(ctx context.Context, id uint) (*Patient, error)

	// List returns patients matching the query, ordered by ID.
	List(ctx context.Context, q *ListPatientsQuery) ([]*Patient, error)

	// UpdateStatus sets the workflow status of an existing patient.
	UpdateStatus(ctx context.Context, id uint, status Status) error

	// Count reports the total number of patients in the store.
	Count(ctx context.Context) (int64, error)

	// DeleteAll removes every patient row. Used only by the bulk reset.
	DeleteAll(ctx context.Context) error
}
