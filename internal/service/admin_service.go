package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/scribeflow/api/internal/domain/note"
	"github.com/scribeflow/api/internal/domain/patient"
)

// AdminService covers the demo helpers: seeding fixed patients and wiping
// the store.
type AdminService struct {
	patientRepo patient.Repository
	noteRepo    note.Repository
	log         *zap.Logger
}

func NewAdminService(patientRepo patient.Repository, noteRepo note.Repository, log *zap.Logger) *AdminService {
	return &AdminService{patientRepo: patientRepo, noteRepo: noteRepo, log: log}
}

// demoPatients are the fixed records inserted by Seed.
var demoPatients = []patient.CreatePatientCommand{
	{FirstName: "Sarah", LastName: "Smith", DOB: "1995-04-12", HistorySummary: "Migraines"},
	{FirstName: "John", LastName: "Doe", DOB: "1980-01-01", HistorySummary: "Diabetes"},
	{FirstName: "Mike", LastName: "Ross", DOB: "1990-08-23", HistorySummary: "Asthma"},
}

// Seed inserts the demo patients. It is an idempotent no-op when any patient
// already exists; seeded reports whether rows were inserted.
func (s *AdminService) Seed(ctx context.Context) (seeded bool, err error) {
	count, err := s.patientRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("counting patients: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	for _, cmd := range demoPatients {
		p := &patient.Patient{
			FirstName:      cmd.FirstName,
			LastName:       cmd.LastName,
			DOB:            cmd.DOB,
			HistorySummary: cmd.HistorySummary,
			Status:         patient.StatusWaiting,
		}
		if err := s.patientRepo.Create(ctx, p); err != nil {
			return false, fmt.Errorf("seeding patient %s: %w", p.FullName(), err)
		}
	}

	s.log.Info("seeded demo patients", zap.Int("count", len(demoPatients)))
	return true, nil
}

// Reset deletes all notes and then all patients. Running it against an empty
// store is a no-op.
func (s *AdminService) Reset(ctx context.Context) error {
	// Notes first: they reference patients.
	if err := s.noteRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("resetting notes: %w", err)
	}
	if err := s.patientRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("resetting patients: %w", err)
	}

	s.log.Info("store reset")
	return nil
}
