package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/scribeflow/api/internal/domain/note"
	"github.com/scribeflow/api/internal/domain/patient"
	"github.com/scribeflow/api/pkg/metrics"
)

// NoteService owns the persistence side of the note workflow. Drafting is
// deliberately elsewhere (ScribeService): saving a note never calls the AI,
// and generating a draft never touches the store.
type NoteService struct {
	repo        note.Repository
	patientRepo patient.Repository
	mc          *metrics.Collector
	log         *zap.Logger
}

func NewNoteService(repo note.Repository, patientRepo patient.Repository, mc *metrics.Collector, log *zap.Logger) *NoteService {
	return &NoteService{repo: repo, patientRepo: patientRepo, mc: mc, log: log}
}

// SaveNote persists a reviewed note and marks the patient Complete. The
// transition is idempotent: a second save keeps the patient Complete.
func (s *NoteService) SaveNote(ctx context.Context, cmd *note.SaveNoteCommand) (*note.Note, error) {
	if strings.TrimSpace(cmd.Content) == "" {
		return nil, &ValidationError{Fields: []string{"content is required"}}
	}

	p, err := s.patientRepo.GetByID(ctx, cmd.PatientID)
	if err != nil {
		return nil, fmt.Errorf("verifying patient: %w", err)
	}

	n := &note.Note{
		PatientID: cmd.PatientID,
		Content:   cmd.Content,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		s.log.Error("failed to save note",
			zap.Uint("patient_id", cmd.PatientID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("saving note: %w", err)
	}

	if p.Status != patient.StatusComplete {
		if err := s.patientRepo.UpdateStatus(ctx, p.ID, patient.StatusComplete); err != nil {
			// The note is already durable; report the failed transition
			// instead of rolling it back.
			return nil, fmt.Errorf("marking patient complete: %w", err)
		}
	}

	s.mc.NotesSavedTotal.Inc()
	s.log.Info("note saved",
		zap.Uint("note_id", n.ID),
		zap.Uint("patient_id", cmd.PatientID),
	)

	return n, nil
}

// ListNotes returns the saved notes for a patient, newest first. A patient
// with no notes yields an empty list.
func (s *NoteService) ListNotes(ctx context.Context, patientID uint) ([]*note.Note, error) {
	return s.repo.ListByPatient(ctx, patientID)
}
