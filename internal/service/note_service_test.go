package service

import (
	"context"
	"errors"
	"testing"

	"github.com/scribeflow/api/internal/domain/note"
	"github.com/scribeflow/api/internal/domain/patient"
)

func setupNoteService(t *testing.T) (*NoteService, *fakePatientRepo, *fakeNoteRepo, *patient.Patient) {
	t.Helper()
	patientRepo := newFakePatientRepo()
	noteRepo := newFakeNoteRepo()
	svc := NewNoteService(noteRepo, patientRepo, testMetrics, testLogger)

	p := &patient.Patient{FirstName: "Ana", LastName: "Lee", DOB: "2000-01-01", Status: patient.StatusWaiting}
	if err := patientRepo.Create(context.Background(), p); err != nil {
		t.Fatalf("seeding patient: %v", err)
	}
	return svc, patientRepo, noteRepo, p
}

func TestSaveNote_IncrementsCountAndMarksComplete(t *testing.T) {
	svc, patientRepo, noteRepo, p := setupNoteService(t)

	n, err := svc.SaveNote(context.Background(), &note.SaveNoteCommand{
		PatientID: p.ID,
		Content:   "S: headache\nO: BP normal\nA: tension headache\nP: hydration",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.ID == 0 {
		t.Error("expected an assigned note id")
	}

	count, _ := noteRepo.CountByPatient(context.Background(), p.ID)
	if count != 1 {
		t.Errorf("expected 1 note, got %d", count)
	}

	got, _ := patientRepo.GetByID(context.Background(), p.ID)
	if got.Status != patient.StatusComplete {
		t.Errorf("expected patient Complete after save, got %s", got.Status)
	}
}

func TestSaveNote_RepeatedSaveKeepsComplete(t *testing.T) {
	svc, patientRepo, noteRepo, p := setupNoteService(t)

	for i := 0; i < 2; i++ {
		if _, err := svc.SaveNote(context.Background(), &note.SaveNoteCommand{
			PatientID: p.ID,
			Content:   "note content",
		}); err != nil {
			t.Fatalf("save %d: %v", i+1, err)
		}
	}

	count, _ := noteRepo.CountByPatient(context.Background(), p.ID)
	if count != 2 {
		t.Errorf("expected 2 notes, got %d", count)
	}

	got, _ := patientRepo.GetByID(context.Background(), p.ID)
	if got.Status != patient.StatusComplete {
		t.Errorf("expected patient to stay Complete, got %s", got.Status)
	}
}

func TestSaveNote_UnknownPatient(t *testing.T) {
	svc, _, noteRepo, _ := setupNoteService(t)

	_, err := svc.SaveNote(context.Background(), &note.SaveNoteCommand{
		PatientID: 999,
		Content:   "content",
	})
	if !errors.Is(err, patient.ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}

	if len(noteRepo.notes) != 0 {
		t.Error("expected no note persisted for unknown patient")
	}
}

func TestSaveNote_RejectsBlankContent(t *testing.T) {
	svc, _, _, p := setupNoteService(t)

	_, err := svc.SaveNote(context.Background(), &note.SaveNoteCommand{
		PatientID: p.ID,
		Content:   "   ",
	})

	var validErr *ValidationError
	if !errors.As(err, &validErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestListNotes_EmptyForPatientWithoutNotes(t *testing.T) {
	svc, _, _, p := setupNoteService(t)

	notes, err := svc.ListNotes(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notes == nil || len(notes) != 0 {
		t.Errorf("expected empty slice, got %v", notes)
	}
}
