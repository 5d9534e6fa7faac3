package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/scribeflow/api/internal/domain/note"
	"github.com/scribeflow/api/internal/domain/patient"
	"github.com/scribeflow/api/pkg/metrics"
)

// One collector per test binary: promauto registers into the default
// registry, and a second registration of the same metric panics.
var testMetrics = metrics.NewCollector("test")

var testLogger = zap.NewNop()

// fakePatientRepo is an in-memory patient.Repository.
type fakePatientRepo struct {
	patients map[uint]*patient.Patient
	nextID   uint
	failWith error
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[uint]*patient.Patient), nextID: 1}
}

func (f *fakePatientRepo) Create(_ context.Context, p *patient.Patient) error {
	if f.failWith != nil {
		return f.failWith
	}
	p.ID = f.nextID
	f.nextID++
	cp := *p
	f.patients[p.ID] = &cp
	return nil
}

func (f *fakePatientRepo) GetByID(_ context.Context, id uint) (*patient.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, patient.ErrPatientNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePatientRepo) List(_ context.Context, q *patient.ListPatientsQuery) ([]*patient.Patient, error) {
	var out []*patient.Patient
	for id := uint(1); id < f.nextID; id++ {
		p, ok := f.patients[id]
		if !ok {
			continue
		}
		if q.Search != "" &&
			!strings.Contains(p.FirstName, q.Search) &&
			!strings.Contains(p.LastName, q.Search) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	if q.Skip >= len(out) {
		return []*patient.Patient{}, nil
	}
	out = out[q.Skip:]
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (f *fakePatientRepo) UpdateStatus(_ context.Context, id uint, status patient.Status) error {
	p, ok := f.patients[id]
	if !ok {
		return patient.ErrPatientNotFound
	}
	p.Status = status
	return nil
}

func (f *fakePatientRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.patients)), nil
}

func (f *fakePatientRepo) DeleteAll(_ context.Context) error {
	f.patients = make(map[uint]*patient.Patient)
	return nil
}

// fakeNoteRepo is an in-memory note.Repository.
type fakeNoteRepo struct {
	notes  []*note.Note
	nextID uint
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{nextID: 1}
}

func (f *fakeNoteRepo) Create(_ context.Context, n *note.Note) error {
	n.ID = f.nextID
	f.nextID++
	cp := *n
	f.notes = append(f.notes, &cp)
	return nil
}

func (f *fakeNoteRepo) ListByPatient(_ context.Context, patientID uint) ([]*note.Note, error) {
	out := make([]*note.Note, 0)
	for i := len(f.notes) - 1; i >= 0; i-- {
		if f.notes[i].PatientID == patientID {
			cp := *f.notes[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeNoteRepo) CountByPatient(_ context.Context, patientID uint) (int64, error) {
	var count int64
	for _, n := range f.notes {
		if n.PatientID == patientID {
			count++
		}
	}
	return count, nil
}

func (f *fakeNoteRepo) DeleteAll(_ context.Context) error {
	f.notes = nil
	return nil
}

// fakeAIClient returns canned text or a configured error.
type fakeAIClient struct {
	noteText     string
	questionText string
	err          error

	gotTranscript string
	gotVitals     string
	gotText       string
}

func (f *fakeAIClient) GenerateSOAPNote(_ context.Context, transcript, vitals string) (string, error) {
	f.gotTranscript, f.gotVitals = transcript, vitals
	if f.err != nil {
		return "", f.err
	}
	return f.noteText, nil
}

func (f *fakeAIClient) SuggestFollowupQuestion(_ context.Context, text string) (string, error) {
	f.gotText = text
	if f.err != nil {
		return "", f.err
	}
	return f.questionText, nil
}
