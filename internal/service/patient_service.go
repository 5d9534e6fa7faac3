package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/scribeflow/api/internal/domain/patient"
	"github.com/scribeflow/api/pkg/metrics"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type PatientService struct {
	repo patient.Repository
	mc   *metrics.Collector
	log  *zap.Logger
}

func NewPatientService(repo patient.Repository, mc *metrics.Collector, log *zap.Logger) *PatientService {
	return &PatientService{repo: repo, mc: mc, log: log}
}

func (s *PatientService) CreatePatient(ctx context.Context, cmd *patient.CreatePatientCommand) (*patient.Patient, error) {
	if err := validateCreateCommand(cmd); err != nil {
		return nil, err
	}

	p := &patient.Patient{
		FirstName:      strings.TrimSpace(cmd.FirstName),
		LastName:       strings.TrimSpace(cmd.LastName),
		DOB:            strings.TrimSpace(cmd.DOB),
		HistorySummary: cmd.HistorySummary,
		Status:         patient.StatusWaiting,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error("failed to create patient", zap.Error(err))
		return nil, fmt.Errorf("creating patient: %w", err)
	}

	s.mc.PatientsCreatedTotal.Inc()
	s.log.Info("patient created",
		zap.Uint("patient_id", p.ID),
		zap.String("name", p.FullName()),
	)

	return p, nil
}

func (s *PatientService) GetPatient(ctx context.Context, id uint) (*patient.Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PatientService) ListPatients(ctx context.Context, q *patient.ListPatientsQuery) ([]*patient.Patient, error) {
	if q.Limit <= 0 || q.Limit > maxListLimit {
		q.Limit = defaultListLimit
	}
	if q.Skip < 0 {
		q.Skip = 0
	}

	return s.repo.List(ctx, q)
}

func validateCreateCommand(cmd *patient.CreatePatientCommand) error {
	var errs []string

	if strings.TrimSpace(cmd.FirstName) == "" {
		errs = append(errs, "first_name is required")
	}
	if strings.TrimSpace(cmd.LastName) == "" {
		errs = append(errs, "last_name is required")
	}
	if strings.TrimSpace(cmd.DOB) == "" {
		errs = append(errs, "dob is required")
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
