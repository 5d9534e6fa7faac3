package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/scribeflow/api/internal/domain/patient"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

var _ patient.Repository = (*PatientRepository)(nil)

func (r *PatientRepository) Create(ctx context.Context, p *patient.Patient) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("inserting patient: %w", err)
	}
	return nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id uint) (*patient.Patient, error) {
	var p patient.Patient
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, patient.ErrPatientNotFound
		}
		return nil, fmt.Errorf("fetching patient %d: %w", id, err)
	}
	return &p, nil
}

func (r *PatientRepository) List(ctx context.Context, q *patient.ListPatientsQuery) ([]*patient.Patient, error) {
	tx := r.db.WithContext(ctx).Model(&patient.Patient{})

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("first_name LIKE ? OR last_name LIKE ?", pattern, pattern)
	}

	patients := make([]*patient.Patient, 0)
	err := tx.Order("id").Offset(q.Skip).Limit(q.Limit).Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("listing patients: %w", err)
	}
	return patients, nil
}

func (r *PatientRepository) UpdateStatus(ctx context.Context, id uint, status patient.Status) error {
	if !status.IsValid() {
		return patient.ErrInvalidStatus
	}

	res := r.db.WithContext(ctx).
		Model(&patient.Patient{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("updating patient %d status: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return patient.ErrPatientNotFound
	}
	return nil
}

func (r *PatientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&patient.Patient{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting patients: %w", err)
	}
	return count, nil
}

func (r *PatientRepository) DeleteAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&patient.Patient{}).Error
	if err != nil {
		return fmt.Errorf("deleting all patients: %w", err)
	}
	return nil
}
