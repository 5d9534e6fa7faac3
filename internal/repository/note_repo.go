package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/scribeflow/api/internal/domain/note"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

var _ note.Repository = (*NoteRepository)(nil)

func (r *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("inserting note: %w", err)
	}
	return nil
}

func (r *NoteRepository) ListByPatient(ctx context.Context, patientID uint) ([]*note.Note, error) {
	notes := make([]*note.Note, 0)
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("listing notes for patient %d: %w", patientID, err)
	}
	return notes, nil
}

func (r *NoteRepository) CountByPatient(ctx context.Context, patientID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&note.Note{}).
		Where("patient_id = ?", patientID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting notes for patient %d: %w", patientID, err)
	}
	return count, nil
}

func (r *NoteRepository) DeleteAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&note.Note{}).Error
	if err != nil {
		return fmt.Errorf("deleting all notes: %w", err)
	}
	return nil
}
