package note

import (
	"time"

	"github.com/scribeflow/api/internal/domain/patient"
)

// Note is a finalized SOAP note. Once created, notes cannot be edited or
// deleted individually; only the bulk reset removes them.
type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	PatientID uint             `gorm:"column:patient_id;not null;index" json:"patient_id"`
	Patient   *patient.Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"-"`

	Content string `gorm:"column:content;type:text;not null" json:"content"`
}

func (Note) TableName() string {
	return "notes"
}

type SaveNoteCommand struct {
	PatientID uint
	Content   string
}
