package patient

import (
	"strings"
	"time"
)

// Status represents the workflow state of a patient on the day's roster.
type Status string

const (
	// StatusWaiting means the patient has no finalized note yet.
	StatusWaiting Status = "Waiting"
	// StatusComplete means at least one note has been saved for the patient.
	StatusComplete Status = "Complete"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusComplete:
		return true
	}
	return false
}

type Patient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	FirstName string `gorm:"column:first_name;type:varchar(100);not null;index" json:"first_name"`
	LastName  string `gorm:"column:last_name;type:varchar(100);not null;index" json:"last_name"`
	// Date of birth as entered at registration, e.g. "1995-04-12".
	DOB string `gorm:"column:dob;type:varchar(20);not null" json:"dob"`

	HistorySummary string `gorm:"column:history_summary;type:text" json:"history_summary"`

	Status Status `gorm:"column:status;type:varchar(20);not null;default:'Waiting';index" json:"status"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// MarkComplete transitions the patient to Complete. The transition is
// idempotent: saving further notes keeps the patient Complete.
func (p *Patient) MarkComplete() {
	p.Status = StatusComplete
}

type CreatePatientCommand struct {
	FirstName      string
	LastName       string
	DOB            string
	HistorySummary string
}

// ListPatientsQuery defines filtering and windowing for patient list queries.
// Search matches a substring of either the first or the last name.
type ListPatientsQuery struct {
	Search string
	Skip   int
	Limit  int
}
