package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/scribeflow/api/internal/domain/patient"
	"github.com/scribeflow/api/internal/service"
)

type PatientHandler struct {
	svc *service.PatientService
}

func NewPatientHandler(svc *service.PatientService) *PatientHandler {
	return &PatientHandler{svc: svc}
}

type createPatientRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	DOB            string `json:"dob" binding:"required"`
	HistorySummary string `json:"history_summary"`
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req createPatientRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.svc.CreatePatient(c.Request.Context(), &patient.CreatePatientCommand{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DOB:            req.DOB,
		HistorySummary: req.HistorySummary,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, p)
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	p, err := h.svc.GetPatient(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, p)
}

func (h *PatientHandler) List(c *gin.Context) {
	q := &patient.ListPatientsQuery{
		Search: c.Query("search"),
		Skip:   parseQueryInt(c, "skip", 0),
		Limit:  parseQueryInt(c, "limit", 0),
	}

	patients, err := h.svc.ListPatients(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, patients)
}
