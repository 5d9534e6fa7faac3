package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/scribeflow/api/internal/service"
)

type AdminHandler struct {
	svc *service.AdminService
}

func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Seed inserts the fixed demo patients; a no-op when data already exists.
func (h *AdminHandler) Seed(c *gin.Context) {
	seeded, err := h.svc.Seed(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !seeded {
		respondMessage(c, "patients already exist")
		return
	}
	respondMessage(c, "seeded demo patients")
}

// Reset wipes all notes and patients.
func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.svc.Reset(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}

	respondMessage(c, "store reset")
}
