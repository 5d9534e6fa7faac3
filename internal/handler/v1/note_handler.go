package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/scribeflow/api/internal/domain/note"
	"github.com/scribeflow/api/internal/service"
)

type NoteHandler struct {
	notes  *service.NoteService
	scribe *service.ScribeService
}

func NewNoteHandler(notes *service.NoteService, scribe *service.ScribeService) *NoteHandler {
	return &NoteHandler{notes: notes, scribe: scribe}
}

type generateNoteRequest struct {
	Transcript string `json:"transcript" binding:"required"`
	Vitals     string `json:"vitals"`
}

// Generate drafts a SOAP note from a transcript. Nothing is persisted: the
// draft goes back to the client for review, and saving is a separate call.
func (h *NoteHandler) Generate(c *gin.Context) {
	var req generateNoteRequest
	if !bindJSON(c, &req) {
		return
	}

	text, err := h.scribe.GenerateDraft(c.Request.Context(), req.Transcript, req.Vitals)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"note": text})
}

type saveNoteRequest struct {
	PatientID uint   `json:"patient_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

// Save persists a reviewed note and flips the patient to Complete. No AI
// involvement; the content is whatever the reviewer approved.
func (h *NoteHandler) Save(c *gin.Context) {
	var req saveNoteRequest
	if !bindJSON(c, &req) {
		return
	}

	n, err := h.notes.SaveNote(c.Request.Context(), &note.SaveNoteCommand{
		PatientID: req.PatientID,
		Content:   req.Content,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, n)
}

// ListForPatient returns the saved notes for one patient, newest first.
func (h *NoteHandler) ListForPatient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	notes, err := h.notes.ListNotes(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, notes)
}

type analyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

// Analyze suggests one follow-up question for a partial transcript.
func (h *NoteHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if !bindJSON(c, &req) {
		return
	}

	question, err := h.scribe.SuggestFollowup(c.Request.Context(), req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"ai_suggestion": question})
}
