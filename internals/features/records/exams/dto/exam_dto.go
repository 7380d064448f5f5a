package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "schooladmin_backend/internals/features/records/exams/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateExamDossierRequest struct {
	StudentID uuid.UUID `json:"exam_student_id" validate:"required"`
	Name      string    `json:"exam_name" validate:"required,min=2,max=120"`
	Session   string    `json:"exam_session" validate:"required,len=9"`
	Notes     *string   `json:"exam_notes"`
}

func (r *CreateExamDossierRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Session = strings.TrimSpace(r.Session)
	if r.Notes != nil {
		v := strings.TrimSpace(*r.Notes)
		if v == "" {
			r.Notes = nil
		} else {
			r.Notes = &v
		}
	}
}

func (r CreateExamDossierRequest) ToModel() m.ExamDossierModel {
	now := time.Now()
	return m.ExamDossierModel{
		ExamStudentID: r.StudentID,
		ExamName:      r.Name,
		ExamSession:   r.Session,
		ExamStatus:    m.ExamEnAttente,
		ExamNotes:     r.Notes,
		ExamCreatedAt: now,
		ExamUpdatedAt: now,
	}
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateExamDossierRequest struct {
	Name    *string `json:"exam_name" validate:"omitempty,min=2,max=120"`
	Session *string `json:"exam_session" validate:"omitempty,len=9"`
	Notes   *string `json:"exam_notes" validate:"omitempty,max=2000"`
}

func (r UpdateExamDossierRequest) Apply(mm *m.ExamDossierModel) {
	if r.Name != nil {
		mm.ExamName = strings.TrimSpace(*r.Name)
	}
	if r.Session != nil {
		mm.ExamSession = strings.TrimSpace(*r.Session)
	}
	if r.Notes != nil {
		v := strings.TrimSpace(*r.Notes)
		if v == "" {
			mm.ExamNotes = nil
		} else {
			mm.ExamNotes = &v
		}
	}
}

/* =========================================================
   STATUS TRANSITION
   ========================================================= */

type TransitionExamRequest struct {
	Status string  `json:"exam_status" validate:"required,oneof=en_cours termine en_attente rejete"`
	Result *string `json:"exam_result" validate:"omitempty,max=120"`
	Notes  *string `json:"exam_notes" validate:"omitempty,max=2000"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type ExamDossierResponse struct {
	ExamID    uuid.UUID `json:"exam_id"`
	StudentID uuid.UUID `json:"exam_student_id"`
	Name      string    `json:"exam_name"`
	Session   string    `json:"exam_session"`
	Status    string    `json:"exam_status"`
	Result    *string   `json:"exam_result,omitempty"`
	Notes     *string   `json:"exam_notes,omitempty"`
	CreatedAt time.Time `json:"exam_created_at"`
	UpdatedAt time.Time `json:"exam_updated_at"`
}

func FromExamDossierModel(mm m.ExamDossierModel) ExamDossierResponse {
	return ExamDossierResponse{
		ExamID:    mm.ExamID,
		StudentID: mm.ExamStudentID,
		Name:      mm.ExamName,
		Session:   mm.ExamSession,
		Status:    mm.ExamStatus,
		Result:    mm.ExamResult,
		Notes:     mm.ExamNotes,
		CreatedAt: mm.ExamCreatedAt,
		UpdatedAt: mm.ExamUpdatedAt,
	}
}

func FromExamDossierModels(ms []m.ExamDossierModel) []ExamDossierResponse {
	out := make([]ExamDossierResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromExamDossierModel(mm))
	}
	return out
}
