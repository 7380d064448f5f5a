package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "schooladmin_backend/internals/features/records/discipline/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateDisciplineRequest struct {
	StudentID   uuid.UUID `json:"discipline_student_id" validate:"required"`
	Date        string    `json:"discipline_date" validate:"required,datetime=2006-01-02"`
	Description string    `json:"discipline_description" validate:"required,min=3,max=2000"`
	Sanction    string    `json:"discipline_sanction" validate:"required,oneof=avertissement blame exclusion_temporaire exclusion_definitive travaux_supplementaires retenue"`
}

func (r *CreateDisciplineRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	r.Description = strings.TrimSpace(r.Description)
	r.Sanction = strings.ToLower(strings.TrimSpace(r.Sanction))
}

func (r CreateDisciplineRequest) ToModel() m.DisciplineRecordModel {
	now := time.Now()
	date, _ := time.Parse("2006-01-02", r.Date)
	return m.DisciplineRecordModel{
		DisciplineStudentID:   r.StudentID,
		DisciplineDate:        datatypes.Date(date),
		DisciplineDescription: r.Description,
		DisciplineSanction:    r.Sanction,
		DisciplineStatus:      m.CaseEnCours,
		DisciplineCreatedAt:   now,
		DisciplineUpdatedAt:   now,
	}
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateDisciplineRequest struct {
	Date        *string `json:"discipline_date" validate:"omitempty,datetime=2006-01-02"`
	Description *string `json:"discipline_description" validate:"omitempty,min=3,max=2000"`
	Sanction    *string `json:"discipline_sanction" validate:"omitempty,oneof=avertissement blame exclusion_temporaire exclusion_definitive travaux_supplementaires retenue"`
}

func (r UpdateDisciplineRequest) Apply(mm *m.DisciplineRecordModel) {
	if r.Date != nil {
		if t, err := time.Parse("2006-01-02", strings.TrimSpace(*r.Date)); err == nil {
			mm.DisciplineDate = datatypes.Date(t)
		}
	}
	if r.Description != nil {
		mm.DisciplineDescription = strings.TrimSpace(*r.Description)
	}
	if r.Sanction != nil {
		mm.DisciplineSanction = strings.ToLower(strings.TrimSpace(*r.Sanction))
	}
}

/* =========================================================
   CLOSE
   ========================================================= */

type CloseDisciplineRequest struct {
	Status     string  `json:"discipline_status" validate:"required,oneof=termine rejete"`
	Resolution *string `json:"discipline_resolution" validate:"omitempty,max=2000"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type DisciplineResponse struct {
	DisciplineID uuid.UUID      `json:"discipline_id"`
	StudentID    uuid.UUID      `json:"discipline_student_id"`
	Date         datatypes.Date `json:"discipline_date"`
	Description  string         `json:"discipline_description"`
	Sanction     string         `json:"discipline_sanction"`
	Status       string         `json:"discipline_status"`
	Resolution   *string        `json:"discipline_resolution,omitempty"`
	CreatedAt    time.Time      `json:"discipline_created_at"`
	UpdatedAt    time.Time      `json:"discipline_updated_at"`
}

func FromDisciplineModel(mm m.DisciplineRecordModel) DisciplineResponse {
	return DisciplineResponse{
		DisciplineID: mm.DisciplineID,
		StudentID:    mm.DisciplineStudentID,
		Date:         mm.DisciplineDate,
		Description:  mm.DisciplineDescription,
		Sanction:     mm.DisciplineSanction,
		Status:       mm.DisciplineStatus,
		Resolution:   mm.DisciplineResolution,
		CreatedAt:    mm.DisciplineCreatedAt,
		UpdatedAt:    mm.DisciplineUpdatedAt,
	}
}

func FromDisciplineModels(ms []m.DisciplineRecordModel) []DisciplineResponse {
	out := make([]DisciplineResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromDisciplineModel(mm))
	}
	return out
}
