package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "schooladmin_backend/internals/features/records/absences/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateAbsenceRequest struct {
	StudentID uuid.UUID `json:"absence_student_id" validate:"required"`
	Date      string    `json:"absence_date" validate:"required,datetime=2006-01-02"`
	Type      string    `json:"absence_type" validate:"required,oneof=matin apres_midi journee_complete retard"`
}

func (r *CreateAbsenceRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
}

func (r CreateAbsenceRequest) ToModel() m.AbsenceModel {
	now := time.Now()
	date, _ := time.Parse("2006-01-02", r.Date)
	return m.AbsenceModel{
		AbsenceStudentID: r.StudentID,
		AbsenceDate:      datatypes.Date(date),
		AbsenceType:      r.Type,
		AbsenceCreatedAt: now,
		AbsenceUpdatedAt: now,
	}
}

/* =========================================================
   JUSTIFY
   ========================================================= */

type JustifyAbsenceRequest struct {
	Justification string `json:"absence_justification" validate:"required,min=3,max=500"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type AbsenceResponse struct {
	AbsenceID     uuid.UUID      `json:"absence_id"`
	StudentID     uuid.UUID      `json:"absence_student_id"`
	Date          datatypes.Date `json:"absence_date"`
	Type          string         `json:"absence_type"`
	IsJustified   bool           `json:"absence_is_justified"`
	Justification *string        `json:"absence_justification,omitempty"`
	JustifiedAt   *time.Time     `json:"absence_justified_at,omitempty"`
	CreatedAt     time.Time      `json:"absence_created_at"`
}

func FromAbsenceModel(mm m.AbsenceModel) AbsenceResponse {
	return AbsenceResponse{
		AbsenceID:     mm.AbsenceID,
		StudentID:     mm.AbsenceStudentID,
		Date:          mm.AbsenceDate,
		Type:          mm.AbsenceType,
		IsJustified:   mm.AbsenceIsJustified,
		Justification: mm.AbsenceJustification,
		JustifiedAt:   mm.AbsenceJustifiedAt,
		CreatedAt:     mm.AbsenceCreatedAt,
	}
}

func FromAbsenceModels(ms []m.AbsenceModel) []AbsenceResponse {
	out := make([]AbsenceResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromAbsenceModel(mm))
	}
	return out
}

/* =========================================================
   STATISTICS
   ========================================================= */

type AbsenceStatsResponse struct {
	Total            int64 `json:"total_absences"`
	JustifiedCount   int64 `json:"justified_count"`
	UnjustifiedCount int64 `json:"unjustified_count"`
	MorningCount     int64 `json:"morning_count"`
	AfternoonCount   int64 `json:"afternoon_count"`
	FullDayCount     int64 `json:"full_day_count"`
	LateCount        int64 `json:"late_count"`
}
