package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "schooladmin_backend/internals/features/academics/subjects/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateSubjectRequest struct {
	Name        string  `json:"subject_name" validate:"required,min=1,max=120"`
	Coefficient int     `json:"subject_coefficient" validate:"required,min=1,max=10"`
	Desc        *string `json:"subject_desc"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Desc != nil {
		d := strings.TrimSpace(*r.Desc)
		if d == "" {
			r.Desc = nil
		} else {
			r.Desc = &d
		}
	}
}

func (r CreateSubjectRequest) ToModel() m.SubjectModel {
	now := time.Now()
	return m.SubjectModel{
		SubjectName:        r.Name,
		SubjectCoefficient: r.Coefficient,
		SubjectDesc:        r.Desc,
		SubjectIsActive:    true,
		SubjectCreatedAt:   now,
		SubjectUpdatedAt:   now,
	}
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateSubjectRequest struct {
	Name        *string `json:"subject_name" validate:"omitempty,min=1,max=120"`
	Coefficient *int    `json:"subject_coefficient" validate:"omitempty,min=1,max=10"`
	Desc        *string `json:"subject_desc"`
	IsActive    *bool   `json:"subject_is_active"`
}

func (r UpdateSubjectRequest) Apply(mm *m.SubjectModel) {
	if r.Name != nil {
		mm.SubjectName = strings.TrimSpace(*r.Name)
	}
	if r.Coefficient != nil {
		mm.SubjectCoefficient = *r.Coefficient
	}
	if r.Desc != nil {
		d := strings.TrimSpace(*r.Desc)
		if d == "" {
			mm.SubjectDesc = nil
		} else {
			mm.SubjectDesc = &d
		}
	}
	if r.IsActive != nil {
		mm.SubjectIsActive = *r.IsActive
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type SubjectResponse struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	Name        string    `json:"subject_name"`
	Coefficient int       `json:"subject_coefficient"`
	Desc        *string   `json:"subject_desc,omitempty"`
	IsActive    bool      `json:"subject_is_active"`
	CreatedAt   time.Time `json:"subject_created_at"`
	UpdatedAt   time.Time `json:"subject_updated_at"`
}

func FromSubjectModel(mm m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:   mm.SubjectID,
		Name:        mm.SubjectName,
		Coefficient: mm.SubjectCoefficient,
		Desc:        mm.SubjectDesc,
		IsActive:    mm.SubjectIsActive,
		CreatedAt:   mm.SubjectCreatedAt,
		UpdatedAt:   mm.SubjectUpdatedAt,
	}
}

func FromSubjectModels(ms []m.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromSubjectModel(mm))
	}
	return out
}
