package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "schooladmin_backend/internals/features/school/classes/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateClassRequest struct {
	SectionID   uuid.UUID `json:"class_section_id" validate:"required"`
	Name        string    `json:"class_name" validate:"required,min=1,max=120"`
	Level       string    `json:"class_level" validate:"required,oneof=maternelle cp ce1 ce2 cm1 cm2"`
	MaxCapacity *int      `json:"class_max_capacity" validate:"omitempty,min=1,max=200"`
}

func (r *CreateClassRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Level = strings.ToLower(strings.TrimSpace(r.Level))
}

func (r CreateClassRequest) ToModel() m.ClassModel {
	now := time.Now()
	mm := m.ClassModel{
		ClassSectionID:   r.SectionID,
		ClassName:        r.Name,
		ClassLevel:       r.Level,
		ClassHeadcount:   0,
		ClassMaxCapacity: 50,
		ClassIsActive:    true,
		ClassCreatedAt:   now,
		ClassUpdatedAt:   now,
	}
	if r.MaxCapacity != nil {
		mm.ClassMaxCapacity = *r.MaxCapacity
	}
	return mm
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateClassRequest struct {
	SectionID   *uuid.UUID `json:"class_section_id"`
	Name        *string    `json:"class_name" validate:"omitempty,min=1,max=120"`
	Level       *string    `json:"class_level" validate:"omitempty,oneof=maternelle cp ce1 ce2 cm1 cm2"`
	MaxCapacity *int       `json:"class_max_capacity" validate:"omitempty,min=1,max=200"`
	IsActive    *bool      `json:"class_is_active"`
}

func (r UpdateClassRequest) Apply(mm *m.ClassModel) {
	if r.SectionID != nil {
		mm.ClassSectionID = *r.SectionID
	}
	if r.Name != nil {
		mm.ClassName = strings.TrimSpace(*r.Name)
	}
	if r.Level != nil {
		mm.ClassLevel = strings.ToLower(strings.TrimSpace(*r.Level))
	}
	if r.MaxCapacity != nil {
		mm.ClassMaxCapacity = *r.MaxCapacity
	}
	if r.IsActive != nil {
		mm.ClassIsActive = *r.IsActive
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type ClassResponse struct {
	ClassID     uuid.UUID `json:"class_id"`
	SectionID   uuid.UUID `json:"class_section_id"`
	Name        string    `json:"class_name"`
	Level       string    `json:"class_level"`
	Headcount   int       `json:"class_headcount"`
	MaxCapacity int       `json:"class_max_capacity"`
	IsActive    bool      `json:"class_is_active"`
	CreatedAt   time.Time `json:"class_created_at"`
	UpdatedAt   time.Time `json:"class_updated_at"`
}

func FromClassModel(mm m.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:     mm.ClassID,
		SectionID:   mm.ClassSectionID,
		Name:        mm.ClassName,
		Level:       mm.ClassLevel,
		Headcount:   mm.ClassHeadcount,
		MaxCapacity: mm.ClassMaxCapacity,
		IsActive:    mm.ClassIsActive,
		CreatedAt:   mm.ClassCreatedAt,
		UpdatedAt:   mm.ClassUpdatedAt,
	}
}

func FromClassModels(ms []m.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromClassModel(mm))
	}
	return out
}
