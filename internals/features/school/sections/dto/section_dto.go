package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "schooladmin_backend/internals/features/school/sections/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateSectionRequest struct {
	Name string  `json:"section_name" validate:"required,min=1,max=120"`
	Desc *string `json:"section_desc"`
	Type string  `json:"section_type" validate:"required,oneof=francophone anglophone bilingual"`
}

func (r *CreateSectionRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	if r.Desc != nil {
		d := strings.TrimSpace(*r.Desc)
		if d == "" {
			r.Desc = nil
		} else {
			r.Desc = &d
		}
	}
}

func (r CreateSectionRequest) ToModel() m.SectionModel {
	now := time.Now()
	return m.SectionModel{
		SectionName:      r.Name,
		SectionDesc:      r.Desc,
		SectionType:      r.Type,
		SectionIsActive:  true,
		SectionCreatedAt: now,
		SectionUpdatedAt: now,
	}
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateSectionRequest struct {
	Name     *string `json:"section_name" validate:"omitempty,min=1,max=120"`
	Desc     *string `json:"section_desc"`
	Type     *string `json:"section_type" validate:"omitempty,oneof=francophone anglophone bilingual"`
	IsActive *bool   `json:"section_is_active"`
}

func (r UpdateSectionRequest) Apply(mm *m.SectionModel) {
	if r.Name != nil {
		mm.SectionName = strings.TrimSpace(*r.Name)
	}
	if r.Desc != nil {
		d := strings.TrimSpace(*r.Desc)
		if d == "" {
			mm.SectionDesc = nil
		} else {
			mm.SectionDesc = &d
		}
	}
	if r.Type != nil {
		mm.SectionType = strings.ToLower(strings.TrimSpace(*r.Type))
	}
	if r.IsActive != nil {
		mm.SectionIsActive = *r.IsActive
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type SectionResponse struct {
	SectionID uuid.UUID `json:"section_id"`
	Name      string    `json:"section_name"`
	Desc      *string   `json:"section_desc,omitempty"`
	Type      string    `json:"section_type"`
	IsActive  bool      `json:"section_is_active"`
	CreatedAt time.Time `json:"section_created_at"`
	UpdatedAt time.Time `json:"section_updated_at"`
}

func FromSectionModel(mm m.SectionModel) SectionResponse {
	return SectionResponse{
		SectionID: mm.SectionID,
		Name:      mm.SectionName,
		Desc:      mm.SectionDesc,
		Type:      mm.SectionType,
		IsActive:  mm.SectionIsActive,
		CreatedAt: mm.SectionCreatedAt,
		UpdatedAt: mm.SectionUpdatedAt,
	}
}

func FromSectionModels(ms []m.SectionModel) []SectionResponse {
	out := make([]SectionResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromSectionModel(mm))
	}
	return out
}
