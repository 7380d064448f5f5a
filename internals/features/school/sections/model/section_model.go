// internals/features/school/sections/model/section_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Section types mirror the school's language streams.
const (
	SectionTypeFrancophone = "francophone"
	SectionTypeAnglophone  = "anglophone"
	SectionTypeBilingual   = "bilingual"
)

type SectionModel struct {
	SectionID uuid.UUID `gorm:"column:section_id;type:uuid;default:gen_random_uuid();primaryKey" json:"section_id"`

	SectionName string  `gorm:"column:section_name;type:varchar(120);not null;uniqueIndex:uq_sections_name" json:"section_name"`
	SectionDesc *string `gorm:"column:section_desc;type:text" json:"section_desc,omitempty"`
	SectionType string  `gorm:"column:section_type;type:varchar(20);not null;check:section_type IN ('francophone','anglophone','bilingual')" json:"section_type"`

	SectionIsActive  bool           `gorm:"column:section_is_active;not null;default:true" json:"section_is_active"`
	SectionCreatedAt time.Time      `gorm:"column:section_created_at;not null;autoCreateTime" json:"section_created_at"`
	SectionUpdatedAt time.Time      `gorm:"column:section_updated_at;not null;autoUpdateTime" json:"section_updated_at"`
	SectionDeletedAt gorm.DeletedAt `gorm:"column:section_deleted_at;index" json:"section_deleted_at,omitempty"`
}

func (SectionModel) TableName() string { return "sections" }
