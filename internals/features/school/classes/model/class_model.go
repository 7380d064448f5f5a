// internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Primary-school levels.
const (
	LevelMaternelle = "maternelle"
	LevelCP         = "cp"
	LevelCE1        = "ce1"
	LevelCE2        = "ce2"
	LevelCM1        = "cm1"
	LevelCM2        = "cm2"
)

// NOTE:
// - class_headcount is maintained by student create/transfer/deactivate,
//   never set directly from a request
// - class_max_capacity defaults to 50 (source schema default)
type ClassModel struct {
	ClassID        uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassSectionID uuid.UUID `gorm:"column:class_section_id;type:uuid;not null;index" json:"class_section_id"`

	ClassName  string `gorm:"column:class_name;type:varchar(120);not null" json:"class_name"`
	ClassLevel string `gorm:"column:class_level;type:varchar(20);not null;check:class_level IN ('maternelle','cp','ce1','ce2','cm1','cm2')" json:"class_level"`

	ClassHeadcount   int `gorm:"column:class_headcount;not null;default:0;check:class_headcount >= 0" json:"class_headcount"`
	ClassMaxCapacity int `gorm:"column:class_max_capacity;not null;default:50;check:class_max_capacity > 0" json:"class_max_capacity"`

	ClassIsActive  bool           `gorm:"column:class_is_active;not null;default:true" json:"class_is_active"`
	ClassCreatedAt time.Time      `gorm:"column:class_created_at;not null;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;not null;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }
