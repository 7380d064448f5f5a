// internals/features/records/discipline/model/discipline_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Sanction values
const (
	SanctionAvertissement        = "avertissement"
	SanctionBlame                = "blame"
	SanctionExclusionTemporaire  = "exclusion_temporaire"
	SanctionExclusionDefinitive  = "exclusion_definitive"
	SanctionTravauxSupplementair = "travaux_supplementaires"
	SanctionRetenue              = "retenue"
)

// Case state values
const (
	CaseEnCours   = "en_cours"
	CaseTermine   = "termine"
	CaseEnAttente = "en_attente"
	CaseRejete    = "rejete"
)

type DisciplineRecordModel struct {
	DisciplineID uuid.UUID `gorm:"column:discipline_id;type:uuid;default:gen_random_uuid();primaryKey" json:"discipline_id"`

	DisciplineStudentID uuid.UUID `gorm:"column:discipline_student_id;type:uuid;not null;index" json:"discipline_student_id"`

	DisciplineDate        datatypes.Date `gorm:"column:discipline_date;not null" json:"discipline_date"`
	DisciplineDescription string         `gorm:"column:discipline_description;type:text;not null" json:"discipline_description"`
	DisciplineSanction    string         `gorm:"column:discipline_sanction;type:varchar(30);not null;check:discipline_sanction IN ('avertissement','blame','exclusion_temporaire','exclusion_definitive','travaux_supplementaires','retenue')" json:"discipline_sanction"`

	DisciplineStatus     string  `gorm:"column:discipline_status;type:varchar(15);not null;default:'en_cours';check:discipline_status IN ('en_cours','termine','en_attente','rejete')" json:"discipline_status"`
	DisciplineResolution *string `gorm:"column:discipline_resolution;type:text" json:"discipline_resolution,omitempty"`

	DisciplineCreatedAt time.Time `gorm:"column:discipline_created_at;not null;autoCreateTime" json:"discipline_created_at"`
	DisciplineUpdatedAt time.Time `gorm:"column:discipline_updated_at;not null;autoUpdateTime" json:"discipline_updated_at"`
}

func (DisciplineRecordModel) TableName() string { return "discipline_records" }
