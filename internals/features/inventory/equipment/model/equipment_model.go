// internals/features/inventory/equipment/model/equipment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Equipment condition values
const (
	ConditionNeuf        = "neuf"
	ConditionBon         = "bon"
	ConditionMoyen       = "moyen"
	ConditionMauvais     = "mauvais"
	ConditionHorsService = "hors_service"
)

type EquipmentModel struct {
	EquipmentID uuid.UUID `gorm:"column:equipment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"equipment_id"`

	EquipmentName     string  `gorm:"column:equipment_name;type:varchar(120);not null" json:"equipment_name"`
	EquipmentCategory string  `gorm:"column:equipment_category;type:varchar(80);not null;index" json:"equipment_category"`
	EquipmentLocation *string `gorm:"column:equipment_location;type:varchar(120)" json:"equipment_location,omitempty"`

	EquipmentQuantity  int   `gorm:"column:equipment_quantity;not null;default:1;check:equipment_quantity >= 0" json:"equipment_quantity"`
	EquipmentUnitPrice int64 `gorm:"column:equipment_unit_price;not null;default:0;check:equipment_unit_price >= 0" json:"equipment_unit_price"`

	EquipmentCondition    string          `gorm:"column:equipment_condition;type:varchar(15);not null;default:'bon';check:equipment_condition IN ('neuf','bon','moyen','mauvais','hors_service')" json:"equipment_condition"`
	EquipmentPurchaseDate *datatypes.Date `gorm:"column:equipment_purchase_date" json:"equipment_purchase_date,omitempty"`

	EquipmentCreatedAt time.Time      `gorm:"column:equipment_created_at;not null;autoCreateTime" json:"equipment_created_at"`
	EquipmentUpdatedAt time.Time      `gorm:"column:equipment_updated_at;not null;autoUpdateTime" json:"equipment_updated_at"`
	EquipmentDeletedAt gorm.DeletedAt `gorm:"column:equipment_deleted_at;index" json:"equipment_deleted_at,omitempty"`
}

func (EquipmentModel) TableName() string { return "equipment" }
