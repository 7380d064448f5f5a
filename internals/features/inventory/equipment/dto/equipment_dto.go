package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "schooladmin_backend/internals/features/inventory/equipment/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateEquipmentRequest struct {
	Name         string  `json:"equipment_name" validate:"required,min=1,max=120"`
	Category     string  `json:"equipment_category" validate:"required,min=2,max=80"`
	Location     *string `json:"equipment_location" validate:"omitempty,max=120"`
	Quantity     *int    `json:"equipment_quantity" validate:"omitempty,min=0"`
	UnitPrice    int64   `json:"equipment_unit_price" validate:"min=0"`
	Condition    *string `json:"equipment_condition" validate:"omitempty,oneof=neuf bon moyen mauvais hors_service"`
	PurchaseDate *string `json:"equipment_purchase_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateEquipmentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	if r.Location != nil {
		v := strings.TrimSpace(*r.Location)
		if v == "" {
			r.Location = nil
		} else {
			r.Location = &v
		}
	}
	if r.Condition != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Condition))
		if v == "" {
			r.Condition = nil
		} else {
			r.Condition = &v
		}
	}
	if r.PurchaseDate != nil {
		v := strings.TrimSpace(*r.PurchaseDate)
		if v == "" {
			r.PurchaseDate = nil
		} else {
			r.PurchaseDate = &v
		}
	}
}

func (r CreateEquipmentRequest) ToModel() m.EquipmentModel {
	now := time.Now()
	mm := m.EquipmentModel{
		EquipmentName:      r.Name,
		EquipmentCategory:  r.Category,
		EquipmentLocation:  r.Location,
		EquipmentQuantity:  1,
		EquipmentUnitPrice: r.UnitPrice,
		EquipmentCondition: m.ConditionBon,
		EquipmentCreatedAt: now,
		EquipmentUpdatedAt: now,
	}
	if r.Quantity != nil {
		mm.EquipmentQuantity = *r.Quantity
	}
	if r.Condition != nil {
		mm.EquipmentCondition = *r.Condition
	}
	if r.PurchaseDate != nil {
		if t, err := time.Parse("2006-01-02", *r.PurchaseDate); err == nil {
			d := datatypes.Date(t)
			mm.EquipmentPurchaseDate = &d
		}
	}
	return mm
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateEquipmentRequest struct {
	Name         *string `json:"equipment_name" validate:"omitempty,min=1,max=120"`
	Category     *string `json:"equipment_category" validate:"omitempty,min=2,max=80"`
	Location     *string `json:"equipment_location" validate:"omitempty,max=120"`
	Quantity     *int    `json:"equipment_quantity" validate:"omitempty,min=0"`
	UnitPrice    *int64  `json:"equipment_unit_price" validate:"omitempty,min=0"`
	PurchaseDate *string `json:"equipment_purchase_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r UpdateEquipmentRequest) Apply(mm *m.EquipmentModel) {
	if r.Name != nil {
		mm.EquipmentName = strings.TrimSpace(*r.Name)
	}
	if r.Category != nil {
		mm.EquipmentCategory = strings.ToLower(strings.TrimSpace(*r.Category))
	}
	if r.Location != nil {
		v := strings.TrimSpace(*r.Location)
		if v == "" {
			mm.EquipmentLocation = nil
		} else {
			mm.EquipmentLocation = &v
		}
	}
	if r.Quantity != nil {
		mm.EquipmentQuantity = *r.Quantity
	}
	if r.UnitPrice != nil {
		mm.EquipmentUnitPrice = *r.UnitPrice
	}
	if r.PurchaseDate != nil {
		if t, err := time.Parse("2006-01-02", strings.TrimSpace(*r.PurchaseDate)); err == nil {
			d := datatypes.Date(t)
			mm.EquipmentPurchaseDate = &d
		}
	}
}

/* =========================================================
   CONDITION CHANGE
   ========================================================= */

type ChangeConditionRequest struct {
	Condition string `json:"equipment_condition" validate:"required,oneof=neuf bon moyen mauvais hors_service"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type EquipmentResponse struct {
	EquipmentID  uuid.UUID       `json:"equipment_id"`
	Name         string          `json:"equipment_name"`
	Category     string          `json:"equipment_category"`
	Location     *string         `json:"equipment_location,omitempty"`
	Quantity     int             `json:"equipment_quantity"`
	UnitPrice    int64           `json:"equipment_unit_price"`
	Condition    string          `json:"equipment_condition"`
	PurchaseDate *datatypes.Date `json:"equipment_purchase_date,omitempty"`
	CreatedAt    time.Time       `json:"equipment_created_at"`
	UpdatedAt    time.Time       `json:"equipment_updated_at"`
}

func FromEquipmentModel(mm m.EquipmentModel) EquipmentResponse {
	return EquipmentResponse{
		EquipmentID:  mm.EquipmentID,
		Name:         mm.EquipmentName,
		Category:     mm.EquipmentCategory,
		Location:     mm.EquipmentLocation,
		Quantity:     mm.EquipmentQuantity,
		UnitPrice:    mm.EquipmentUnitPrice,
		Condition:    mm.EquipmentCondition,
		PurchaseDate: mm.EquipmentPurchaseDate,
		CreatedAt:    mm.EquipmentCreatedAt,
		UpdatedAt:    mm.EquipmentUpdatedAt,
	}
}

func FromEquipmentModels(ms []m.EquipmentModel) []EquipmentResponse {
	out := make([]EquipmentResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromEquipmentModel(mm))
	}
	return out
}

/* =========================================================
   STATISTICS
   ========================================================= */

type EquipmentStatsResponse struct {
	TotalItems       int64 `json:"total_items"`
	TotalUnits       int64 `json:"total_units"`
	InventoryValue   int64 `json:"inventory_value"`
	NeufCount        int64 `json:"neuf_count"`
	BonCount         int64 `json:"bon_count"`
	MoyenCount       int64 `json:"moyen_count"`
	MauvaisCount     int64 `json:"mauvais_count"`
	HorsServiceCount int64 `json:"hors_service_count"`
}
