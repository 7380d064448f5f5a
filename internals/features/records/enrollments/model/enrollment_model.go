// internals/features/records/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment payment status values
const (
	StatusPending  = "pending"
	StatusPartial  = "partial"
	StatusComplete = "complete"
	StatusExpired  = "expired"
)

// NOTE:
// - amounts are whole francs, no decimals
// - enrollment_remaining_amount is stored and recomputed in BeforeSave so
//   list queries never re-derive it
// - one enrollment per (student, school_year)
type EnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`

	EnrollmentStudentID  uuid.UUID `gorm:"column:enrollment_student_id;type:uuid;not null;index;uniqueIndex:uq_enrollments_student_year" json:"enrollment_student_id"`
	EnrollmentSchoolYear string    `gorm:"column:enrollment_school_year;type:varchar(9);not null;uniqueIndex:uq_enrollments_student_year" json:"enrollment_school_year"`

	EnrollmentTotalFees       int64 `gorm:"column:enrollment_total_fees;not null;check:enrollment_total_fees >= 0" json:"enrollment_total_fees"`
	EnrollmentPaidAmount      int64 `gorm:"column:enrollment_paid_amount;not null;default:0;check:enrollment_paid_amount >= 0" json:"enrollment_paid_amount"`
	EnrollmentRemainingAmount int64 `gorm:"column:enrollment_remaining_amount;not null;default:0;check:enrollment_remaining_amount >= 0" json:"enrollment_remaining_amount"`

	EnrollmentStatus string `gorm:"column:enrollment_status;type:varchar(10);not null;default:'pending';check:enrollment_status IN ('pending','partial','complete','expired')" json:"enrollment_status"`

	EnrollmentDate        time.Time  `gorm:"column:enrollment_date;not null" json:"enrollment_date"`
	EnrollmentLastPayment *time.Time `gorm:"column:enrollment_last_payment" json:"enrollment_last_payment,omitempty"`

	EnrollmentCreatedAt time.Time      `gorm:"column:enrollment_created_at;not null;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time      `gorm:"column:enrollment_updated_at;not null;autoUpdateTime" json:"enrollment_updated_at"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index" json:"enrollment_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

// BeforeSave keeps the stored remaining amount consistent with the totals.
func (m *EnrollmentModel) BeforeSave(tx *gorm.DB) error {
	rem := m.EnrollmentTotalFees - m.EnrollmentPaidAmount
	if rem < 0 {
		rem = 0
	}
	m.EnrollmentRemainingAmount = rem
	return nil
}
