// internals/features/records/enrollments/service/payment.go
//
// Fee payment state machine. DeriveStatus is the single source of truth
// for an enrollment's payment status; everything that mutates amounts
// must re-derive through it.
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "schooladmin_backend/internals/features/records/enrollments/model"
)

// Payment validation errors, mapped to HTTP codes in the controller.
var (
	ErrNonPositiveAmount  = errors.New("payment amount must be greater than zero")
	ErrAmountExceedsOwed  = errors.New("payment amount exceeds remaining fees")
	ErrEnrollmentComplete = errors.New("enrollment fees are already fully paid")
)

// expiryMonths is how many calendar months a pending enrollment may sit
// without any payment before it counts as expired.
const expiryMonths = 6

// DeriveStatus resolves the payment status of an enrollment. The checks
// are strictly ordered: fully paid wins over everything, any payment at
// all wins over expiry, and only an untouched enrollment can expire.
func DeriveStatus(totalFees, paidAmount int64, enrolledAt, now time.Time) string {
	if paidAmount >= totalFees {
		return m.StatusComplete
	}
	if paidAmount > 0 {
		return m.StatusPartial
	}
	if enrolledAt.AddDate(0, expiryMonths, 0).Before(now) {
		return m.StatusExpired
	}
	return m.StatusPending
}

// ApplyPayment validates an installment against the enrollment and, on
// success, mutates its amounts and status in place. Persistence is the
// caller's job.
func ApplyPayment(enr *m.EnrollmentModel, amount int64, now time.Time) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if enr.EnrollmentStatus == m.StatusComplete {
		return ErrEnrollmentComplete
	}
	if amount > enr.EnrollmentTotalFees-enr.EnrollmentPaidAmount {
		return ErrAmountExceedsOwed
	}

	enr.EnrollmentPaidAmount += amount
	enr.EnrollmentLastPayment = &now
	enr.EnrollmentStatus = DeriveStatus(enr.EnrollmentTotalFees, enr.EnrollmentPaidAmount, enr.EnrollmentDate, now)
	return nil
}

// RecordPayment applies an installment to an enrollment inside its own
// transaction, locking the row so two cashiers cannot double-book the
// same remaining balance. Returns the refreshed enrollment.
func RecordPayment(db *gorm.DB, enrollmentID uuid.UUID, amount int64, now time.Time) (*m.EnrollmentModel, error) {
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	var enr m.EnrollmentModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("enrollment_id = ?", enrollmentID).
			First(&enr).Error; err != nil {
			return err
		}

		if err := ApplyPayment(&enr, amount, now); err != nil {
			return err
		}
		return tx.Save(&enr).Error
	})
	if err != nil {
		return nil, err
	}
	return &enr, nil
}
