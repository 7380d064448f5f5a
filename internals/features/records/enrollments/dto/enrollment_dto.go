package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "schooladmin_backend/internals/features/records/enrollments/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateEnrollmentRequest struct {
	StudentID  uuid.UUID `json:"enrollment_student_id" validate:"required"`
	SchoolYear string    `json:"enrollment_school_year" validate:"required,len=9"`
	TotalFees  int64     `json:"enrollment_total_fees" validate:"min=0"`
	Date       *string   `json:"enrollment_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateEnrollmentRequest) Normalize() {
	r.SchoolYear = strings.TrimSpace(r.SchoolYear)
	if r.Date != nil {
		v := strings.TrimSpace(*r.Date)
		if v == "" {
			r.Date = nil
		} else {
			r.Date = &v
		}
	}
}

func (r CreateEnrollmentRequest) ToModel() m.EnrollmentModel {
	now := time.Now()
	enrolledAt := now
	if r.Date != nil {
		if t, err := time.Parse("2006-01-02", *r.Date); err == nil {
			enrolledAt = t
		}
	}
	return m.EnrollmentModel{
		EnrollmentStudentID:       r.StudentID,
		EnrollmentSchoolYear:      r.SchoolYear,
		EnrollmentTotalFees:       r.TotalFees,
		EnrollmentPaidAmount:      0,
		EnrollmentRemainingAmount: r.TotalFees,
		EnrollmentStatus:          m.StatusPending,
		EnrollmentDate:            enrolledAt,
		EnrollmentCreatedAt:       now,
		EnrollmentUpdatedAt:       now,
	}
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateEnrollmentRequest struct {
	SchoolYear *string `json:"enrollment_school_year" validate:"omitempty,len=9"`
	TotalFees  *int64  `json:"enrollment_total_fees" validate:"omitempty,min=0"`
	Date       *string `json:"enrollment_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r UpdateEnrollmentRequest) Apply(mm *m.EnrollmentModel) {
	if r.SchoolYear != nil {
		mm.EnrollmentSchoolYear = strings.TrimSpace(*r.SchoolYear)
	}
	if r.TotalFees != nil {
		mm.EnrollmentTotalFees = *r.TotalFees
	}
	if r.Date != nil {
		if t, err := time.Parse("2006-01-02", strings.TrimSpace(*r.Date)); err == nil {
			mm.EnrollmentDate = t
		}
	}
}

/* =========================================================
   PAYMENT
   ========================================================= */

type RecordPaymentRequest struct {
	Amount int64 `json:"payment_amount" validate:"required"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type EnrollmentResponse struct {
	EnrollmentID    uuid.UUID  `json:"enrollment_id"`
	StudentID       uuid.UUID  `json:"enrollment_student_id"`
	SchoolYear      string     `json:"enrollment_school_year"`
	TotalFees       int64      `json:"enrollment_total_fees"`
	PaidAmount      int64      `json:"enrollment_paid_amount"`
	RemainingAmount int64      `json:"enrollment_remaining_amount"`
	Status          string     `json:"enrollment_status"`
	Date            time.Time  `json:"enrollment_date"`
	LastPayment     *time.Time `json:"enrollment_last_payment,omitempty"`
	CreatedAt       time.Time  `json:"enrollment_created_at"`
	UpdatedAt       time.Time  `json:"enrollment_updated_at"`
}

func FromEnrollmentModel(mm m.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:    mm.EnrollmentID,
		StudentID:       mm.EnrollmentStudentID,
		SchoolYear:      mm.EnrollmentSchoolYear,
		TotalFees:       mm.EnrollmentTotalFees,
		PaidAmount:      mm.EnrollmentPaidAmount,
		RemainingAmount: mm.EnrollmentRemainingAmount,
		Status:          mm.EnrollmentStatus,
		Date:            mm.EnrollmentDate,
		LastPayment:     mm.EnrollmentLastPayment,
		CreatedAt:       mm.EnrollmentCreatedAt,
		UpdatedAt:       mm.EnrollmentUpdatedAt,
	}
}

func FromEnrollmentModels(ms []m.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromEnrollmentModel(mm))
	}
	return out
}

/* =========================================================
   STATISTICS
   ========================================================= */

type EnrollmentStatsResponse struct {
	SchoolYear     string `json:"school_year,omitempty"`
	Total          int64  `json:"total_enrollments"`
	PendingCount   int64  `json:"pending_count"`
	PartialCount   int64  `json:"partial_count"`
	CompleteCount  int64  `json:"complete_count"`
	ExpiredCount   int64  `json:"expired_count"`
	ExpectedFees   int64  `json:"expected_fees"`
	CollectedFees  int64  `json:"collected_fees"`
	OutstandingFee int64  `json:"outstanding_fees"`
}
