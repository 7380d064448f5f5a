package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "schooladmin_backend/internals/features/records/enrollments/model"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	recent := now.AddDate(0, -1, 0)
	old := now.AddDate(0, -8, 0)

	tests := []struct {
		name       string
		totalFees  int64
		paidAmount int64
		enrolledAt time.Time
		want       string
	}{
		{"fully paid", 100000, 100000, recent, m.StatusComplete},
		{"overpaid still complete", 100000, 120000, recent, m.StatusComplete},
		{"zero fees counts as complete", 0, 0, recent, m.StatusComplete},
		{"partial payment", 100000, 40000, recent, m.StatusPartial},
		{"no payment recent", 100000, 0, recent, m.StatusPending},
		{"no payment past window", 100000, 0, old, m.StatusExpired},
		// a payment shields the enrollment from expiry, however old
		{"old partial stays partial", 100000, 40000, old, m.StatusPartial},
		{"old fully paid stays complete", 100000, 100000, old, m.StatusComplete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.totalFees, tt.paidAmount, tt.enrolledAt, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Expiry is calendar arithmetic: exactly six months to the day is still
// pending, a second past it is expired.
func TestDeriveStatusWindowBoundary(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	exactly := now.AddDate(0, -6, 0)
	assert.Equal(t, m.StatusPending, DeriveStatus(50000, 0, exactly, now))

	justOver := exactly.Add(-time.Second)
	assert.Equal(t, m.StatusExpired, DeriveStatus(50000, 0, justOver, now))
}

func TestApplyPaymentValidation(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		enr     m.EnrollmentModel
		amount  int64
		wantErr error
	}{
		{
			"zero amount",
			m.EnrollmentModel{EnrollmentTotalFees: 100000, EnrollmentStatus: m.StatusPending},
			0, ErrNonPositiveAmount,
		},
		{
			"negative amount",
			m.EnrollmentModel{EnrollmentTotalFees: 100000, EnrollmentStatus: m.StatusPending},
			-500, ErrNonPositiveAmount,
		},
		{
			"overpay rejected",
			m.EnrollmentModel{EnrollmentTotalFees: 100000, EnrollmentPaidAmount: 40000, EnrollmentStatus: m.StatusPartial},
			70000, ErrAmountExceedsOwed,
		},
		{
			"already complete",
			m.EnrollmentModel{EnrollmentTotalFees: 100000, EnrollmentPaidAmount: 100000, EnrollmentStatus: m.StatusComplete},
			1, ErrEnrollmentComplete,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.enr
			err := ApplyPayment(&tt.enr, tt.amount, now)
			assert.ErrorIs(t, err, tt.wantErr)
			// a rejected installment leaves the enrollment untouched
			assert.Equal(t, before.EnrollmentPaidAmount, tt.enr.EnrollmentPaidAmount)
			assert.Equal(t, before.EnrollmentStatus, tt.enr.EnrollmentStatus)
			assert.Nil(t, tt.enr.EnrollmentLastPayment)
		})
	}
}

// Two installments settle a 100 000 enrollment: 40 000 leaves it
// partial, 60 000 completes it, and nothing more can be booked.
func TestApplyPaymentInstallmentSequence(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	enr := m.EnrollmentModel{
		EnrollmentTotalFees: 100000,
		EnrollmentStatus:    m.StatusPending,
		EnrollmentDate:      now.AddDate(0, -1, 0),
	}

	require.NoError(t, ApplyPayment(&enr, 40000, now))
	assert.Equal(t, int64(40000), enr.EnrollmentPaidAmount)
	assert.Equal(t, m.StatusPartial, enr.EnrollmentStatus)
	require.NotNil(t, enr.EnrollmentLastPayment)

	later := now.Add(48 * time.Hour)
	require.NoError(t, ApplyPayment(&enr, 60000, later))
	assert.Equal(t, int64(100000), enr.EnrollmentPaidAmount)
	assert.Equal(t, m.StatusComplete, enr.EnrollmentStatus)
	assert.Equal(t, later, *enr.EnrollmentLastPayment)

	err := ApplyPayment(&enr, 1, later)
	assert.ErrorIs(t, err, ErrEnrollmentComplete)
	assert.Equal(t, int64(100000), enr.EnrollmentPaidAmount)
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	_, err := RecordPayment(nil, uuid.Nil, 0, time.Now())
	assert.ErrorIs(t, err, ErrNonPositiveAmount)

	_, err = RecordPayment(nil, uuid.Nil, -500, time.Now())
	assert.ErrorIs(t, err, ErrNonPositiveAmount)
}
