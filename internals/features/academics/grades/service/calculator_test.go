package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWeightedAverage(t *testing.T) {
	tests := []struct {
		name  string
		items []WeightedScore
		want  float64
	}{
		{name: "empty list", items: nil, want: 0},
		{
			name:  "zero coefficient sum",
			items: []WeightedScore{{FinalScore: 15, Coefficient: 0}},
			want:  0,
		},
		{
			name:  "single subject",
			items: []WeightedScore{{FinalScore: 12.5, Coefficient: 3}},
			want:  12.5,
		},
		{
			name: "mixed coefficients round to two decimals",
			items: []WeightedScore{
				{FinalScore: 15, Coefficient: 4},
				{FinalScore: 12, Coefficient: 2},
				{FinalScore: 10, Coefficient: 1},
			},
			// (60+24+10)/7 = 13.428571...
			want: 13.43,
		},
		{
			name: "worked example",
			items: []WeightedScore{
				{FinalScore: 14, Coefficient: 5},
				{FinalScore: 13, Coefficient: 2},
			},
			// (70+26)/7 = 13.714285...
			want: 13.71,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeightedAverage(tt.items))
		})
	}
}

func TestMention(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{16.0, "Très Bien"},
		{15.99, "Bien"},
		{14.0, "Bien"},
		{13.99, "Assez Bien"},
		{12.0, "Assez Bien"},
		{11.99, "Passable"},
		{10.0, "Passable"},
		{9.99, "Insuffisant"},
		{0, "Insuffisant"},
		{20, "Très Bien"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Mention(tt.avg), "avg=%v", tt.avg)
	}
}

func TestAppreciation(t *testing.T) {
	assert.Equal(t, "Excellent travail, continuez ainsi!", Appreciation(17.2))
	assert.Equal(t, "Bon travail, quelques efforts encore.", Appreciation(14))
	assert.Equal(t, "Travail satisfaisant, peut mieux faire.", Appreciation(12.5))
	assert.Equal(t, "Travail acceptable, des efforts à fournir.", Appreciation(10))
	assert.Equal(t, "Travail insuffisant, beaucoup d'efforts nécessaires.", Appreciation(8.75))
}

func TestRankClassDenseRanks(t *testing.T) {
	entries := []RankEntry{
		{StudentID: uuid.New(), Matricule: "MAT-004", Average: 11.5},
		{StudentID: uuid.New(), Matricule: "MAT-001", Average: 15.2},
		{StudentID: uuid.New(), Matricule: "MAT-003", Average: 15.2},
		{StudentID: uuid.New(), Matricule: "MAT-002", Average: 17.0},
	}

	ranked := RankClass(entries)

	assert.Len(t, ranked, 4)
	assert.Equal(t, "MAT-002", ranked[0].Matricule)
	assert.Equal(t, 1, ranked[0].Rank)

	// tie at 15.2 shares rank 2, listed by ascending matricule
	assert.Equal(t, "MAT-001", ranked[1].Matricule)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, "MAT-003", ranked[2].Matricule)
	assert.Equal(t, 2, ranked[2].Rank)

	// dense: next distinct average takes rank 3, not 4
	assert.Equal(t, "MAT-004", ranked[3].Matricule)
	assert.Equal(t, 3, ranked[3].Rank)
}

func TestRankClassDoesNotMutateInput(t *testing.T) {
	entries := []RankEntry{
		{Matricule: "B", Average: 10},
		{Matricule: "A", Average: 12},
	}
	_ = RankClass(entries)
	assert.Equal(t, "B", entries[0].Matricule)
	assert.Equal(t, 0, entries[0].Rank)
}

func TestRankClassEmpty(t *testing.T) {
	assert.Empty(t, RankClass(nil))
}

func TestComputeSequenceStats(t *testing.T) {
	s := ComputeSequenceStats([]float64{15.5, 9.25, 10, 12.75})

	assert.Equal(t, 4, s.GradedStudents)
	assert.Equal(t, 11.88, s.ClassAverage) // 47.5/4 = 11.875 -> 11.88
	assert.Equal(t, 15.5, s.HighestAverage)
	assert.Equal(t, 9.25, s.LowestAverage)
	assert.Equal(t, 3, s.PassCount)
	assert.Equal(t, 75.0, s.PassRate)
}

func TestComputeSequenceStatsEmpty(t *testing.T) {
	s := ComputeSequenceStats(nil)
	assert.Equal(t, 0, s.GradedStudents)
	assert.Equal(t, 0.0, s.ClassAverage)
	assert.Equal(t, 0.0, s.PassRate)
}

func TestTrimester(t *testing.T) {
	assert.Equal(t, 1, Trimester(1))
	assert.Equal(t, 1, Trimester(2))
	assert.Equal(t, 2, Trimester(3))
	assert.Equal(t, 2, Trimester(4))
	assert.Equal(t, 3, Trimester(5))
	assert.Equal(t, 3, Trimester(6))
}
