// internals/features/academics/grades/service/calculator.go
//
// Pure score arithmetic for bulletins and class rankings. Everything here
// is side-effect free so the controller can feed it straight from queries
// and the tests can feed it literals.
package service

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// WeightedScore is one subject line entering an average.
type WeightedScore struct {
	FinalScore  float64
	Coefficient int
}

// round2 keeps all published scores at two decimals.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// WeightedAverage computes sum(final*coeff)/sum(coeff) rounded to two
// decimals. An empty list or an all-zero coefficient sum yields 0.
func WeightedAverage(items []WeightedScore) float64 {
	var sum float64
	var coeffs int
	for _, it := range items {
		sum += it.FinalScore * float64(it.Coefficient)
		coeffs += it.Coefficient
	}
	if coeffs == 0 {
		return 0
	}
	return round2(sum / float64(coeffs))
}

// Mention maps an average on the 0..20 scale to its official label.
func Mention(avg float64) string {
	switch {
	case avg >= 16:
		return "Très Bien"
	case avg >= 14:
		return "Bien"
	case avg >= 12:
		return "Assez Bien"
	case avg >= 10:
		return "Passable"
	default:
		return "Insuffisant"
	}
}

// Appreciation returns the teacher remark printed under the average,
// banded the same way as Mention.
func Appreciation(avg float64) string {
	switch {
	case avg >= 16:
		return "Excellent travail, continuez ainsi!"
	case avg >= 14:
		return "Bon travail, quelques efforts encore."
	case avg >= 12:
		return "Travail satisfaisant, peut mieux faire."
	case avg >= 10:
		return "Travail acceptable, des efforts à fournir."
	default:
		return "Travail insuffisant, beaucoup d'efforts nécessaires."
	}
}

// RankEntry is one student in a class ranking.
type RankEntry struct {
	StudentID uuid.UUID `json:"student_id"`
	Matricule string    `json:"student_matricule"`
	FullName  string    `json:"student_full_name"`
	Average   float64   `json:"average"`
	Rank      int       `json:"rank"`
}

// RankClass orders entries by average descending and assigns dense ranks:
// equal averages share a rank and the next distinct average takes rank+1.
// Ties are listed by ascending matricule. Students with no grades must be
// filtered out by the caller before ranking.
func RankClass(entries []RankEntry) []RankEntry {
	out := make([]RankEntry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Average != out[j].Average {
			return out[i].Average > out[j].Average
		}
		return out[i].Matricule < out[j].Matricule
	})

	rank := 0
	prev := math.Inf(1)
	for i := range out {
		if out[i].Average != prev {
			rank++
			prev = out[i].Average
		}
		out[i].Rank = rank
	}
	return out
}

// SequenceStats summarizes one class over one sequence.
type SequenceStats struct {
	GradedStudents int     `json:"graded_students"`
	ClassAverage   float64 `json:"class_average"`
	HighestAverage float64 `json:"highest_average"`
	LowestAverage  float64 `json:"lowest_average"`
	PassCount      int     `json:"pass_count"`
	PassRate       float64 `json:"pass_rate"`
}

// ComputeSequenceStats aggregates already-computed student averages.
// Pass means average >= 10. PassRate is a 0..100 percentage, two decimals.
func ComputeSequenceStats(averages []float64) SequenceStats {
	s := SequenceStats{}
	if len(averages) == 0 {
		return s
	}
	s.GradedStudents = len(averages)
	s.HighestAverage = averages[0]
	s.LowestAverage = averages[0]
	var sum float64
	for _, a := range averages {
		sum += a
		if a > s.HighestAverage {
			s.HighestAverage = a
		}
		if a < s.LowestAverage {
			s.LowestAverage = a
		}
		if a >= 10 {
			s.PassCount++
		}
	}
	s.ClassAverage = round2(sum / float64(len(averages)))
	s.PassRate = round2(float64(s.PassCount) / float64(len(averages)) * 100)
	return s
}

// Trimester maps a sequence (1..6) to its trimester (1..3).
func Trimester(sequence int) int {
	return (sequence + 1) / 2
}
