// internal/utils/prng.go
package utils

import (
	"math/rand"

	"go-termite/internal/defs"
)

// WeightedKind is one entry of a weighted unit pick.
type WeightedKind struct {
	Kind   defs.Kind
	Weight int
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Сид 0 заменяется на 1.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = 1
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseWeighted выполняет взвешенный случайный выбор.
// The second result is false for an empty or zero-weight table.
func (s *PRNGService) ChooseWeighted(entries []WeightedKind) (defs.Kind, bool) {
	totalWeight := 0
	for _, entry := range entries {
		if entry.Weight > 0 {
			totalWeight += entry.Weight
		}
	}
	if totalWeight <= 0 {
		return 0, false
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > r {
			return entry.Kind, true
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].Kind, true
}
