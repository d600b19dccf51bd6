package usecase

import (
	"iter"
	"strings"

	"taller_moto/internal/domain/entities"
)

// FilterBikes yields the bikes whose plate or brand contains query as a
// case-insensitive substring, preserving collection order. The sequence is
// lazy and restartable, so it can be re-run on every keystroke without any
// backend round-trip. An empty query yields the whole collection.
func FilterBikes(bikes []entities.Bike, query string) iter.Seq[entities.Bike] {
	q := strings.ToLower(strings.TrimSpace(query))
	return func(yield func(entities.Bike) bool) {
		for _, bike := range bikes {
			if q != "" &&
				!strings.Contains(strings.ToLower(bike.Placa), q) &&
				!strings.Contains(strings.ToLower(bike.Brand), q) {
				continue
			}
			if !yield(bike) {
				return
			}
		}
	}
}
