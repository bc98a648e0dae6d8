package prize

import (
	"sort"

	"github.com/KirkDiggler/fortune/internal/models"
)

// sortByPosition orders prizes the way the wheel lays them out
func sortByPosition(prizes []*models.Prize) {
	sort.SliceStable(prizes, func(i, j int) bool {
		if prizes[i].Position != prizes[j].Position {
			return prizes[i].Position < prizes[j].Position
		}
		return prizes[i].ID < prizes[j].ID
	})
}
