package conquest

import (
	"testing"
	"time"

	"tabebui/internal/model"

	"github.com/stretchr/testify/assert"
)

func badgeCodes(badges []model.Badge) []string {
	codes := make([]string, 0, len(badges))
	for _, b := range badges {
		codes = append(codes, b.Code)
	}
	return codes
}

func TestEarnedBadges(t *testing.T) {
	catalog := mixedCatalog()

	t.Run("記録なし", func(t *testing.T) {
		report := ComputeProgress(catalog, nil, AllAnimals)
		assert.Empty(t, EarnedBadges(report, nil, refWednesday))
	})

	t.Run("はじめの一歩と今日の記録", func(t *testing.T) {
		records := []model.UserRecord{record(1, 1, refWednesday.Add(-time.Hour), nil)}
		report := ComputeProgress(catalog, records, AllAnimals)
		assert.Equal(t, []string{"first_step", "today"}, badgeCodes(EarnedBadges(report, records, refWednesday)))
	})

	t.Run("豚の全部位とレア部位", func(t *testing.T) {
		old := time.Date(2024, 1, 1, 12, 0, 0, 0, jst)
		records := []model.UserRecord{
			record(1, 101, old, nil),
			record(2, 102, old, nil),
			record(3, 202, old, nil),
		}
		report := ComputeProgress(catalog, records, AllAnimals)
		assert.Equal(t, []string{"first_step", "pork_master", "adventurer"}, badgeCodes(EarnedBadges(report, records, refWednesday)))
	})

	t.Run("全制覇", func(t *testing.T) {
		var records []model.UserRecord
		old := time.Date(2024, 1, 1, 12, 0, 0, 0, jst)
		for i, p := range catalog {
			records = append(records, record(i+1, p.ID, old, nil))
		}
		report := ComputeProgress(catalog, records, AllAnimals)
		codes := badgeCodes(EarnedBadges(report, records, refWednesday))
		assert.Subset(t, codes, []string{"first_step", "part_collector", "beef_master", "pork_master", "chicken_master", "conqueror", "adventurer"})
		assert.NotContains(t, codes, "part_mania")
	})

	t.Run("グルメ", func(t *testing.T) {
		var records []model.UserRecord
		old := time.Date(2024, 1, 1, 12, 0, 0, 0, jst)
		for i := 0; i < 10; i++ {
			r := record(i+1, 4, old, nil)
			r.Rating = intPtr(4 + i%2)
			records = append(records, r)
		}
		report := ComputeProgress(catalog, records, AllAnimals)
		assert.Contains(t, badgeCodes(EarnedBadges(report, records, refWednesday)), "gourmet")

		records[0].Rating = intPtr(3)
		assert.NotContains(t, badgeCodes(EarnedBadges(report, records, refWednesday)), "gourmet")
	})
}

func TestConsecutiveDays(t *testing.T) {
	at := func(day int) time.Time { return time.Date(2024, 6, day, 12, 0, 0, 0, jst) }
	tests := []struct {
		name string
		days []int
		want int
	}{
		{name: "記録なし", days: nil, want: 0},
		{name: "今日まで3日連続", days: []int{3, 4, 5}, want: 3},
		{name: "昨日まで3日連続", days: []int{2, 3, 4}, want: 3},
		{name: "一昨日で途切れている", days: []int{1, 2, 3}, want: 0},
		{name: "間が空いている", days: []int{1, 2, 4, 5}, want: 2},
		{name: "同じ日に複数件", days: []int{5, 5, 4}, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []model.UserRecord
			for i, d := range tt.days {
				records = append(records, record(i+1, 1, at(d), nil))
			}
			assert.Equal(t, tt.want, ConsecutiveDays(records, refWednesday))
		})
	}
}
