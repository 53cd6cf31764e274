package conquest

import (
	"sort"
	"time"

	"tabebui/internal/model"
)

const (
	// RecentLimit はダッシュボードに載せる最近の記録の件数
	RecentLimit      = 5
	streakWindowDays = 7
)

// ComputeDashboard はダッシュボード用の集計を行う。
// 週・日付の境界はすべて ref のロケーションで判定する。
func ComputeDashboard(catalog []model.AnimalPart, records []model.UserRecord, ref time.Time) *model.DashboardSummary {
	report := ComputeProgress(catalog, records, AllAnimals)

	summary := &model.DashboardSummary{
		TotalParts:     report.Overall.TotalCount,
		ConqueredParts: report.Overall.ConqueredCount,
		OverallRate:    report.Overall.Rate,
		Animals:        report.Animals,
		WeekRecords:    countWeekRecords(records, ref),
		StreakDays:     countActiveDays(records, ref, streakWindowDays),
		RecentRecords:  recentRecords(catalog, records, RecentLimit),
	}
	summary.Badges = EarnedBadges(report, records, ref)
	return summary
}

// StartOfDay は t と同じロケーションでのその日の 00:00 を返す
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek は t を含む週の月曜 00:00 を返す
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t).AddDate(0, 0, -offset)
}

func countWeekRecords(records []model.UserRecord, ref time.Time) int {
	start := StartOfWeek(ref)
	n := 0
	for _, r := range records {
		if !r.EatenAt.Before(start) && !r.EatenAt.After(ref) {
			n++
		}
	}
	return n
}

// countActiveDays は ref を含む直近 days 日間で記録のある日数を数える (連続でなくてよい)
func countActiveDays(records []model.UserRecord, ref time.Time, days int) int {
	from := StartOfDay(ref).AddDate(0, 0, -(days - 1))
	until := StartOfDay(ref).AddDate(0, 0, 1)
	active := make(map[time.Time]struct{})
	for _, r := range records {
		t := r.EatenAt.In(ref.Location())
		if t.Before(from) || !t.Before(until) {
			continue
		}
		active[StartOfDay(t)] = struct{}{}
	}
	return len(active)
}

func recentRecords(catalog []model.AnimalPart, records []model.UserRecord, limit int) []model.RecentRecord {
	known := make(map[int]model.AnimalPart, len(catalog))
	for _, p := range catalog {
		known[p.ID] = p
	}

	sorted := make([]model.UserRecord, 0, len(records))
	for _, r := range records {
		if _, ok := known[r.PartID]; ok {
			sorted = append(sorted, r)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].EatenAt.Equal(sorted[j].EatenAt) {
			return sorted[i].EatenAt.After(sorted[j].EatenAt)
		}
		return sorted[i].RecordID > sorted[j].RecordID
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	recent := make([]model.RecentRecord, 0, len(sorted))
	for _, r := range sorted {
		part := known[r.PartID]
		recent = append(recent, model.RecentRecord{
			RecordID:       r.RecordID,
			PartID:         r.PartID,
			PartName:       part.PartNameJa,
			AnimalType:     part.AnimalType,
			RestaurantName: r.RestaurantName,
			EatenAt:        r.EatenAt,
		})
	}
	return recent
}
