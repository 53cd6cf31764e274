package conquest

import (
	"time"

	"tabebui/internal/model"
)

const (
	collectorThreshold = 10
	maniaThreshold     = 25
	streakBadgeDays    = 3
	gourmetRecords     = 10
	gourmetMinRating   = 4
	adventurerLevel    = 3
)

// badgeDef はバッジの定義と獲得条件
type badgeDef struct {
	badge  model.Badge
	earned func(s *badgeState) bool
}

type badgeState struct {
	report  *model.ProgressReport
	records []model.UserRecord
	ref     time.Time
}

var badgeDefs = []badgeDef{
	{
		badge:  model.Badge{Code: "first_step", Name: "はじめの一歩", Description: "はじめて部位を記録した"},
		earned: func(s *badgeState) bool { return s.report.Overall.ConqueredCount >= 1 },
	},
	{
		badge:  model.Badge{Code: "part_collector", Name: "部位コレクター", Description: "10部位を制覇した"},
		earned: func(s *badgeState) bool { return s.report.Overall.ConqueredCount >= collectorThreshold },
	},
	{
		badge:  model.Badge{Code: "part_mania", Name: "部位マニア", Description: "25部位を制覇した"},
		earned: func(s *badgeState) bool { return s.report.Overall.ConqueredCount >= maniaThreshold },
	},
	{
		badge:  model.Badge{Code: "beef_master", Name: "牛マスター", Description: "牛の全部位を制覇した"},
		earned: func(s *badgeState) bool { return animalCompleted(s.report, model.AnimalBeef) },
	},
	{
		badge:  model.Badge{Code: "pork_master", Name: "豚マスター", Description: "豚の全部位を制覇した"},
		earned: func(s *badgeState) bool { return animalCompleted(s.report, model.AnimalPork) },
	},
	{
		badge:  model.Badge{Code: "chicken_master", Name: "鳥マスター", Description: "鳥の全部位を制覇した"},
		earned: func(s *badgeState) bool { return animalCompleted(s.report, model.AnimalChicken) },
	},
	{
		badge: model.Badge{Code: "conqueror", Name: "制覇王", Description: "全部位を制覇した"},
		earned: func(s *badgeState) bool {
			o := s.report.Overall
			return o.TotalCount > 0 && o.ConqueredCount == o.TotalCount
		},
	},
	{
		badge: model.Badge{Code: "streak_3", Name: "連続記録", Description: "3日連続で記録した"},
		earned: func(s *badgeState) bool {
			return ConsecutiveDays(s.records, s.ref) >= streakBadgeDays
		},
	},
	{
		badge:  model.Badge{Code: "today", Name: "今日も頑張る", Description: "今日も記録した"},
		earned: func(s *badgeState) bool { return countActiveDays(s.records, s.ref, 1) > 0 },
	},
	{
		badge: model.Badge{Code: "gourmet", Name: "グルメ", Description: "評価4以上の記録が10件以上"},
		earned: func(s *badgeState) bool {
			n := 0
			for _, r := range s.records {
				if r.Rating != nil && *r.Rating >= gourmetMinRating {
					n++
				}
			}
			return n >= gourmetRecords
		},
	},
	{
		badge: model.Badge{Code: "adventurer", Name: "冒険家", Description: "レア以上の部位を制覇した"},
		earned: func(s *badgeState) bool {
			for _, buckets := range s.report.Parts {
				for _, b := range buckets {
					for _, p := range b.Conquered {
						if p.DifficultyLevel >= adventurerLevel {
							return true
						}
					}
				}
			}
			return false
		},
	},
}

// EarnedBadges は獲得済みのバッジを定義順に返す
func EarnedBadges(report *model.ProgressReport, records []model.UserRecord, ref time.Time) []model.Badge {
	state := &badgeState{report: report, records: records, ref: ref}
	badges := []model.Badge{}
	for _, def := range badgeDefs {
		if def.earned(state) {
			badges = append(badges, def.badge)
		}
	}
	return badges
}

func animalCompleted(report *model.ProgressReport, t model.AnimalType) bool {
	stats, ok := report.Animals[t]
	return ok && stats.TotalCount > 0 && stats.ConqueredCount == stats.TotalCount
}

// ConsecutiveDays は ref の当日 (当日に記録がなければ前日) から遡って
// 記録が途切れずに続いている日数を返す
func ConsecutiveDays(records []model.UserRecord, ref time.Time) int {
	loc := ref.Location()
	today := StartOfDay(ref)
	active := make(map[time.Time]struct{})
	for _, r := range records {
		t := r.EatenAt.In(loc)
		if t.After(ref) {
			continue
		}
		active[StartOfDay(t)] = struct{}{}
	}

	day := today
	if _, ok := active[day]; !ok {
		day = day.AddDate(0, 0, -1)
	}
	n := 0
	for {
		if _, ok := active[day]; !ok {
			return n
		}
		n++
		day = day.AddDate(0, 0, -1)
	}
}
