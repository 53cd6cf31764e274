// Package conquest は部位マスターと食事記録から制覇状況を計算する。
// ストレージには一切触れない純粋な計算のみを置く。
package conquest

import (
	"math"
	"sort"
	"time"

	"tabebui/internal/model"
)

// Scope は進捗計算の対象範囲
type Scope struct {
	animal *model.AnimalType
}

// AllAnimals は全動物を対象にする
var AllAnimals = Scope{}

// OneAnimal は指定した動物だけを対象にする
func OneAnimal(t model.AnimalType) Scope {
	return Scope{animal: &t}
}

// Animal は対象の動物を返す。全動物のときは ok=false
func (s Scope) Animal() (model.AnimalType, bool) {
	if s.animal == nil {
		return "", false
	}
	return *s.animal, true
}

func (s Scope) includes(t model.AnimalType) bool {
	return s.animal == nil || *s.animal == t
}

// partAggregate は1部位ぶんの食事記録の集計
type partAggregate struct {
	first       time.Time
	last        time.Time
	count       int
	restaurants []string
	seen        map[string]struct{}
}

// aggregateRecords は部位IDごとに記録を1パスで集計する
func aggregateRecords(records []model.UserRecord) map[int]*partAggregate {
	// 店名を時系列順に並べるため、コピーを古い順にソートしてから集計する
	sorted := make([]model.UserRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].EatenAt.Equal(sorted[j].EatenAt) {
			return sorted[i].EatenAt.Before(sorted[j].EatenAt)
		}
		return sorted[i].RecordID < sorted[j].RecordID
	})

	aggs := make(map[int]*partAggregate)
	for _, r := range sorted {
		agg, ok := aggs[r.PartID]
		if !ok {
			agg = &partAggregate{first: r.EatenAt, last: r.EatenAt, seen: map[string]struct{}{}}
			aggs[r.PartID] = agg
		}
		if r.EatenAt.Before(agg.first) {
			agg.first = r.EatenAt
		}
		if r.EatenAt.After(agg.last) {
			agg.last = r.EatenAt
		}
		agg.count++
		if r.RestaurantName != nil && *r.RestaurantName != "" {
			if _, dup := agg.seen[*r.RestaurantName]; !dup {
				agg.seen[*r.RestaurantName] = struct{}{}
				agg.restaurants = append(agg.restaurants, *r.RestaurantName)
			}
		}
	}
	return aggs
}

// ComputeProgress はカタログ全体に対するユーザーの制覇状況を計算する。
// カタログに存在しない部位を参照する記録は無視する。
func ComputeProgress(catalog []model.AnimalPart, records []model.UserRecord, scope Scope) *model.ProgressReport {
	aggs := aggregateRecords(records)

	report := &model.ProgressReport{
		Animals: make(map[model.AnimalType]model.ConquestStats),
		Parts:   make(map[model.AnimalType]map[model.PartCategory]*model.PartBuckets),
	}
	if t, ok := scope.Animal(); ok {
		report.AnimalType = &t
		report.Categories = make(map[model.AnimalType]map[model.PartCategory]model.ConquestStats)
	}

	// 既知の動物・カテゴリは記録がなくても空のバケットを用意しておく
	for _, t := range model.AnimalTypes {
		if scope.includes(t) {
			ensureBuckets(report, t)
		}
	}

	overall := counter{}
	animals := make(map[model.AnimalType]*counter)
	categories := make(map[model.AnimalType]map[model.PartCategory]*counter)

	for _, part := range catalog {
		if !scope.includes(part.AnimalType) {
			continue
		}
		buckets := ensureBuckets(report, part.AnimalType)
		bucket, ok := buckets[part.PartCategory]
		if !ok {
			bucket = newBuckets()
			buckets[part.PartCategory] = bucket
		}

		if animals[part.AnimalType] == nil {
			animals[part.AnimalType] = &counter{}
			categories[part.AnimalType] = make(map[model.PartCategory]*counter)
		}
		if categories[part.AnimalType][part.PartCategory] == nil {
			categories[part.AnimalType][part.PartCategory] = &counter{}
		}

		agg, conquered := aggs[part.ID]
		if conquered {
			bucket.Conquered = append(bucket.Conquered, model.ConqueredPart{
				AnimalPart:         part,
				FirstConqueredDate: agg.first,
				LastEatenDate:      agg.last,
				EatCount:           agg.count,
				Restaurants:        append([]string{}, agg.restaurants...),
			})
		} else {
			bucket.Unconquered = append(bucket.Unconquered, part)
		}

		overall.add(conquered)
		animals[part.AnimalType].add(conquered)
		categories[part.AnimalType][part.PartCategory].add(conquered)
	}

	report.Overall = overall.stats()
	for t := range report.Parts {
		c := animals[t]
		if c == nil {
			c = &counter{}
		}
		report.Animals[t] = c.stats()
	}

	if report.Categories != nil {
		for t, buckets := range report.Parts {
			report.Categories[t] = make(map[model.PartCategory]model.ConquestStats)
			for cat := range buckets {
				c := categories[t][cat]
				if c == nil {
					c = &counter{}
				}
				report.Categories[t][cat] = c.stats()
			}
		}
	}
	return report
}

func newBuckets() *model.PartBuckets {
	return &model.PartBuckets{
		Conquered:   []model.ConqueredPart{},
		Unconquered: []model.AnimalPart{},
	}
}

func ensureBuckets(report *model.ProgressReport, t model.AnimalType) map[model.PartCategory]*model.PartBuckets {
	buckets, ok := report.Parts[t]
	if !ok {
		buckets = make(map[model.PartCategory]*model.PartBuckets)
		for _, cat := range model.PartCategories {
			buckets[cat] = newBuckets()
		}
		report.Parts[t] = buckets
	}
	return buckets
}

type counter struct {
	conquered int
	total     int
}

func (c *counter) add(conquered bool) {
	c.total++
	if conquered {
		c.conquered++
	}
}

func (c counter) stats() model.ConquestStats {
	return model.ConquestStats{
		ConqueredCount:   c.conquered,
		UnconqueredCount: c.total - c.conquered,
		TotalCount:       c.total,
		Rate:             Rate(c.conquered, c.total),
	}
}

// Rate は制覇率 (%) を小数第1位で丸めて返す。total が0なら0
func Rate(conquered, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(conquered)/float64(total)*1000) / 10
}
