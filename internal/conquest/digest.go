package conquest

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tabebui/internal/model"
)

// MaxSuggestedParts はダイジェストに載せる未制覇部位の上限
const MaxSuggestedParts = 5

// LatestVisit は直近の食事セッションの要約
type LatestVisit struct {
	RestaurantName *string
	EatenAt        time.Time
}

// DigestInput はチャット用ダイジェストの材料
type DigestInput struct {
	Animals     map[model.AnimalType]model.ConquestStats
	Unconquered []model.AnimalPart
	Latest      *LatestVisit
}

// NewDigestInput は全動物スコープの進捗と直近セッションからダイジェストの材料を作る
func NewDigestInput(report *model.ProgressReport, latest *model.EatingSession) DigestInput {
	in := DigestInput{Animals: report.Animals}
	for _, buckets := range report.Parts {
		for _, b := range buckets {
			in.Unconquered = append(in.Unconquered, b.Unconquered...)
		}
	}
	if latest != nil {
		in.Latest = &LatestVisit{RestaurantName: latest.RestaurantName, EatenAt: latest.EatenAt}
	}
	return in
}

// FormatContext は進捗をチャットのシステムプロンプトに添える短い要約文にする。
// 部位マスターが空のときは ok=false を返し、呼び出し側は要約なしで続行する。
func FormatContext(in DigestInput) (string, bool) {
	total := 0
	for _, s := range in.Animals {
		total += s.TotalCount
	}
	if total == 0 {
		return "", false
	}

	var b strings.Builder
	b.WriteString("【ユーザーの部位制覇状況】\n")
	for _, t := range orderedAnimals(in.Animals) {
		s := in.Animals[t]
		fmt.Fprintf(&b, "%s: %d/%d (%.1f%%, 残り%d)\n", t.Label(), s.ConqueredCount, s.TotalCount, s.Rate, s.UnconqueredCount)
	}

	if parts := hardestFirst(in.Unconquered, MaxSuggestedParts); len(parts) > 0 {
		b.WriteString("【まだ食べていない注目部位】\n")
		for _, p := range parts {
			fmt.Fprintf(&b, "- %s の %s (難易度%d)\n", p.AnimalType.Label(), p.PartNameJa, p.DifficultyLevel)
		}
	}

	if in.Latest != nil {
		date := in.Latest.EatenAt.Format("2006-01-02")
		if in.Latest.RestaurantName != nil && *in.Latest.RestaurantName != "" {
			fmt.Fprintf(&b, "最近の食事: %s (%s)\n", *in.Latest.RestaurantName, date)
		} else {
			fmt.Fprintf(&b, "最近の食事: %s\n", date)
		}
	}
	return strings.TrimRight(b.String(), "\n"), true
}

// orderedAnimals は既知の動物を表示順に、それ以外を名前順に並べる
func orderedAnimals(stats map[model.AnimalType]model.ConquestStats) []model.AnimalType {
	out := make([]model.AnimalType, 0, len(stats))
	for _, t := range model.AnimalTypes {
		if _, ok := stats[t]; ok {
			out = append(out, t)
		}
	}
	var extra []model.AnimalType
	for t := range stats {
		if !t.IsValid() {
			extra = append(extra, t)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

func hardestFirst(parts []model.AnimalPart, limit int) []model.AnimalPart {
	sorted := make([]model.AnimalPart, len(parts))
	copy(sorted, parts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].DifficultyLevel != sorted[j].DifficultyLevel {
			return sorted[i].DifficultyLevel > sorted[j].DifficultyLevel
		}
		return sorted[i].ID < sorted[j].ID
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
