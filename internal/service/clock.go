package service

import "time"

// Clock は現在時刻を返す。テストで時刻を固定するために使う
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
