// Package metrics exposes grant counters through expvar (/debug/vars).
package metrics

import (
	"expvar"

	"github.com/oksasatya/yomu-engine/internal/domain/entity"
)

var grantsTotal = expvar.NewMap("achievements_granted_total")

type ExpvarRecorder struct{}

func NewExpvarRecorder() *ExpvarRecorder { return &ExpvarRecorder{} }

func (ExpvarRecorder) RecordGrant(t entity.AchievementType) {
	grantsTotal.Add(string(t), 1)
}

// GrantCount reads the current counter for t.
func GrantCount(t entity.AchievementType) int64 {
	v, ok := grantsTotal.Get(string(t)).(*expvar.Int)
	if !ok || v == nil {
		return 0
	}
	return v.Value()
}
