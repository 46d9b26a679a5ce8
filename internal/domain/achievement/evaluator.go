// Package achievement holds the profile completeness rules.
package achievement

import "github.com/oksasatya/yomu-engine/internal/domain/entity"

// Evaluate returns the achievements a profile snapshot has earned.
// It has no memory of earlier grants; revocation never follows from a missing tag here.
func Evaluate(p entity.Profile) entity.AchievementSet {
	earned := entity.NewAchievementSet()
	filled := 0

	if p.Username != nil {
		earned.Add(entity.AchievementUsernameFilled)
		filled++
	}
	if p.Email != nil {
		earned.Add(entity.AchievementEmailFilled)
		filled++
	}
	if p.Secret != nil {
		earned.Add(entity.AchievementPasswordFilled)
		filled++
	}
	if filled == 3 {
		earned.Add(entity.AchievementAllCompleted)
	}
	return earned
}
