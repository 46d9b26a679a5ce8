package entity

// Profile is the mutable profile snapshot the achievement rules read.
// A nil field was never set; an empty string that was set still counts as present.
type Profile struct {
	ID       int64   `json:"id"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Secret   *string `json:"secret"`
}

// ProfileUpdate carries the fields of a partial profile update.
type ProfileUpdate struct {
	Username *string
	Email    *string
	Secret   *string
}

func (u ProfileUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.Secret == nil
}

// ProfileAchievements is the read-only aggregate returned by the achievement query.
type ProfileAchievements struct {
	Profile      Profile  `json:"profile"`
	Achievements []string `json:"achievements"`
}
