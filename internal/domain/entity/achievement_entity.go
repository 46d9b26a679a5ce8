package entity

import (
	"fmt"
	"sort"
)

// AchievementType is one of the closed set of profile completeness markers.
type AchievementType string

const (
	AchievementUsernameFilled AchievementType = "USERNAME_FILLED"
	AchievementEmailFilled    AchievementType = "EMAIL_FILLED"
	AchievementPasswordFilled AchievementType = "PASSWORD_FILLED"
	AchievementAllCompleted   AchievementType = "ALL_COMPLETED"
)

// AllAchievementTypes returns every achievement type in canonical order.
func AllAchievementTypes() []AchievementType {
	return []AchievementType{
		AchievementUsernameFilled,
		AchievementEmailFilled,
		AchievementPasswordFilled,
		AchievementAllCompleted,
	}
}

func (t AchievementType) Valid() bool {
	switch t {
	case AchievementUsernameFilled, AchievementEmailFilled, AchievementPasswordFilled, AchievementAllCompleted:
		return true
	}
	return false
}

func (t AchievementType) String() string { return string(t) }

func ParseAchievementType(s string) (AchievementType, error) {
	t := AchievementType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown achievement type %q", s)
	}
	return t, nil
}

// AchievementGrant records that a user holds an achievement. Grants are never revoked.
type AchievementGrant struct {
	UserID int64
	Type   AchievementType
}

// AchievementSet is an unordered set of achievement types.
type AchievementSet map[AchievementType]struct{}

func NewAchievementSet(types ...AchievementType) AchievementSet {
	s := make(AchievementSet, len(types))
	for _, t := range types {
		s.Add(t)
	}
	return s
}

func (s AchievementSet) Add(t AchievementType) { s[t] = struct{}{} }

func (s AchievementSet) Has(t AchievementType) bool {
	_, ok := s[t]
	return ok
}

func (s AchievementSet) Len() int { return len(s) }

// Sorted returns the members in canonical order, unknown types last in lexical order.
func (s AchievementSet) Sorted() []AchievementType {
	out := make([]AchievementType, 0, len(s))
	for _, t := range AllAchievementTypes() {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	if len(out) == len(s) {
		return out
	}
	var rest []AchievementType
	for t := range s {
		if !t.Valid() {
			rest = append(rest, t)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(out, rest...)
}

// Strings returns the members as plain strings in canonical order.
func (s AchievementSet) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, t := range sorted {
		out[i] = string(t)
	}
	return out
}
