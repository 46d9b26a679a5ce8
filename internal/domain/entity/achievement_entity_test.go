package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAchievementType(t *testing.T) {
	for _, at := range AllAchievementTypes() {
		got, err := ParseAchievementType(string(at))
		require.NoError(t, err)
		assert.Equal(t, at, got)
	}

	_, err := ParseAchievementType("EMAIL_VERIFIED")
	assert.Error(t, err)
}

func TestAchievementSet_SortedIsCanonical(t *testing.T) {
	s := NewAchievementSet(AchievementAllCompleted, AchievementUsernameFilled, AchievementPasswordFilled)
	assert.Equal(t, []AchievementType{AchievementUsernameFilled, AchievementPasswordFilled, AchievementAllCompleted}, s.Sorted())
	assert.Equal(t, []string{"USERNAME_FILLED", "PASSWORD_FILLED", "ALL_COMPLETED"}, s.Strings())
}

func TestAchievementSet_UnknownTypesSortLast(t *testing.T) {
	s := NewAchievementSet("ZZZ", AchievementEmailFilled, "AAA")
	assert.Equal(t, []AchievementType{AchievementEmailFilled, "AAA", "ZZZ"}, s.Sorted())
}

func TestAchievementSet_AddIsIdempotent(t *testing.T) {
	s := NewAchievementSet()
	s.Add(AchievementEmailFilled)
	s.Add(AchievementEmailFilled)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has(AchievementEmailFilled))
	assert.False(t, s.Has(AchievementUsernameFilled))
}

func TestProfileUpdate_IsEmpty(t *testing.T) {
	assert.True(t, ProfileUpdate{}.IsEmpty())
	v := ""
	assert.False(t, ProfileUpdate{Email: &v}.IsEmpty())
}
