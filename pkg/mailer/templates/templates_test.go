package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	assert.Equal(t, "Username set", Label("USERNAME_FILLED"))
	assert.Equal(t, "Profile complete", Label("ALL_COMPLETED"))
	assert.Equal(t, "first login", Label("FIRST_LOGIN"))
}

func TestRender_AchievementUnlocked(t *testing.T) {
	subject, text, html, err := Render(AchievementUnlocked, map[string]any{
		"AppName":      "yomu",
		"Achievements": []string{"PASSWORD_FILLED"},
	})
	require.NoError(t, err)
	assert.Equal(t, "You unlocked a new achievement", subject)
	assert.Contains(t, text, "Hi there,")
	assert.Contains(t, text, "  - Password set")
	assert.Contains(t, html, "on yomu:")
}

func TestRender_EscapesHTML(t *testing.T) {
	_, _, html, err := Render(AchievementUnlocked, map[string]any{
		"Name":         "<b>ken</b>",
		"Achievements": []any{"EMAIL_FILLED"},
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<b>ken</b>")
	assert.Contains(t, html, "&lt;b&gt;ken&lt;/b&gt;")
}

func TestRender_Errors(t *testing.T) {
	_, _, _, err := Render(AchievementUnlocked, map[string]any{})
	assert.Error(t, err)

	_, _, _, err = Render("welcome", nil)
	assert.Error(t, err)
}
