package templates

import (
	"bytes"
	"fmt"
	htmpl "html/template"
	"strings"
	texttpl "text/template"
)

const AchievementUnlocked = "achievement_unlocked"

var labels = map[string]string{
	"USERNAME_FILLED": "Username set",
	"EMAIL_FILLED":    "Email set",
	"PASSWORD_FILLED": "Password set",
	"ALL_COMPLETED":   "Profile complete",
}

// Label returns a human readable achievement name.
func Label(tag string) string {
	if l, ok := labels[tag]; ok {
		return l
	}
	return strings.ReplaceAll(strings.ToLower(tag), "_", " ")
}

var funcs = map[string]any{"label": Label}

var (
	unlockedText = texttpl.Must(texttpl.New("text").Funcs(funcs).Parse(
		`Hi {{if .Name}}{{.Name}}{{else}}there{{end}},

You unlocked {{len .Achievements}} new achievement(s) on {{.AppName}}:
{{range .Achievements}}  - {{label .}}
{{end}}`))

	unlockedHTML = htmpl.Must(htmpl.New("html").Funcs(funcs).Parse(
		`<p>Hi {{if .Name}}{{.Name}}{{else}}there{{end}},</p>
<p>You unlocked {{len .Achievements}} new achievement(s) on {{.AppName}}:</p>
<ul>{{range .Achievements}}<li>{{label .}}</li>{{end}}</ul>`))
)

type unlockedData struct {
	Name         string
	AppName      string
	Achievements []string
}

// Render returns subject, text and html for a named template.
func Render(name string, data map[string]any) (string, string, string, error) {
	switch name {
	case AchievementUnlocked:
		d := unlockedData{
			Name:         stringOf(data["Name"]),
			AppName:      stringOf(data["AppName"]),
			Achievements: stringsOf(data["Achievements"]),
		}
		if len(d.Achievements) == 0 {
			return "", "", "", fmt.Errorf("template %s: no achievements", name)
		}
		var tb, hb bytes.Buffer
		if err := unlockedText.Execute(&tb, d); err != nil {
			return "", "", "", err
		}
		if err := unlockedHTML.Execute(&hb, d); err != nil {
			return "", "", "", err
		}
		subject := "You unlocked a new achievement"
		if len(d.Achievements) > 1 {
			subject = fmt.Sprintf("You unlocked %d new achievements", len(d.Achievements))
		}
		return subject, tb.String(), hb.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown template %q", name)
	}
}

func stringOf(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// stringsOf accepts []string or the []any produced by decoding JSON.
func stringsOf(v any) []string {
	switch x := v.(type) {
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			out = append(out, stringOf(e))
		}
		return out
	}
	return nil
}
