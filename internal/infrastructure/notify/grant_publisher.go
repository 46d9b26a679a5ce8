// Package notify turns newly granted achievements into queued email jobs.
package notify

import (
	"context"
	"strings"

	"github.com/oksasatya/yomu-engine/internal/domain/entity"
	"github.com/oksasatya/yomu-engine/pkg/mailer"
	mailtpl "github.com/oksasatya/yomu-engine/pkg/mailer/templates"
)

// JSONPublisher is satisfied by helpers.RabbitPublisher.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type GrantPublisher struct {
	pub     JSONPublisher
	appName string
}

func NewGrantPublisher(pub JSONPublisher, appName string) *GrantPublisher {
	return &GrantPublisher{pub: pub, appName: appName}
}

// NotifyGranted enqueues one email per update. Profiles without an email are skipped.
func (g *GrantPublisher) NotifyGranted(ctx context.Context, p entity.Profile, granted []entity.AchievementType) error {
	if p.Email == nil || strings.TrimSpace(*p.Email) == "" || len(granted) == 0 {
		return nil
	}
	names := make([]string, len(granted))
	for i, t := range granted {
		names[i] = string(t)
	}
	name := ""
	if p.Username != nil {
		name = *p.Username
	}
	job := mailer.EmailJob{
		To:       *p.Email,
		Template: mailtpl.AchievementUnlocked,
		Data: map[string]any{
			"UserID":       p.ID,
			"Name":         name,
			"Achievements": names,
			"AppName":      g.appName,
		},
	}
	return g.pub.PublishJSON(ctx, job)
}
