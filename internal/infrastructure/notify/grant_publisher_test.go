package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/yomu-engine/internal/domain/entity"
	"github.com/oksasatya/yomu-engine/pkg/mailer"
	mailtpl "github.com/oksasatya/yomu-engine/pkg/mailer/templates"
)

type fakePublisher struct {
	bodies []any
	err    error
}

func (f *fakePublisher) PublishJSON(_ context.Context, body any) error {
	f.bodies = append(f.bodies, body)
	return f.err
}

func strPtr(s string) *string { return &s }

func TestGrantPublisher_PublishesJob(t *testing.T) {
	pub := &fakePublisher{}
	g := NewGrantPublisher(pub, "yomu")

	p := entity.Profile{ID: 7, Username: strPtr("ken"), Email: strPtr("ken@example.com")}
	err := g.NotifyGranted(context.Background(), p, []entity.AchievementType{entity.AchievementEmailFilled})
	require.NoError(t, err)
	require.Len(t, pub.bodies, 1)

	job, ok := pub.bodies[0].(mailer.EmailJob)
	require.True(t, ok)
	assert.Equal(t, "ken@example.com", job.To)
	assert.Equal(t, mailtpl.AchievementUnlocked, job.Template)
	assert.Equal(t, []string{"EMAIL_FILLED"}, job.Data["Achievements"])
	assert.Equal(t, "ken", job.Data["Name"])
	assert.Equal(t, "yomu", job.Data["AppName"])
}

func TestGrantPublisher_Skips(t *testing.T) {
	tests := []struct {
		name    string
		profile entity.Profile
		granted []entity.AchievementType
	}{
		{"no email", entity.Profile{ID: 1}, []entity.AchievementType{entity.AchievementUsernameFilled}},
		{"blank email", entity.Profile{ID: 1, Email: strPtr("  ")}, []entity.AchievementType{entity.AchievementEmailFilled}},
		{"nothing granted", entity.Profile{ID: 1, Email: strPtr("a@b.c")}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := &fakePublisher{}
			require.NoError(t, NewGrantPublisher(pub, "yomu").NotifyGranted(context.Background(), tt.profile, tt.granted))
			assert.Empty(t, pub.bodies)
		})
	}
}

func TestGrantPublisher_PropagatesError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("channel closed")}
	p := entity.Profile{ID: 1, Email: strPtr("a@b.c")}
	err := NewGrantPublisher(pub, "yomu").NotifyGranted(context.Background(), p, []entity.AchievementType{entity.AchievementEmailFilled})
	assert.EqualError(t, err, "channel closed")
}
