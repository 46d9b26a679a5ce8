package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/yomu-engine/internal/domain/achievement"
	"github.com/oksasatya/yomu-engine/internal/domain/entity"
	repo "github.com/oksasatya/yomu-engine/internal/domain/repository"
	"github.com/oksasatya/yomu-engine/pkg/helpers"
)

// ProfileCache caches the profile/achievements aggregate served by the query.
// Every Invalidate bumps the entry's version; SetIfVersion refuses to store an
// aggregate read under an older version.
type ProfileCache interface {
	Get(ctx context.Context, userID int64) (*entity.ProfileAchievements, bool, error)
	Version(ctx context.Context, userID int64) (int64, error)
	SetIfVersion(ctx context.Context, userID int64, v *entity.ProfileAchievements, version int64) (bool, error)
	Invalidate(ctx context.Context, userID int64) error
}

// GrantNotifier is told about achievements granted by an update.
type GrantNotifier interface {
	NotifyGranted(ctx context.Context, p entity.Profile, granted []entity.AchievementType) error
}

// ProfileIndexer keeps a searchable copy of the aggregate.
type ProfileIndexer interface {
	Index(ctx context.Context, v *entity.ProfileAchievements) error
	Search(ctx context.Context, q string, size int) ([]map[string]any, error)
}

// GrantRecorder counts newly created grants.
type GrantRecorder interface {
	RecordGrant(t entity.AchievementType)
}

// AchievementService glues profile mutation to achievement evaluation.
// Cache, Notifier, Indexer and Metrics are optional.
type AchievementService struct {
	Profiles     repo.ProfileRepository
	Achievements repo.AchievementRepository
	Cache        ProfileCache
	Notifier     GrantNotifier
	Indexer      ProfileIndexer
	Metrics      GrantRecorder
	Logger       *logrus.Logger
	HashSecret   func(plain string) (string, error)
}

func NewAchievementService(profiles repo.ProfileRepository, achievements repo.AchievementRepository, logger *logrus.Logger) *AchievementService {
	return &AchievementService{
		Profiles:     profiles,
		Achievements: achievements,
		Logger:       logger,
		HashSecret:   helpers.HashPassword,
	}
}

// UpdateResult is returned by ApplyUpdate.
type UpdateResult struct {
	Profile      entity.Profile `json:"profile"`
	Achievements []string       `json:"achievements"`
	GrantedNow   []string       `json:"granted_now"`
}

// Reconcile grants every earned tag independently. A failed grant does not stop the
// others and nothing already persisted is rolled back. The returned set holds only
// tags created by this call.
func (s *AchievementService) Reconcile(ctx context.Context, userID int64, earned entity.AchievementSet) (entity.AchievementSet, error) {
	granted := entity.NewAchievementSet()
	var errs []error
	for _, t := range earned.Sorted() {
		created, err := s.Achievements.Grant(ctx, userID, t)
		if err != nil {
			errs = append(errs, fmt.Errorf("grant %s: %w", t, err))
			continue
		}
		if !created {
			continue
		}
		granted.Add(t)
		if s.Metrics != nil {
			s.Metrics.RecordGrant(t)
		}
		if s.Logger != nil {
			s.Logger.WithFields(logrus.Fields{"user_id": userID, "achievement": t}).Info("achievement granted")
		}
	}
	return granted, errors.Join(errs...)
}

// ApplyUpdate persists the present fields, then evaluates achievements against the
// stored profile rather than the request, since earlier updates may have set other fields.
func (s *AchievementService) ApplyUpdate(ctx context.Context, userID int64, in entity.ProfileUpdate) (*UpdateResult, error) {
	if userID <= 0 {
		return nil, BadRequest("invalid user id", nil)
	}

	if in.Username != nil {
		if err := s.Profiles.UpdateUsername(ctx, userID, *in.Username); err != nil {
			return nil, s.storeError(err, "failed to update username")
		}
	}
	if in.Email != nil {
		if err := s.Profiles.UpdateEmail(ctx, userID, *in.Email); err != nil {
			return nil, s.storeError(err, "failed to update email")
		}
	}
	if in.Secret != nil {
		hashed, err := s.HashSecret(*in.Secret)
		if err != nil {
			return nil, InternalServer("failed to hash secret", err)
		}
		if err := s.Profiles.UpdateSecret(ctx, userID, hashed); err != nil {
			return nil, s.storeError(err, "failed to update secret")
		}
	}

	p, err := s.Profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, s.storeError(err, "failed to load profile")
	}

	granted, rErr := s.Reconcile(ctx, userID, achievement.Evaluate(*p))
	if rErr != nil && s.Logger != nil {
		s.Logger.WithError(rErr).WithField("user_id", userID).Warn("achievement reconcile incomplete")
	}

	if s.Cache != nil {
		if cErr := s.Cache.Invalidate(ctx, userID); cErr != nil && s.Logger != nil {
			s.Logger.WithError(cErr).WithField("user_id", userID).Warn("cache invalidate failed")
		}
	}

	held, err := s.Achievements.ListByUser(ctx, userID)
	if err != nil {
		return nil, InternalServer("failed to load achievements", err)
	}
	if held == nil {
		held = []string{}
	}

	if granted.Len() > 0 && s.Notifier != nil {
		if nErr := s.Notifier.NotifyGranted(ctx, *p, granted.Sorted()); nErr != nil && s.Logger != nil {
			s.Logger.WithError(nErr).WithField("user_id", userID).Warn("grant notification failed")
		}
	}
	s.index(ctx, &entity.ProfileAchievements{Profile: *p, Achievements: held})

	return &UpdateResult{Profile: *p, Achievements: held, GrantedNow: granted.Strings()}, nil
}

// GetProfileWithAchievements returns the profile and all granted tags, or NotFound.
func (s *AchievementService) GetProfileWithAchievements(ctx context.Context, userID int64) (*entity.ProfileAchievements, error) {
	if userID <= 0 {
		return nil, BadRequest("invalid user id", nil)
	}

	// version is read before the store so a concurrent update's invalidation wins
	version, cacheable := int64(0), false
	if s.Cache != nil {
		v, ok, err := s.Cache.Get(ctx, userID)
		if err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("cache read failed")
		}
		if ok {
			return v, nil
		}
		version, err = s.Cache.Version(ctx, userID)
		if err == nil {
			cacheable = true
		} else if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("cache version read failed")
		}
	}

	p, err := s.Profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, s.storeError(err, "failed to load profile")
	}
	held, err := s.Achievements.ListByUser(ctx, userID)
	if err != nil {
		return nil, InternalServer("failed to load achievements", err)
	}
	if held == nil {
		held = []string{}
	}

	out := &entity.ProfileAchievements{Profile: *p, Achievements: held}
	if cacheable {
		stored, err := s.Cache.SetIfVersion(ctx, userID, out, version)
		if err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("cache write failed")
		}
		if !stored && err == nil && s.Logger != nil {
			s.Logger.WithField("user_id", userID).Debug("cache write skipped, entry invalidated meanwhile")
		}
	}
	return out, nil
}

// SearchProfiles queries the profile index; without an index it returns no hits.
func (s *AchievementService) SearchProfiles(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.Indexer == nil {
		return []map[string]any{}, nil
	}
	hits, err := s.Indexer.Search(ctx, q, size)
	if err != nil {
		return nil, InternalServer("search failed", err)
	}
	return hits, nil
}

func (s *AchievementService) index(ctx context.Context, v *entity.ProfileAchievements) {
	if s.Indexer == nil {
		return
	}
	if err := s.Indexer.Index(ctx, v); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", v.Profile.ID).Warn("profile index failed")
	}
}

func (s *AchievementService) storeError(err error, msg string) error {
	if errors.Is(err, repo.ErrNotFound) {
		return NotFound("profile not found", err)
	}
	return InternalServer(msg, err)
}
