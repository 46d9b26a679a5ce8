// Package memory provides in-process repository implementations for tests and local runs.
package memory

import (
	"context"
	"sync"

	"github.com/oksasatya/yomu-engine/internal/domain/entity"
	"github.com/oksasatya/yomu-engine/internal/domain/repository"
)

type ProfileRepository struct {
	mu       sync.RWMutex
	profiles map[int64]entity.Profile
}

func NewProfileRepository(seed ...entity.Profile) *ProfileRepository {
	r := &ProfileRepository{profiles: make(map[int64]entity.Profile, len(seed))}
	for _, p := range seed {
		r.profiles[p.ID] = cloneProfile(p)
	}
	return r
}

// EmptyProfiles returns n profiles with ids 1..n and no fields set.
func EmptyProfiles(n int) []entity.Profile {
	out := make([]entity.Profile, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, entity.Profile{ID: int64(i)})
	}
	return out
}

func (r *ProfileRepository) Create(_ context.Context, p *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		p.ID = int64(len(r.profiles) + 1)
		for {
			if _, taken := r.profiles[p.ID]; !taken {
				break
			}
			p.ID++
		}
	}
	r.profiles[p.ID] = cloneProfile(*p)
	return nil
}

func (r *ProfileRepository) GetByID(_ context.Context, id int64) (*entity.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneProfile(p)
	return &out, nil
}

func (r *ProfileRepository) UpdateUsername(_ context.Context, id int64, username string) error {
	return r.update(id, func(p *entity.Profile) { p.Username = &username })
}

func (r *ProfileRepository) UpdateEmail(_ context.Context, id int64, email string) error {
	return r.update(id, func(p *entity.Profile) { p.Email = &email })
}

func (r *ProfileRepository) UpdateSecret(_ context.Context, id int64, secret string) error {
	return r.update(id, func(p *entity.Profile) { p.Secret = &secret })
}

func (r *ProfileRepository) update(id int64, fn func(p *entity.Profile)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return repository.ErrNotFound
	}
	fn(&p)
	r.profiles[id] = p
	return nil
}

type grantKey struct {
	userID int64
	t      entity.AchievementType
}

// AchievementRepository keeps grants in insertion order and rejects duplicates
// the same way the (user_id, achievement_type) unique index does.
type AchievementRepository struct {
	mu     sync.RWMutex
	seen   map[grantKey]struct{}
	grants []entity.AchievementGrant
}

func NewAchievementRepository() *AchievementRepository {
	return &AchievementRepository{seen: make(map[grantKey]struct{})}
}

func (r *AchievementRepository) Grant(_ context.Context, userID int64, t entity.AchievementType) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := grantKey{userID: userID, t: t}
	if _, ok := r.seen[k]; ok {
		return false, nil
	}
	r.seen[k] = struct{}{}
	r.grants = append(r.grants, entity.AchievementGrant{UserID: userID, Type: t})
	return true, nil
}

func (r *AchievementRepository) ListByUser(_ context.Context, userID int64) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []string{}
	for _, g := range r.grants {
		if g.UserID == userID {
			out = append(out, string(g.Type))
		}
	}
	return out, nil
}

type ShadowUserRepository struct {
	mu    sync.RWMutex
	users map[string]entity.ShadowUser
}

func NewShadowUserRepository() *ShadowUserRepository {
	return &ShadowUserRepository{users: make(map[string]entity.ShadowUser)}
}

func (r *ShadowUserRepository) InsertShadowUser(_ context.Context, u *entity.ShadowUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := u.UserID.String()
	if _, ok := r.users[k]; ok {
		return nil
	}
	r.users[k] = *u
	return nil
}

// Get returns a stored shadow user.
func (r *ShadowUserRepository) Get(userID string) (entity.ShadowUser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[userID]
	return u, ok
}

func cloneProfile(p entity.Profile) entity.Profile {
	return entity.Profile{
		ID:       p.ID,
		Username: cloneString(p.Username),
		Email:    cloneString(p.Email),
		Secret:   cloneString(p.Secret),
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

var (
	_ repository.ProfileRepository     = (*ProfileRepository)(nil)
	_ repository.AchievementRepository = (*AchievementRepository)(nil)
	_ repository.ShadowUserRepository  = (*ShadowUserRepository)(nil)
)
