// Package cache stores the profile/achievements aggregate in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/yomu-engine/internal/domain/entity"
	"github.com/oksasatya/yomu-engine/pkg/helpers"
)

const (
	keyPrefix = "achievement:profile:"

	// versionTTL bounds how long an idle user's version counter is kept.
	versionTTL = 24 * time.Hour
)

type ProfileCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewProfileCache(rdb *redis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{rdb: rdb, ttl: ttl}
}

func Key(userID int64) string {
	return keyPrefix + strconv.FormatInt(userID, 10)
}

// VersionKey holds the counter bumped by every Invalidate.
func VersionKey(userID int64) string {
	return Key(userID) + ":ver"
}

// setIfVersionScript stores ARGV[2] under KEYS[1] only while KEYS[2] still equals ARGV[1].
var setIfVersionScript = redis.NewScript(`
local current = redis.call("GET", KEYS[2]) or "0"
if current ~= ARGV[1] then
  return 0
end
if tonumber(ARGV[3]) > 0 then
  redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
else
  redis.call("SET", KEYS[1], ARGV[2])
end
return 1
`)

func (c *ProfileCache) Get(ctx context.Context, userID int64) (*entity.ProfileAchievements, bool, error) {
	var v cachedProfile
	ok, err := helpers.RedisGetJSON(ctx, c.rdb, Key(userID), &v)
	if err != nil || !ok {
		return nil, false, err
	}
	return v.toEntity(), true, nil
}

// Version returns the current invalidation counter, 0 when the user was never invalidated.
func (c *ProfileCache) Version(ctx context.Context, userID int64) (int64, error) {
	v, err := c.rdb.Get(ctx, VersionKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// SetIfVersion stores v unless Invalidate ran after version was read.
func (c *ProfileCache) SetIfVersion(ctx context.Context, userID int64, v *entity.ProfileAchievements, version int64) (bool, error) {
	b, err := json.Marshal(fromEntity(v))
	if err != nil {
		return false, err
	}
	res, err := setIfVersionScript.Run(ctx, c.rdb,
		[]string{Key(userID), VersionKey(userID)},
		strconv.FormatInt(version, 10), b, c.ttl.Milliseconds(),
	).Int64()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

// Invalidate drops the entry and bumps its version in one transaction.
func (c *ProfileCache) Invalidate(ctx context.Context, userID int64) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, VersionKey(userID))
		pipe.Expire(ctx, VersionKey(userID), versionTTL)
		pipe.Del(ctx, Key(userID))
		return nil
	})
	return err
}

type cachedProfile struct {
	ID           int64    `json:"id"`
	Username     *string  `json:"username"`
	Email        *string  `json:"email"`
	Secret       *string  `json:"secret"`
	Achievements []string `json:"achievements"`
}

func fromEntity(v *entity.ProfileAchievements) cachedProfile {
	return cachedProfile{
		ID:           v.Profile.ID,
		Username:     v.Profile.Username,
		Email:        v.Profile.Email,
		Secret:       v.Profile.Secret,
		Achievements: v.Achievements,
	}
}

func (c cachedProfile) toEntity() *entity.ProfileAchievements {
	achievements := c.Achievements
	if achievements == nil {
		achievements = []string{}
	}
	return &entity.ProfileAchievements{
		Profile: entity.Profile{
			ID:       c.ID,
			Username: c.Username,
			Email:    c.Email,
			Secret:   c.Secret,
		},
		Achievements: achievements,
	}
}
