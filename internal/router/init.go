package router

import (
	"github.com/oksasatya/yomu-engine/config"
	appsvc "github.com/oksasatya/yomu-engine/internal/application"
	"github.com/oksasatya/yomu-engine/internal/container"
	"github.com/oksasatya/yomu-engine/internal/domain/repository"
	"github.com/oksasatya/yomu-engine/internal/infrastructure/cache"
	"github.com/oksasatya/yomu-engine/internal/infrastructure/memory"
	"github.com/oksasatya/yomu-engine/internal/infrastructure/metrics"
	"github.com/oksasatya/yomu-engine/internal/infrastructure/notify"
	pginfra "github.com/oksasatya/yomu-engine/internal/infrastructure/postgres"
	"github.com/oksasatya/yomu-engine/internal/infrastructure/search"
	handlers "github.com/oksasatya/yomu-engine/internal/interface/http"
	"github.com/oksasatya/yomu-engine/internal/interface/middleware"
	"github.com/oksasatya/yomu-engine/internal/router/modules"
)

type repositories struct {
	Profiles     repository.ProfileRepository
	Achievements repository.AchievementRepository
	ShadowUsers  repository.ShadowUserRepository
}

func buildRepositories(c *container.Container) repositories {
	if c.Config().StoreDriver == config.StoreMemory || c.PGPool() == nil {
		return repositories{
			Profiles:     memory.NewProfileRepository(memory.EmptyProfiles(c.Config().SeedProfiles)...),
			Achievements: memory.NewAchievementRepository(),
			ShadowUsers:  memory.NewShadowUserRepository(),
		}
	}
	pool := c.PGPool()
	return repositories{
		Profiles:     pginfra.NewProfileRepository(pool),
		Achievements: pginfra.NewAchievementRepository(pool),
		ShadowUsers:  pginfra.NewShadowUserRepository(pool),
	}
}

func buildAchievementService(c *container.Container, repos repositories) *appsvc.AchievementService {
	cfg := c.Config()
	svc := appsvc.NewAchievementService(repos.Profiles, repos.Achievements, c.Logger())
	svc.Metrics = metrics.NewExpvarRecorder()
	if c.Redis() != nil {
		svc.Cache = cache.NewProfileCache(c.Redis(), cfg.CacheTTL)
	}
	if c.ES() != nil {
		svc.Indexer = search.NewProfileIndex(c.ES(), cfg.ESProfilesIndex)
	}
	if c.RabbitPub() != nil {
		svc.Notifier = notify.NewGrantPublisher(c.RabbitPub(), cfg.AppName)
	}
	return svc
}

// InitModules builds every module from the container and adds it to the registry.
// Call once during startup.
func InitModules(r *Registry, c *container.Container) {
	cfg := c.Config()
	repos := buildRepositories(c)

	achievementHandler := handlers.NewAchievementHandler(buildAchievementService(c, repos), c.Logger())
	syncHandler := handlers.NewSyncHandler(appsvc.NewSyncService(repos.ShadowUsers, c.Logger()), c.Logger())

	var allow middleware.AllowFunc
	if cfg.RateLimitBypassPriv {
		allow = middleware.AllowPrivateIP()
	}

	r.AddRoot(modules.NewHealthModule(handlers.NewHealthHandler(cfg.Version)))
	r.Add(modules.NewAchievementModule(achievementHandler, c.Redis(), cfg.RateLimitPerMinute, allow))
	r.Add(modules.NewSyncModule(syncHandler))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Redis()))
	}
}
