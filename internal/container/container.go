package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/yomu-engine/config"
	"github.com/oksasatya/yomu-engine/pkg/helpers"
)

// Container holds the process-wide shared handles. It is built once in main and
// passed to the router; nothing mutates it afterwards. Optional handles may be nil.
type Container struct {
	cfg       *config.Config
	logger    *logrus.Logger
	pgPool    *pgxpool.Pool
	redis     *redis.Client
	es        *elasticsearch.Client
	rabbitPub *helpers.RabbitPublisher
}

type Option func(*Container)

func WithPGPool(p *pgxpool.Pool) Option {
	return func(c *Container) { c.pgPool = p }
}

func WithRedis(r *redis.Client) Option {
	return func(c *Container) { c.redis = r }
}

func WithES(es *elasticsearch.Client) Option {
	return func(c *Container) { c.es = es }
}

func WithRabbitPub(p *helpers.RabbitPublisher) Option {
	return func(c *Container) { c.rabbitPub = p }
}

func New(cfg *config.Config, logger *logrus.Logger, opts ...Option) *Container {
	c := &Container{cfg: cfg, logger: logger}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Container) Config() *config.Config {
	return c.cfg
}

func (c *Container) Logger() *logrus.Logger {
	return c.logger
}

func (c *Container) PGPool() *pgxpool.Pool {
	return c.pgPool
}

func (c *Container) Redis() *redis.Client {
	return c.redis
}

func (c *Container) ES() *elasticsearch.Client {
	return c.es
}

func (c *Container) RabbitPub() *helpers.RabbitPublisher {
	return c.rabbitPub
}
