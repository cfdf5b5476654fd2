package redis_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"wayfare/internal/infra"
	"wayfare/internal/repositories"
)

var Module = fx.Provide(provideRedis, provideSnapshotRepo)

func provideRedis() *redis.Client {
	return infra.InitRedis()
}

func provideSnapshotRepo(client *redis.Client) repositories.SnapshotRepository {
	return repositories.NewRedisSnapshotRepository(client)
}
