package db

import (
	"context"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

const DigestQueueKey = "newsagent:queue:digests"

func ConnectRedis(ctx context.Context, redisURL string) error {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

func PushToQueue(ctx context.Context, queueKey string, data string) error {
	return Redis.LPush(ctx, queueKey, data).Err()
}

func GetQueueLength(ctx context.Context, queueKey string) (int64, error) {
	return Redis.LLen(ctx, queueKey).Result()
}
