// Package redis connects to Redis with retries and exposes a health check.
// verification.RedisStore runs on the client it returns.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := verification.NewRedisStore(client, verification.WithKeyPrefix(cfg.KeyPrefix))
package redis
