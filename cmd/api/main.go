package main

import (
	"context"
	"log"

	"Club_Community/internal/config"
	"Club_Community/internal/pkg"
	"Club_Community/internal/repository/mysql"
	"Club_Community/internal/repository/redis"
	"Club_Community/internal/router"
	"Club_Community/internal/service"
)

func main() {
	cfg := config.Load()

	if err := mysql.InitDB(cfg.DSN); err != nil {
		panic(err)
	}
	if err := mysql.Migrate(mysql.DB); err != nil {
		panic(err)
	}

	// 兜底建默认社区，注册用户自动入社
	communityRepo := &mysql.CommunityRepository{DB: mysql.DB}
	if err := communityRepo.EnsureDefault(cfg.DefaultCommunity); err != nil {
		panic(err)
	}

	pkg.InitJWT(cfg.JWTAccessSecret, cfg.JWTRefreshSecret)

	// 连接redis（未配置则跳过单会话校验）
	if cfg.RedisAddr != "" {
		if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
			panic(err)
		}
	}

	// outbox 投递：有 kafka 走 kafka，否则打日志
	sender := service.Sender(service.LogSender)
	if len(cfg.KafkaBrokers) > 0 {
		producer := pkg.NewBillingProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}
	relayer := service.NewOutboxRelayer(mysql.DB, sender)
	go relayer.Run(context.Background())

	r := router.InitRouter(cfg)
	if err := r.Run(cfg.Port); err != nil {
		log.Fatal(err)
	}
}
