package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config 全部运行期配置，来源为环境变量（可选 .env）
type Config struct {
	Port string
	DSN  string

	JWTAccessSecret  string
	JWTRefreshSecret string

	RedisAddr     string // 留空则不启用 redis 会话校验
	RedisPassword string
	RedisDB       int

	KafkaBrokers []string // 留空则 outbox 走日志投递
	KafkaTopic   string

	SMTPHost     string // 留空则不发确认邮件
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	UploadDir        string
	DefaultCommunity string
}

func Load() Config {
	// .env 不存在不算错误
	_ = godotenv.Load()

	return Config{
		Port:             getenv("APP_PORT", ":8080"),
		DSN:              must("DB_DSN"),
		JWTAccessSecret:  must("JWT_ACCESS_SECRET"),
		JWTRefreshSecret: must("JWT_REFRESH_SECRET"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getenvInt("REDIS_DB", 0),
		KafkaBrokers:     splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:       getenv("KAFKA_TOPIC", "club-billing"),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getenvInt("SMTP_PORT", 587),
		SMTPUsername:     os.Getenv("SMTP_USERNAME"),
		SMTPPassword:     os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:         os.Getenv("SMTP_FROM"),
		UploadDir:        getenv("UPLOAD_DIR", "./uploads"),
		DefaultCommunity: getenv("DEFAULT_COMMUNITY", "总社区"),
	}
}

func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
