package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                string
	MongoURI           string
	MongoDB            string
	ServerAddr         string
	FrontendOrigins    []string
	RateLimitContact   int
	RateLimitWindowSec int
	RedisURL           string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	CacheTTLSeconds    int
	AdminAPIKey        string
	AdminUser          string
	AdminPassword      string
	JWTSecret          string
	AccessTTLMinutes   int
	RefreshTTLMinutes  int
	CookieSecure       bool
	ResendAPIKey       string
	SenderEmail        string
	SenderName         string
	AdminNotifyEmail   string
	HeroIntervalSec    int
	Timezone           *time.Location
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	loc, err := time.LoadLocation(getEnv("TZ", "Europe/Madrid"))
	if err != nil {
		return nil, err
	}

	mongoURI := getEnv("MONGO_URI", "mongodb://localhost:27017/photography")
	mongoDB := getEnv("MONGO_DB", "")
	if mongoDB == "" {
		mongoDB = mongoDBFromURI(mongoURI)
	}
	if mongoDB == "" {
		mongoDB = "photography"
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		MongoURI:           mongoURI,
		MongoDB:            mongoDB,
		ServerAddr:         getEnv("SERVER_ADDR", ":8080"),
		FrontendOrigins:    splitOrigins(getEnv("FRONTEND_ORIGINS", "http://localhost:4321")),
		RateLimitContact:   getEnvInt("RATE_LIMIT_CONTACT", 5),
		RateLimitWindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),
		RedisURL:           getEnv("REDIS_URL", ""),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		CacheTTLSeconds:    getEnvInt("CACHE_TTL_SECONDS", 300),
		AdminAPIKey:        getEnv("ADMIN_API_KEY", ""),
		AdminUser:          getEnv("ADMIN_USER", "admin"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AccessTTLMinutes:   getEnvInt("ACCESS_TTL_MINUTES", 15),
		RefreshTTLMinutes:  getEnvInt("REFRESH_TTL_MINUTES", 43200),
		CookieSecure:       getEnv("COOKIE_SECURE", "false") == "true",
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		SenderEmail:        getEnv("SENDER_EMAIL", ""),
		SenderName:         getEnv("SENDER_NAME", "Gadea Iso"),
		AdminNotifyEmail:   getEnv("ADMIN_NOTIFY_EMAIL", ""),
		HeroIntervalSec:    getEnvInt("HERO_INTERVAL_SEC", 5),
		Timezone:           loc,
	}

	return cfg, nil
}

func mongoDBFromURI(uri string) string {
	rest := uri
	if idx := strings.Index(rest, "://"); idx >= 0 {
		rest = rest[idx+3:]
	}
	idx := strings.Index(rest, "/")
	if idx < 0 {
		return ""
	}
	db := rest[idx+1:]
	if cut := strings.IndexAny(db, "/?"); cut >= 0 {
		db = db[:cut]
	}
	return db
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
