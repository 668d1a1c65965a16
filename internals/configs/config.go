package configs

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret string

	KeycloakBaseURL      string
	KeycloakRealm        string
	KeycloakClientID     string
	KeycloakClientSecret string
	KeycloakPublicKey    string

	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	BlobDriver      string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")

	KeycloakBaseURL = strings.TrimRight(GetEnv("KEYCLOAK_BASE_URL"), "/")
	KeycloakRealm = GetEnv("KEYCLOAK_REALM")
	KeycloakClientID = GetEnv("KEYCLOAK_CLIENT_ID")
	KeycloakClientSecret = GetEnv("KEYCLOAK_CLIENT_SECRET")
	KeycloakPublicKey = GetEnv("KEYCLOAK_PUBLIC_KEY")

	MongoURI = GetEnv("MONGO_URI", "mongodb://localhost:27017")
	MongoDatabase = GetEnv("MONGO_DATABASE", "bantal")
	MongoCollection = GetEnv("MONGO_COLLECTION", "documents")
	BlobDriver = strings.ToLower(GetEnv("BLOB_DRIVER", "mongo"))

	if JWTSecret == "" && KeycloakPublicKey == "" {
		log.Println("❌ JWT_SECRET maupun KEYCLOAK_PUBLIC_KEY belum diset!")
	} else {
		log.Println("✅ Kunci verifikasi token berhasil dimuat.")
	}

	if KeycloakBaseURL == "" || KeycloakRealm == "" {
		log.Println("⚠️ KEYCLOAK_BASE_URL / KEYCLOAK_REALM kosong, endpoint login tidak aktif")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// KeycloakTokenURL returns the realm's OpenID token endpoint.
func KeycloakTokenURL() string {
	return fmt.Sprintf("%s/realms/%s/protocol/openid-connect/token", KeycloakBaseURL, KeycloakRealm)
}

// =======================
// DATABASE DSN
// =======================

// PostgresDSN: statement_timeout selaras dengan timeout request di main.go
func PostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=bantal&options=-c statement_timeout=%d",
		GetEnv("DB_USER"),
		GetEnv("DB_PASSWORD"),
		GetEnv("DB_HOST"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_NAME"),
		GetEnv("DB_SSLMODE", "require"),
		GetEnvInt("DB_STATEMENT_TIMEOUT_MS", 5000),
	)
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	level := gormLogger.Warn
	if GetEnvBool("DB_LOG_QUERIES", false) {
		level = gormLogger.Info
	}
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && err != gorm.ErrRecordNotFound && l.LogLevel >= gormLogger.Error:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
