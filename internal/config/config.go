package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config centraliza a configuração carregada do ambiente. É construída uma
// única vez no arranque e passada explicitamente aos componentes, sem lookups
// ambientes espalhados pelo código.
type Config struct {
	Port         int
	MongoURI     string
	DBName       string
	JWTSecret    string
	JWTAccessTTL time.Duration

	// APIKey é a chave pré-partilhada do canal de serviço (Copilot /
	// PowerApps). Vazia desativa o canal.
	APIKey string

	AllowOrigins    []string
	RateLimitPublic RateLimitConfig
	RateLimitAuth   RateLimitConfig

	// Credenciais opcionais do login Microsoft Entra, repassadas ao módulo
	// externo de OAuth quando presente.
	EntraClientID     string
	EntraClientSecret string
	EntraTenantID     string
}

// RateLimitConfig representa limites simples para throttling.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load carrega variáveis de ambiente e aplica defaults seguros.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 {
		return nil, errors.New("PORT inválida")
	}
	cfg.Port = port

	cfg.MongoURI = getEnv("MONGO_URI", "")
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI obrigatório")
	}

	cfg.DBName = getEnv("DB_NAME", "")
	if cfg.DBName == "" {
		return nil, errors.New("DB_NAME obrigatório")
	}

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", ""))
	if len(cfg.JWTSecret) < 32 {
		return nil, errors.New("JWT_SECRET deve ter pelo menos 32 caracteres")
	}

	accessTTL, err := parseDurationEnv("JWT_ACCESS_TTL", 60*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.JWTAccessTTL = accessTTL

	cfg.APIKey = strings.TrimSpace(getEnv("API_KEY", ""))

	for _, origin := range strings.Split(getEnv("ALLOW_ORIGINS", ""), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}

	cfg.RateLimitPublic = RateLimitConfig{RequestsPerSecond: 10, Burst: 20}
	cfg.RateLimitAuth = RateLimitConfig{RequestsPerSecond: 10, Burst: 40}

	cfg.EntraClientID = getEnv("ENTRA_CLIENT_ID", "")
	cfg.EntraClientSecret = getEnv("ENTRA_CLIENT_SECRET", "")
	cfg.EntraTenantID = getEnv("ENTRA_TENANT_ID", "")

	return cfg, nil
}

// ServiceChannelEnabled indica se o canal x-api-key deve ser aceite.
func (c *Config) ServiceChannelEnabled() bool {
	return c.APIKey != ""
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	dur, err := time.ParseDuration(val)
	if err != nil {
		return 0, errors.New(key + " inválido")
	}
	return dur, nil
}
