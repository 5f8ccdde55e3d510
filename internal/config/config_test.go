package config

import (
	"testing"
	"time"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "diarios")
	t.Setenv("JWT_SECRET", "segredo-de-teste-com-32-caracteres!")
}

func TestLoadDefaults(t *testing.T) {
	setValidEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("porta esperada 8080, obtida %d", cfg.Port)
	}
	if cfg.JWTAccessTTL != 60*time.Minute {
		t.Fatalf("TTL esperado 60m, obtido %v", cfg.JWTAccessTTL)
	}
	if cfg.ServiceChannelEnabled() {
		t.Fatal("canal de serviço ativo sem API_KEY")
	}
}

func TestLoadAPIKeyAtivaCanalDeServico(t *testing.T) {
	setValidEnv(t)
	t.Setenv("API_KEY", "chave-secreta")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !cfg.ServiceChannelEnabled() {
		t.Fatal("canal de serviço devia estar ativo")
	}
}

func TestLoadValidaObrigatorios(t *testing.T) {
	cases := []struct {
		nome  string
		unset string
	}{
		{"sem mongo", "MONGO_URI"},
		{"sem db", "DB_NAME"},
		{"sem segredo", "JWT_SECRET"},
	}

	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			setValidEnv(t)
			t.Setenv(tc.unset, "")

			if _, err := Load(); err == nil {
				t.Fatal("esperado erro de configuração")
			}
		})
	}
}

func TestLoadSegredoCurto(t *testing.T) {
	setValidEnv(t)
	t.Setenv("JWT_SECRET", "curto")

	if _, err := Load(); err == nil {
		t.Fatal("esperado erro de configuração")
	}
}

func TestLoadTTLCustomizado(t *testing.T) {
	setValidEnv(t)
	t.Setenv("JWT_ACCESS_TTL", "15m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if cfg.JWTAccessTTL != 15*time.Minute {
		t.Fatalf("TTL esperado 15m, obtido %v", cfg.JWTAccessTTL)
	}
}
