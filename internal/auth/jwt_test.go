package auth

import (
	"testing"
	"time"
)

func TestGenerateAndParse(t *testing.T) {
	manager := NewJWTManager("segredo-de-teste-com-32-caracteres!", time.Hour)

	token, err := manager.Generate("alice", RoleAdmin)
	if err != nil {
		t.Fatalf("erro inesperado ao gerar token: %v", err)
	}

	claims, err := manager.ParseAndValidate(token)
	if err != nil {
		t.Fatalf("erro inesperado ao validar token: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("subject esperado alice, obtido %q", claims.Subject)
	}
	if claims.Role != RoleAdmin {
		t.Fatalf("role esperada %q, obtida %q", RoleAdmin, claims.Role)
	}
	if claims.ID == "" {
		t.Fatal("token sem jti")
	}
}

func TestGenerateDefaultRole(t *testing.T) {
	manager := NewJWTManager("segredo-de-teste-com-32-caracteres!", time.Hour)

	token, err := manager.Generate("bob", "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	claims, err := manager.ParseAndValidate(token)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if claims.Role != RoleDefault {
		t.Fatalf("role esperada %q, obtida %q", RoleDefault, claims.Role)
	}
}

func TestParseExpiredToken(t *testing.T) {
	manager := NewJWTManager("segredo-de-teste-com-32-caracteres!", -time.Minute)

	token, err := manager.Generate("alice", RoleDefault)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if _, err := manager.ParseAndValidate(token); err != ErrTokenInvalido {
		t.Fatalf("esperado ErrTokenInvalido, obtido %v", err)
	}
}

func TestParseWrongSecret(t *testing.T) {
	emissor := NewJWTManager("segredo-de-teste-com-32-caracteres!", time.Hour)
	validador := NewJWTManager("outro-segredo-tambem-com-32-chars!!", time.Hour)

	token, err := emissor.Generate("alice", RoleDefault)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if _, err := validador.ParseAndValidate(token); err != ErrTokenInvalido {
		t.Fatalf("esperado ErrTokenInvalido, obtido %v", err)
	}
}

func TestRefreshReemiteToken(t *testing.T) {
	manager := NewJWTManager("segredo-de-teste-com-32-caracteres!", time.Hour)

	original, err := manager.Generate("alice", RoleAdmin)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	renovado, claims, err := manager.Refresh(original)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if claims.Subject != "alice" || claims.Role != RoleAdmin {
		t.Fatalf("claims inesperadas: %+v", claims)
	}

	novas, err := manager.ParseAndValidate(renovado)
	if err != nil {
		t.Fatalf("token renovado inválido: %v", err)
	}
	if novas.Subject != "alice" || novas.Role != RoleAdmin {
		t.Fatalf("claims renovadas inesperadas: %+v", novas)
	}
}

func TestRefreshTokenInvalido(t *testing.T) {
	manager := NewJWTManager("segredo-de-teste-com-32-caracteres!", time.Hour)

	if _, _, err := manager.Refresh("nao-e-um-token"); err != ErrTokenInvalido {
		t.Fatalf("esperado ErrTokenInvalido, obtido %v", err)
	}
}
