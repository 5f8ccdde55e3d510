package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTokenInvalido cobre assinatura errada, expiração e claims em falta.
var ErrTokenInvalido = errors.New("token inválido")

// RoleDefault é atribuído quando o token não transporta claim de role.
const RoleDefault = "user"

// RoleAdmin habilita operações administrativas (relatório mensal).
const RoleAdmin = "admin"

// Claims representa as informações presentes em um token de acesso.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTManager encapsula emissão e validação de tokens HS256.
type JWTManager struct {
	secret    []byte
	accessTTL time.Duration
}

// NewJWTManager cria o gerenciador com segredo e TTL configurados.
func NewJWTManager(secret string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), accessTTL: accessTTL}
}

// Generate emite um token para o username com a role indicada. A expiração
// é sempre TTL a contar de agora.
func (m *JWTManager) Generate(username, role string) (string, error) {
	now := time.Now().UTC()
	if role == "" {
		role = RoleDefault
	}

	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseAndValidate verifica assinatura, expiração e presença do subject.
func (m *JWTManager) ParseAndValidate(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrTokenInvalido
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalido
	}

	if claims.Role == "" {
		claims.Role = RoleDefault
	}

	return claims, nil
}

// Refresh reemite um token com os mesmos subject e role, desde que o token
// apresentado ainda valide. Não há estado de sessão no servidor.
func (m *JWTManager) Refresh(tokenString string) (string, *Claims, error) {
	claims, err := m.ParseAndValidate(tokenString)
	if err != nil {
		return "", nil, err
	}

	signed, err := m.Generate(claims.Subject, claims.Role)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}
