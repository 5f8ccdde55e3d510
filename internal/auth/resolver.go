package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// Cabeçalhos do canal de serviço (integrações Copilot / PowerApps).
const (
	HeaderAPIKey    = "x-api-key"
	HeaderUserEmail = "x-user-email"
)

// ServiceFallbackUsername é atribuído quando o canal de serviço não envia
// nenhum cabeçalho identificador. Permite escritas não atribuídas; decisão
// de política herdada das integrações existentes.
const ServiceFallbackUsername = "copilot"

// Channel identifica qual credencial autenticou o pedido.
type Channel string

const (
	ChannelService Channel = "service"
	ChannelBearer  Channel = "bearer"
)

// ErrNoCredentials indica que nenhum resolver reconheceu credenciais no
// pedido. Cabe à rota decidir se aceita chamadas não autenticadas.
var ErrNoCredentials = errors.New("credenciais ausentes")

// Identity é a identidade atuante resolvida para um pedido.
type Identity struct {
	Username string
	Role     string
	Channel  Channel
}

// IsAdmin reporta se a identidade pode executar operações administrativas.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// Resolver tenta classificar um pedido a partir dos seus cabeçalhos.
// Devolve (nil, nil) quando a credencial deste canal não está presente,
// deixando o próximo resolver da cadeia tentar. Um erro interrompe a
// cadeia: credencial presente mas inválida nunca degrada para anónimo.
type Resolver interface {
	Resolve(ctx context.Context, header http.Header) (*Identity, error)
}

// Chain compõe resolvers em ordem; a primeira resolução bem-sucedida vence.
type Chain []Resolver

// Resolve percorre a cadeia. Sem nenhuma credencial devolve ErrNoCredentials.
func (c Chain) Resolve(ctx context.Context, header http.Header) (*Identity, error) {
	for _, r := range c {
		ident, err := r.Resolve(ctx, header)
		if err != nil {
			return nil, err
		}
		if ident != nil {
			return ident, nil
		}
	}
	return nil, ErrNoCredentials
}

// UserDirectory é a consulta mínima ao cadastro de utilizadores de que o
// canal de serviço precisa para atribuir um nome de exibição.
type UserDirectory interface {
	// DisplayNameByEmail devolve o nome do utilizador com aquele email ou
	// repo.ErrNotFound quando não existe conta associada.
	DisplayNameByEmail(ctx context.Context, email string) (string, error)
}

// ServiceKeyResolver autentica chamadores máquina-a-máquina por chave
// pré-partilhada no cabeçalho x-api-key.
type ServiceKeyResolver struct {
	key       string
	directory UserDirectory
	notFound  error
}

// NewServiceKeyResolver cria o resolver do canal de serviço. notFound é o
// sentinela devolvido pelo directory quando o email não tem conta.
func NewServiceKeyResolver(key string, directory UserDirectory, notFound error) *ServiceKeyResolver {
	return &ServiceKeyResolver{key: key, directory: directory, notFound: notFound}
}

// Resolve compara a chave recebida com a configurada. Chave ausente ou
// divergente cai para o próximo canal; só a igualdade exata autentica.
func (r *ServiceKeyResolver) Resolve(ctx context.Context, header http.Header) (*Identity, error) {
	key := header.Get(HeaderAPIKey)
	if r.key == "" || key == "" || key != r.key {
		return nil, nil
	}

	username := ServiceFallbackUsername
	if email := strings.TrimSpace(header.Get(HeaderUserEmail)); email != "" {
		username = email
		name, err := r.directory.DisplayNameByEmail(ctx, email)
		switch {
		case err == nil && name != "":
			username = name
		case err != nil && !errors.Is(err, r.notFound):
			return nil, err
		}
	}

	return &Identity{Username: username, Role: RoleDefault, Channel: ChannelService}, nil
}

// BearerResolver autentica sessões interativas via Authorization: Bearer.
type BearerResolver struct {
	jwt *JWTManager
}

// NewBearerResolver cria o resolver do canal bearer.
func NewBearerResolver(jwt *JWTManager) *BearerResolver {
	return &BearerResolver{jwt: jwt}
}

// Resolve decodifica e valida o token. Cabeçalho ausente ou sem o prefixo
// exato "Bearer " cai para o próximo canal; token malformado ou expirado é
// erro duro.
func (r *BearerResolver) Resolve(_ context.Context, header http.Header) (*Identity, error) {
	raw := header.Get("Authorization")
	parts := strings.SplitN(raw, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, nil
	}

	claims, err := r.jwt.ParseAndValidate(parts[1])
	if err != nil {
		return nil, err
	}

	return &Identity{Username: claims.Subject, Role: claims.Role, Channel: ChannelBearer}, nil
}
