package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

var errSemConta = errors.New("sem conta")

type stubDirectory struct {
	names map[string]string
	err   error
}

func (s *stubDirectory) DisplayNameByEmail(_ context.Context, email string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	name, ok := s.names[email]
	if !ok {
		return "", errSemConta
	}
	return name, nil
}

func newTestChain(t *testing.T, apiKey string, directory UserDirectory) (Chain, *JWTManager) {
	t.Helper()
	manager := NewJWTManager("segredo-de-teste-com-32-caracteres!", time.Hour)
	chain := Chain{
		NewServiceKeyResolver(apiKey, directory, errSemConta),
		NewBearerResolver(manager),
	}
	return chain, manager
}

func TestChainServiceKeyComEmailConhecido(t *testing.T) {
	directory := &stubDirectory{names: map[string]string{"ana@example.com": "Ana Silva"}}
	chain, _ := newTestChain(t, "chave-secreta", directory)

	header := http.Header{}
	header.Set(HeaderAPIKey, "chave-secreta")
	header.Set(HeaderUserEmail, "ana@example.com")

	ident, err := chain.Resolve(context.Background(), header)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if ident.Username != "Ana Silva" {
		t.Fatalf("username esperado Ana Silva, obtido %q", ident.Username)
	}
	if ident.Channel != ChannelService {
		t.Fatalf("canal esperado %q, obtido %q", ChannelService, ident.Channel)
	}
}

func TestChainServiceKeyComEmailDesconhecido(t *testing.T) {
	chain, _ := newTestChain(t, "chave-secreta", &stubDirectory{names: map[string]string{}})

	header := http.Header{}
	header.Set(HeaderAPIKey, "chave-secreta")
	header.Set(HeaderUserEmail, "desconhecido@example.com")

	ident, err := chain.Resolve(context.Background(), header)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if ident.Username != "desconhecido@example.com" {
		t.Fatalf("esperado email cru como username, obtido %q", ident.Username)
	}
}

func TestChainServiceKeySemEmail(t *testing.T) {
	chain, _ := newTestChain(t, "chave-secreta", &stubDirectory{})

	header := http.Header{}
	header.Set(HeaderAPIKey, "chave-secreta")

	ident, err := chain.Resolve(context.Background(), header)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if ident.Username != ServiceFallbackUsername {
		t.Fatalf("esperado %q, obtido %q", ServiceFallbackUsername, ident.Username)
	}
}

func TestChainChaveErradaCaiParaBearer(t *testing.T) {
	chain, manager := newTestChain(t, "chave-secreta", &stubDirectory{})

	token, err := manager.Generate("alice", RoleDefault)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	header := http.Header{}
	header.Set(HeaderAPIKey, "chave-errada")
	header.Set("Authorization", "Bearer "+token)

	ident, err := chain.Resolve(context.Background(), header)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if ident.Channel != ChannelBearer {
		t.Fatalf("canal esperado %q, obtido %q", ChannelBearer, ident.Channel)
	}
	if ident.Username != "alice" {
		t.Fatalf("username esperado alice, obtido %q", ident.Username)
	}
}

func TestChainServiceKeyPrecedeBearer(t *testing.T) {
	chain, manager := newTestChain(t, "chave-secreta", &stubDirectory{})

	token, err := manager.Generate("alice", RoleDefault)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	header := http.Header{}
	header.Set(HeaderAPIKey, "chave-secreta")
	header.Set("Authorization", "Bearer "+token)

	ident, err := chain.Resolve(context.Background(), header)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if ident.Channel != ChannelService {
		t.Fatalf("a chave de serviço devia resolver primeiro, canal obtido %q", ident.Channel)
	}
}

func TestChainBearerMalformadoErroDuro(t *testing.T) {
	chain, _ := newTestChain(t, "chave-secreta", &stubDirectory{})

	header := http.Header{}
	header.Set("Authorization", "Bearer nao-e-um-token")

	if _, err := chain.Resolve(context.Background(), header); !errors.Is(err, ErrTokenInvalido) {
		t.Fatalf("esperado ErrTokenInvalido, obtido %v", err)
	}
}

func TestChainPrefixoBearerExato(t *testing.T) {
	chain, manager := newTestChain(t, "chave-secreta", &stubDirectory{})

	token, err := manager.Generate("alice", RoleDefault)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	// Só "Bearer" com esta capitalização identifica o canal; qualquer outra
	// grafia não é credencial e a cadeia termina sem identidade.
	for _, prefixo := range []string{"bearer", "BEARER", "Token"} {
		header := http.Header{}
		header.Set("Authorization", prefixo+" "+token)

		if _, err := chain.Resolve(context.Background(), header); !errors.Is(err, ErrNoCredentials) {
			t.Fatalf("prefixo %q: esperado ErrNoCredentials, obtido %v", prefixo, err)
		}
	}
}

func TestChainSemCredenciais(t *testing.T) {
	chain, _ := newTestChain(t, "chave-secreta", &stubDirectory{})

	if _, err := chain.Resolve(context.Background(), http.Header{}); !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("esperado ErrNoCredentials, obtido %v", err)
	}
}

func TestServiceKeyErroDeDiretorioPropaga(t *testing.T) {
	falha := errors.New("mongo indisponível")
	chain, _ := newTestChain(t, "chave-secreta", &stubDirectory{err: falha})

	header := http.Header{}
	header.Set(HeaderAPIKey, "chave-secreta")
	header.Set(HeaderUserEmail, "ana@example.com")

	if _, err := chain.Resolve(context.Background(), header); !errors.Is(err, falha) {
		t.Fatalf("esperado erro do diretório, obtido %v", err)
	}
}
