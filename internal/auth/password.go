package auth

import (
	"github.com/alexedwards/argon2id"
)

var hashParams = &argon2id.Params{
	Memory:      64 * 1024, // 64 MB
	Iterations:  3,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// HashPassword gera um hash Argon2id. Os parâmetros ficam embutidos no
// próprio hash, nunca guardamos a senha em claro.
func HashPassword(password string) (string, error) {
	return argon2id.CreateHash(password, hashParams)
}

// VerifyPassword compara a senha com o hash persistido.
func VerifyPassword(password, encodedHash string) (bool, error) {
	return argon2id.ComparePasswordAndHash(password, encodedHash)
}
