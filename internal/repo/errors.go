package repo

import "errors"

var (
	// ErrNotFound é devolvido quando o identificador não resolve para
	// nenhum registo.
	ErrNotFound = errors.New("registo não encontrado")

	// ErrInvalidID é devolvido quando o identificador não tem o formato
	// hexadecimal esperado.
	ErrInvalidID = errors.New("id inválido")

	// ErrConflict sinaliza violação de unicidade (username duplicado,
	// projeto repetido para o mesmo cliente/contrato).
	ErrConflict = errors.New("registo já existe")
)
