package util

import (
	"errors"
	"net/mail"
	"strings"
)

// ValidationError distingue falhas de validação de entrada de erros
// internos, para que os handlers respondam 400 em vez de 500.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// NewValidationError cria um erro de validação com a mensagem dada.
func NewValidationError(msg string) error {
	return &ValidationError{msg: msg}
}

// IsValidation reporta se o erro é uma falha de validação de entrada.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidateEmail retorna erro para e-mails inválidos.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return NewValidationError("email obrigatório")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return NewValidationError("email inválido")
	}
	return nil
}

// ValidatePassword verifica requisitos mínimos de senha.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return NewValidationError("senha deve ter pelo menos 8 caracteres")
	}
	return nil
}

// RequireString garante string não vazia.
func RequireString(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field + " obrigatório")
	}
	return nil
}
