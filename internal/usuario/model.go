package usuario

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrCredenciaisInvalidas cobre username desconhecido e senha errada,
	// sem distinguir os dois casos na resposta.
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
)

// Usuario é a conta persistida. O hash da senha fica no campo password da
// coleção e nunca é serializado em respostas.
type Usuario struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nome         string             `bson:"nome,omitempty" json:"nome,omitempty"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	EmpresaBase  string             `bson:"empresa_base,omitempty" json:"empresa_base,omitempty"`
	Chave        string             `bson:"chave,omitempty" json:"chave,omitempty"`
	Role         string             `bson:"role,omitempty" json:"role"`
	PasswordHash string             `bson:"password,omitempty" json:"-"`
}

// RoleOuDefault devolve a role persistida ou "user" quando ausente.
func (u *Usuario) RoleOuDefault() string {
	if u.Role == "" {
		return "user"
	}
	return u.Role
}

// CreateInput são os campos aceites na criação de conta pelo backoffice.
type CreateInput struct {
	Nome        string `json:"nome"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	EmpresaBase string `json:"empresa_base"`
	Chave       string `json:"chave"`
	Role        string `json:"role"`
	Password    string `json:"password"`
}

// Patch é o conjunto parcial de campos aceite na edição. Campos nil não são
// tocados no documento persistido.
type Patch struct {
	Nome        *string `json:"nome"`
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	EmpresaBase *string `json:"empresa_base"`
	Chave       *string `json:"chave"`
	Role        *string `json:"role"`
	Password    *string `json:"password"`
}
