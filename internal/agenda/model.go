package agenda

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Evento é uma marcação de agenda de um utilizador.
type Evento struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Utilizador string             `bson:"utilizador" json:"utilizador"`
	Data       string             `bson:"data" json:"data"`
	HoraInicio string             `bson:"hora_inicio" json:"hora_inicio"`
	HoraFim    string             `bson:"hora_fim" json:"hora_fim"`
	Descricao  string             `bson:"descricao,omitempty" json:"descricao,omitempty"`
}

// Patch é o conjunto parcial de campos aceite na edição de uma marcação.
type Patch struct {
	Utilizador *string `json:"utilizador"`
	Data       *string `json:"data"`
	HoraInicio *string `json:"hora_inicio"`
	HoraFim    *string `json:"hora_fim"`
	Descricao  *string `json:"descricao"`
}

func (p Patch) toSet() bson.M {
	set := bson.M{}
	if p.Utilizador != nil {
		set["utilizador"] = *p.Utilizador
	}
	if p.Data != nil {
		set["data"] = *p.Data
	}
	if p.HoraInicio != nil {
		set["hora_inicio"] = *p.HoraInicio
	}
	if p.HoraFim != nil {
		set["hora_fim"] = *p.HoraFim
	}
	if p.Descricao != nil {
		set["descricao"] = *p.Descricao
	}
	return set
}
