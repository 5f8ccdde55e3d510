package projeto

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Projeto agrega as horas contratadas e gastas de um par cliente/contrato.
// HorasGastas é sempre derivado das tarefas faturadas, nunca aceite do cliente.
type Projeto struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Cliente          string             `bson:"cliente" json:"cliente"`
	Contrato         string             `bson:"contrato" json:"contrato"`
	Descricao        string             `bson:"descricao" json:"descricao"`
	HorasContratadas float64            `bson:"horas_contratadas" json:"horas_contratadas"`
	HorasGastas      float64            `bson:"horas_gastas" json:"horas_gastas"`
}

// CreateInput transporta os campos aceites na criação.
type CreateInput struct {
	Cliente          string  `json:"cliente"`
	Contrato         string  `json:"contrato"`
	Descricao        string  `json:"descricao"`
	HorasContratadas float64 `json:"horas_contratadas"`
}

// Patch descreve uma atualização parcial. As horas gastas ficam de fora:
// só a recomputação as escreve.
type Patch struct {
	Cliente          *string  `json:"cliente"`
	Contrato         *string  `json:"contrato"`
	Descricao        *string  `json:"descricao"`
	HorasContratadas *float64 `json:"horas_contratadas"`
}

func (p Patch) toSet() bson.M {
	set := bson.M{}
	if p.Cliente != nil {
		set["cliente"] = *p.Cliente
	}
	if p.Contrato != nil {
		set["contrato"] = *p.Contrato
	}
	if p.Descricao != nil {
		set["descricao"] = *p.Descricao
	}
	if p.HorasContratadas != nil {
		set["horas_contratadas"] = *p.HorasContratadas
	}
	return set
}
