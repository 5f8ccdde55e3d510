package preset

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrSemPermissao indica uma tentativa de alterar um preset de outro utilizador.
var ErrSemPermissao = errors.New("sem permissão sobre o preset")

// Preset é um modelo de tarefa reutilizável, privado ao utilizador que o criou.
type Preset struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nome            string             `bson:"nome" json:"nome"`
	Username        string             `bson:"username" json:"username"`
	Descricao       string             `bson:"descricao" json:"descricao"`
	Cliente         string             `bson:"cliente" json:"cliente"`
	Parceiro        string             `bson:"parceiro" json:"parceiro"`
	Produto         string             `bson:"produto" json:"produto"`
	Contrato        string             `bson:"contrato" json:"contrato"`
	Atividade       string             `bson:"atividade" json:"atividade"`
	TempoViagem     string             `bson:"tempo_viagem" json:"tempo_viagem"`
	TempoAtividade  string             `bson:"tempo_atividade" json:"tempo_atividade"`
	TempoFaturado   string             `bson:"tempo_faturado" json:"tempo_faturado"`
	Faturavel       string             `bson:"faturavel" json:"faturavel"`
	ViagemFaturavel string             `bson:"viagem_faturavel" json:"viagem_faturavel"`
	Local           string             `bson:"local" json:"local"`
	DistanciaViagem float64            `bson:"distancia_viagem" json:"distancia_viagem"`
	ValorEuro       float64            `bson:"valor_euro" json:"valor_euro"`
}

// CreateInput transporta os campos aceites na criação. O username é sempre
// carimbado a partir da identidade autenticada.
type CreateInput struct {
	Nome            string  `json:"nome"`
	Descricao       string  `json:"descricao"`
	Cliente         string  `json:"cliente"`
	Parceiro        string  `json:"parceiro"`
	Produto         string  `json:"produto"`
	Contrato        string  `json:"contrato"`
	Atividade       string  `json:"atividade"`
	TempoViagem     string  `json:"tempo_viagem"`
	TempoAtividade  string  `json:"tempo_atividade"`
	TempoFaturado   string  `json:"tempo_faturado"`
	Faturavel       string  `json:"faturavel"`
	ViagemFaturavel string  `json:"viagem_faturavel"`
	Local           string  `json:"local"`
	DistanciaViagem float64 `json:"distancia_viagem"`
	ValorEuro       float64 `json:"valor_euro"`
}

// Patch descreve uma atualização parcial.
type Patch struct {
	Nome            *string  `json:"nome"`
	Descricao       *string  `json:"descricao"`
	Cliente         *string  `json:"cliente"`
	Parceiro        *string  `json:"parceiro"`
	Produto         *string  `json:"produto"`
	Contrato        *string  `json:"contrato"`
	Atividade       *string  `json:"atividade"`
	TempoViagem     *string  `json:"tempo_viagem"`
	TempoAtividade  *string  `json:"tempo_atividade"`
	TempoFaturado   *string  `json:"tempo_faturado"`
	Faturavel       *string  `json:"faturavel"`
	ViagemFaturavel *string  `json:"viagem_faturavel"`
	Local           *string  `json:"local"`
	DistanciaViagem *float64 `json:"distancia_viagem"`
	ValorEuro       *float64 `json:"valor_euro"`
}

func (p Patch) toSet() bson.M {
	set := bson.M{}
	strings := map[string]*string{
		"nome":             p.Nome,
		"descricao":        p.Descricao,
		"cliente":          p.Cliente,
		"parceiro":         p.Parceiro,
		"produto":          p.Produto,
		"contrato":         p.Contrato,
		"atividade":        p.Atividade,
		"tempo_viagem":     p.TempoViagem,
		"tempo_atividade":  p.TempoAtividade,
		"tempo_faturado":   p.TempoFaturado,
		"faturavel":        p.Faturavel,
		"viagem_faturavel": p.ViagemFaturavel,
		"local":            p.Local,
	}
	for campo, valor := range strings {
		if valor != nil {
			set[campo] = *valor
		}
	}
	if p.DistanciaViagem != nil {
		set["distancia_viagem"] = *p.DistanciaViagem
	}
	if p.ValorEuro != nil {
		set["valor_euro"] = *p.ValorEuro
	}
	return set
}
