package tarefa

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrSemPermissao indica que a identidade atuante não é dona da tarefa.
var ErrSemPermissao = errors.New("sem permissão sobre a tarefa")

// Defaults herdados do formulário de registo.
const (
	TempoZero    = "00:00"
	NaoFaturavel = "No"
	LocalDefault = "Employee House"
)

// Tarefa é um registo de trabalho imputado por um utilizador. Os tempos são
// guardados como texto "HH:MM"; a conversão para horas decimais acontece
// apenas no cálculo agregado dos projetos.
type Tarefa struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username        string             `bson:"username" json:"username"`
	Descricao       string             `bson:"descricao,omitempty" json:"descricao,omitempty"`
	Cliente         string             `bson:"cliente,omitempty" json:"cliente,omitempty"`
	Parceiro        string             `bson:"parceiro,omitempty" json:"parceiro,omitempty"`
	Produto         string             `bson:"produto,omitempty" json:"produto,omitempty"`
	Contrato        string             `bson:"contrato,omitempty" json:"contrato,omitempty"`
	Atividade       string             `bson:"atividade,omitempty" json:"atividade,omitempty"`
	Data            string             `bson:"data,omitempty" json:"data,omitempty"`
	DistanciaViagem float64            `bson:"distancia_viagem" json:"distancia_viagem"`
	TempoViagem     string             `bson:"tempo_viagem" json:"tempo_viagem"`
	TempoAtividade  string             `bson:"tempo_atividade" json:"tempo_atividade"`
	TempoFaturado   string             `bson:"tempo_faturado" json:"tempo_faturado"`
	Faturavel       string             `bson:"faturavel" json:"faturavel"`
	ViagemFaturavel string             `bson:"viagem_faturavel" json:"viagem_faturavel"`
	Local           string             `bson:"local" json:"local"`
	ValorEuro       float64            `bson:"valor_euro" json:"valor_euro"`
}

// CreateInput são os campos aceites na criação. O username nunca vem do
// corpo: é sempre a identidade atuante resolvida.
type CreateInput struct {
	Descricao       string  `json:"descricao"`
	Cliente         string  `json:"cliente"`
	Parceiro        string  `json:"parceiro"`
	Produto         string  `json:"produto"`
	Contrato        string  `json:"contrato"`
	Atividade       string  `json:"atividade"`
	Data            string  `json:"data"`
	DistanciaViagem float64 `json:"distancia_viagem"`
	TempoViagem     string  `json:"tempo_viagem"`
	TempoAtividade  string  `json:"tempo_atividade"`
	TempoFaturado   string  `json:"tempo_faturado"`
	Faturavel       string  `json:"faturavel"`
	ViagemFaturavel string  `json:"viagem_faturavel"`
	Local           string  `json:"local"`
	ValorEuro       float64 `json:"valor_euro"`
}

// Patch é o conjunto parcial de campos aceite na edição.
type Patch struct {
	Descricao       *string  `json:"descricao"`
	Cliente         *string  `json:"cliente"`
	Parceiro        *string  `json:"parceiro"`
	Produto         *string  `json:"produto"`
	Contrato        *string  `json:"contrato"`
	Atividade       *string  `json:"atividade"`
	Data            *string  `json:"data"`
	DistanciaViagem *float64 `json:"distancia_viagem"`
	TempoViagem     *string  `json:"tempo_viagem"`
	TempoAtividade  *string  `json:"tempo_atividade"`
	TempoFaturado   *string  `json:"tempo_faturado"`
	Faturavel       *string  `json:"faturavel"`
	ViagemFaturavel *string  `json:"viagem_faturavel"`
	Local           *string  `json:"local"`
	ValorEuro       *float64 `json:"valor_euro"`
}

func (p Patch) toSet() bson.M {
	set := bson.M{}
	strs := map[string]*string{
		"descricao":        p.Descricao,
		"cliente":          p.Cliente,
		"parceiro":         p.Parceiro,
		"produto":          p.Produto,
		"contrato":         p.Contrato,
		"atividade":        p.Atividade,
		"data":             p.Data,
		"tempo_viagem":     p.TempoViagem,
		"tempo_atividade":  p.TempoAtividade,
		"tempo_faturado":   p.TempoFaturado,
		"faturavel":        p.Faturavel,
		"viagem_faturavel": p.ViagemFaturavel,
		"local":            p.Local,
	}
	for field, val := range strs {
		if val != nil {
			set[field] = *val
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

// Filtro restringe a listagem. Campos de texto são casados como substring
// sem distinção de maiúsculas; numéricos por igualdade exata.
type Filtro struct {
	Descricao       string
	Cliente         string
	Parceiro        string
	Produto         string
	Contrato        string
	Atividade       string
	Data            string
	TempoViagem     string
	TempoAtividade  string
	TempoFaturado   string
	Faturavel       string
	ViagemFaturavel string
	Local           string
	DistanciaViagem *float64
	ValorEuro       *float64
}

// LinhaAtividade é uma linha do relatório mensal de atividade.
type LinhaAtividade struct {
	Username       string `json:"username"`
	Cliente        string `json:"cliente"`
	Contrato       string `json:"contrato"`
	Data           string `json:"data"`
	TempoAtividade string `json:"tempo_atividade"`
}
