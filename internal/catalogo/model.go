package catalogo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cliente é um cliente faturável, referenciado pelas tarefas pelo nome.
type Cliente struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nome        string             `bson:"nome" json:"nome"`
	Empresa     string             `bson:"empresa,omitempty" json:"empresa,omitempty"`
	Pais        string             `bson:"pais,omitempty" json:"pais,omitempty"`
	DistanciaKm float64            `bson:"distancia_km,omitempty" json:"distancia_km,omitempty"`
	TempoViagem string             `bson:"tempo_viagem,omitempty" json:"tempo_viagem,omitempty"`
	Latitude    float64            `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude   float64            `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Localidade  string             `bson:"localidade,omitempty" json:"localidade,omitempty"`
}

// ClientePatch é o conjunto parcial aceite na edição de cliente.
type ClientePatch struct {
	Nome        *string  `json:"nome"`
	Empresa     *string  `json:"empresa"`
	Pais        *string  `json:"pais"`
	DistanciaKm *float64 `json:"distancia_km"`
	TempoViagem *string  `json:"tempo_viagem"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Localidade  *string  `json:"localidade"`
}

func (p ClientePatch) toSet() bson.M {
	set := bson.M{}
	putString(set, "nome", p.Nome)
	putString(set, "empresa", p.Empresa)
	putString(set, "pais", p.Pais)
	putFloat(set, "distancia_km", p.DistanciaKm)
	putString(set, "tempo_viagem", p.TempoViagem)
	putFloat(set, "latitude", p.Latitude)
	putFloat(set, "longitude", p.Longitude)
	putString(set, "localidade", p.Localidade)
	return set
}

// Contrato associa um cliente a condições comerciais.
type Contrato struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Contrato   string             `bson:"contrato" json:"contrato"`
	Estado     string             `bson:"estado" json:"estado"`
	Empresa    string             `bson:"empresa" json:"empresa"`
	Cliente    string             `bson:"cliente" json:"cliente"`
	PManager   string             `bson:"p_manager,omitempty" json:"p_manager,omitempty"`
	Comercial  string             `bson:"comercial,omitempty" json:"comercial,omitempty"`
	DataInicio string             `bson:"data_inicio" json:"data_inicio"`
	DataFim    string             `bson:"data_fim" json:"data_fim"`
	ValorD     float64            `bson:"valor_d,omitempty" json:"valor_d,omitempty"`
	ValorEuro  float64            `bson:"valor_euro,omitempty" json:"valor_euro,omitempty"`
}

// ContratoPatch é o conjunto parcial aceite na edição de contrato.
type ContratoPatch struct {
	Contrato   *string  `json:"contrato"`
	Estado     *string  `json:"estado"`
	Empresa    *string  `json:"empresa"`
	Cliente    *string  `json:"cliente"`
	PManager   *string  `json:"p_manager"`
	Comercial  *string  `json:"comercial"`
	DataInicio *string  `json:"data_inicio"`
	DataFim    *string  `json:"data_fim"`
	ValorD     *float64 `json:"valor_d"`
	ValorEuro  *float64 `json:"valor_euro"`
}

func (p ContratoPatch) toSet() bson.M {
	set := bson.M{}
	putString(set, "contrato", p.Contrato)
	putString(set, "estado", p.Estado)
	putString(set, "empresa", p.Empresa)
	putString(set, "cliente", p.Cliente)
	putString(set, "p_manager", p.PManager)
	putString(set, "comercial", p.Comercial)
	putString(set, "data_inicio", p.DataInicio)
	putString(set, "data_fim", p.DataFim)
	putFloat(set, "valor_d", p.ValorD)
	putFloat(set, "valor_euro", p.ValorEuro)
	return set
}

// Produto é um item de catálogo referenciado pelas tarefas.
type Produto struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Produto string             `bson:"produto" json:"produto"`
	Empresa string             `bson:"empresa,omitempty" json:"empresa,omitempty"`
}

// ProdutoPatch é o conjunto parcial aceite na edição de produto.
type ProdutoPatch struct {
	Produto *string `json:"produto"`
	Empresa *string `json:"empresa"`
}

func (p ProdutoPatch) toSet() bson.M {
	set := bson.M{}
	putString(set, "produto", p.Produto)
	putString(set, "empresa", p.Empresa)
	return set
}

// Atividade é um tipo de trabalho com custo por hora.
type Atividade struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Atividade string             `bson:"atividade" json:"atividade"`
	CustoHora float64            `bson:"custo_hora" json:"custo_hora"`
}

// AtividadePatch é o conjunto parcial aceite na edição de atividade.
type AtividadePatch struct {
	Atividade *string  `json:"atividade"`
	CustoHora *float64 `json:"custo_hora"`
}

func (p AtividadePatch) toSet() bson.M {
	set := bson.M{}
	putString(set, "atividade", p.Atividade)
	putFloat(set, "custo_hora", p.CustoHora)
	return set
}

// Parceiro é uma entidade externa que participa em tarefas. Latitude e
// longitude são texto livre, como registado historicamente.
type Parceiro struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Parceiro   string             `bson:"parceiro,omitempty" json:"parceiro,omitempty"`
	Empresa    string             `bson:"empresa,omitempty" json:"empresa,omitempty"`
	Pais       string             `bson:"pais,omitempty" json:"pais,omitempty"`
	Localidade string             `bson:"localidade,omitempty" json:"localidade,omitempty"`
	Latitude   string             `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude  string             `bson:"longitude,omitempty" json:"longitude,omitempty"`
}

// ParceiroPatch é o conjunto parcial aceite na edição de parceiro.
type ParceiroPatch struct {
	Parceiro   *string `json:"parceiro"`
	Empresa    *string `json:"empresa"`
	Pais       *string `json:"pais"`
	Localidade *string `json:"localidade"`
	Latitude   *string `json:"latitude"`
	Longitude  *string `json:"longitude"`
}

func (p ParceiroPatch) toSet() bson.M {
	set := bson.M{}
	putString(set, "parceiro", p.Parceiro)
	putString(set, "empresa", p.Empresa)
	putString(set, "pais", p.Pais)
	putString(set, "localidade", p.Localidade)
	putString(set, "latitude", p.Latitude)
	putString(set, "longitude", p.Longitude)
	return set
}

func putString(set bson.M, field string, val *string) {
	if val != nil {
		set[field] = *val
	}
}

func putFloat(set bson.M, field string, val *float64) {
	if val != nil {
		set[field] = *val
	}
}
