package http

import (
	"encoding/json"
	"net/http"
)

// envelope é o formato único de resposta da API: data preenchido no
// sucesso, error preenchido na falha, nunca ambos.
type envelope struct {
	Data  any      `json:"data"`
	Error *erroAPI `json:"error"`
}

// erroAPI descreve falhas normalizadas para os clientes.
type erroAPI struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	respond(w, status, envelope{Data: data})
}

func writeError(w http.ResponseWriter, status int, code, message string, details any) {
	respond(w, status, envelope{Error: &erroAPI{Code: code, Message: message, Details: details}})
}

func respond(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
