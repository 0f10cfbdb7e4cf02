package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrRouteNotFound       = "VAL_003" // Rota inexistente

	// Erros do CRM
	ErrObjectNotFound = "CRM_001" // Registro não encontrado no CRM

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrObjectNotFound:      http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
}

// APIError é o corpo de erro consumido pelo front-end: apenas a mensagem.
type APIError struct {
	Error string `json:"error"`
}

// StatusFor retorna o status HTTP de um código, 500 quando desconhecido.
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string) {
	if message == "" {
		message = http.StatusText(StatusFor(code))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	if err := json.NewEncoder(w).Encode(APIError{Error: message}); err != nil {
		logrus.WithError(err).Warn("error encoding error response")
	}
}
