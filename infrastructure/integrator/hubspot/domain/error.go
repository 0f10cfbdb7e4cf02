package hubspotdomain

import (
	"fmt"
	"net/http"
)

// ErrorResponse representa o corpo de erro padrão da API do HubSpot
type ErrorResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId"`
	Category      string `json:"category"`
	SubCategory   string `json:"subCategory,omitempty"`
}

// APIError é o erro retornado pelo cliente quando o HubSpot responde com status diferente de 2xx.
// Body é nil quando o corpo não pôde ser decodificado.
type APIError struct {
	StatusCode int
	Body       *ErrorResponse
	Raw        string
}

func (e *APIError) Error() string {
	if e.Body != nil && e.Body.Message != "" {
		return fmt.Sprintf("hubspot: HTTP-Code: %d Message: %s", e.StatusCode, e.Body.Message)
	}
	if e.Raw != "" {
		return fmt.Sprintf("hubspot: HTTP-Code: %d Body: %s", e.StatusCode, e.Raw)
	}
	return fmt.Sprintf("hubspot: HTTP-Code: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Code retorna o status HTTP devolvido pelo HubSpot
func (e *APIError) Code() int {
	return e.StatusCode
}

// BodyMessage retorna a mensagem estruturada do corpo de erro, se houver
func (e *APIError) BodyMessage() string {
	if e.Body == nil {
		return ""
	}
	return e.Body.Message
}

// IsUnauthorized verifica se o token foi rejeitado
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
