package domain

import "time"

// TokenCheckStatus é o último resultado da verificação do token do CRM.
type TokenCheckStatus struct {
	Enabled       bool       `json:"enabled"`
	Running       bool       `json:"running"`
	Healthy       *bool      `json:"healthy"`
	LastRunID     string     `json:"last_run_id,omitempty"`
	LastCheckedAt *time.Time `json:"last_checked_at,omitempty"`
	LastError     string     `json:"last_error,omitempty"`
	TokenRejected bool       `json:"token_rejected"`
}

type HealthcheckResponse struct {
	Time string            `json:"time"`
	CRM  *TokenCheckStatus `json:"crm,omitempty"`
}
