package domain

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// DealStatusRequest são os parâmetros de consulta aceitos pelo endpoint.
type DealStatusRequest struct {
	DealID string `validate:"required"`
}

func (r *DealStatusRequest) Validate() error {
	return validate.Struct(r)
}

// DealStatus é o resultado agregado de uma consulta.
// Company e Owner ficam nil quando não existem ou quando a leitura falhou.
type DealStatus struct {
	Deal         *Deal
	Company      *Company
	Owner        *Owner
	IncludeOwner bool
}

type OwnerSummary struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type DealStatusResponse struct {
	Deal    Properties    `json:"deal"`
	Company Properties    `json:"company"`
	Owner   *OwnerSummary `json:"owner"`
}

// DealStatusBasicResponse não tem a chave owner.
type DealStatusBasicResponse struct {
	Deal    Properties `json:"deal"`
	Company Properties `json:"company"`
}

// Response monta o corpo JSON conforme a variante: com ou sem a chave owner.
func (s *DealStatus) Response() any {
	var dealProps, companyProps Properties
	if s.Deal != nil {
		dealProps = s.Deal.Properties
	}
	if s.Company != nil {
		companyProps = s.Company.Properties
	}

	if !s.IncludeOwner {
		return &DealStatusBasicResponse{
			Deal:    dealProps,
			Company: companyProps,
		}
	}

	resp := &DealStatusResponse{
		Deal:    dealProps,
		Company: companyProps,
	}
	if s.Owner != nil {
		resp.Owner = &OwnerSummary{
			FirstName: s.Owner.FirstName,
			LastName:  s.Owner.LastName,
			Email:     s.Owner.Email,
		}
	}

	return resp
}
