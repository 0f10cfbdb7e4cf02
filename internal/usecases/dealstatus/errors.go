package dealstatus

import (
	"errors"
	"fmt"
)

const (
	MessageDealIDRequired = "Deal ID is required"
	MessageInternalError  = "Internal Server Error"
)

var (
	ErrDealIDRequired = errors.New("deal ID is required")
	ErrDealNotFound   = errors.New("deal not found")
	ErrDealFetch      = errors.New("error fetching deal from CRM")
)

// DealStatusError carrega o código de API e a mensagem que vai para o cliente.
type DealStatusError struct {
	Err     error  // Erro base (um dos sentinelas acima)
	Code    string // Código de erro para API
	DealID  string
	Message string
	Cause   error // Erro original do CRM, quando houver
}

func (e *DealStatusError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Cause.Error())
	}
	return e.Err.Error()
}

func (e *DealStatusError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// codedError é satisfeito por erros do CRM que informam um status numérico.
type codedError interface {
	Code() int
}

// bodyMessageError é satisfeito por erros do CRM com mensagem estruturada no corpo.
type bodyMessageError interface {
	BodyMessage() string
}

// errorCode retorna o status informado pelo erro do CRM, ou 0.
func errorCode(err error) int {
	var coded codedError
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return 0
}

// errorMessage escolhe, em ordem: a mensagem do corpo de erro do CRM,
// a mensagem do próprio erro e por fim o texto genérico.
func errorMessage(err error) string {
	var withBody bodyMessageError
	if errors.As(err, &withBody) {
		if msg := withBody.BodyMessage(); msg != "" {
			return msg
		}
	}

	if err != nil && err.Error() != "" {
		return err.Error()
	}

	return MessageInternalError
}
