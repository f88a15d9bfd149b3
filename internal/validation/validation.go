// Package validation turns go-playground/validator failures into the
// end-user messages the API contract promises: handlers surface the first
// message as the error summary, and the health-record endpoints return the
// full list JSON-encoded under the same key.
package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New builds the validator used by the echo binding layer. Field names in
// messages come from the json tag, matching what the client actually sent.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Messages converts a validation error into the ordered list of end-user
// messages, one per failing field.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, message(fe))
	}
	return msgs
}

// First returns the primary error summary: the first failing rule's message.
func First(err error) string {
	msgs := Messages(err)
	if len(msgs) == 0 {
		return ""
	}
	return msgs[0]
}

// JoinJSON encodes the full message list as a JSON string, the shape the
// health-record endpoints put under the error key.
func JoinJSON(msgs []string) string {
	b, err := json.Marshal(msgs)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório", fe.Field())
	case "email":
		return "Email inválido"
	case "eqfield":
		return "As senhas não coincidem"
	case "required_with":
		return "Senha atual é necessária para alterar a senha"
	case "oneof":
		return fmt.Sprintf("Valor inválido para o campo %s", fe.Field())
	case "min":
		return fmt.Sprintf("O campo %s deve ter no mínimo %s caracteres", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("O campo %s deve ter no máximo %s caracteres", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("Valor inválido para o campo %s", fe.Field())
	}
}
