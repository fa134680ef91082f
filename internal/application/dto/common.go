package dto

import "github.com/shopspring/decimal"

// Los precios y agregados viajan como números JSON, no como strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP genérico (404, 500).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo 400: lista ordenada y completa de violaciones.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}
