package dto

import "github.com/shopspring/decimal"

// ServicePriceRequest body para crear/actualizar una tarifa.
type ServicePriceRequest struct {
	Kind  string          `json:"kind"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ServicePriceResponse tarifa en respuestas.
type ServicePriceResponse struct {
	ID    string          `json:"id"`
	Kind  string          `json:"kind"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// LabParameterDTO un parámetro del esquema de un examen.
type LabParameterDTO struct {
	Name           string `json:"name"`
	Unit           string `json:"unit"`
	ReferenceRange string `json:"reference_range"`
}

// LabTestRequest body para crear/actualizar un esquema de examen.
type LabTestRequest struct {
	Name       string            `json:"name"`
	Parameters []LabParameterDTO `json:"parameters"`
}

// LabTestResponse esquema de examen en respuestas.
type LabTestResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Parameters []LabParameterDTO `json:"parameters"`
}

// PaymentMethodsResponse lista cerrada de medios de pago configurados.
type PaymentMethodsResponse struct {
	PaymentMethods []string `json:"payment_methods"`
}
