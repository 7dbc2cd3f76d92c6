package dto

// PeriodDTO rango de fechas efectivamente aplicado a una consulta.
// Campos vacíos indican que ese extremo quedó sin límite.
type PeriodDTO struct {
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
