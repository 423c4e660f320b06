package dto

// ErrorResponse cuerpo de error HTTP. El campo se llama "error" porque los
// clientes existentes leen resp.error para el mensaje inline.
type ErrorResponse struct {
	Error string `json:"error"`
	// AvailableStock se incluye solo en rechazos de venta por stock insuficiente.
	AvailableStock *int64 `json:"available_stock,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
