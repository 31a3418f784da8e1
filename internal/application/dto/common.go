package dto

// ErrorResponse cuerpo de error HTTP. Message va en francés (idioma del producto).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
