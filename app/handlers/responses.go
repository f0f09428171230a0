package handlers

// MessageResponse es la forma única de confirmación y de error del
// API: dos cubetas, éxito o 500 con mensaje legible.
type MessageResponse struct {
	Message string `json:"message"`
}

// ResultResponse acompaña las creaciones con la entidad guardada.
type ResultResponse struct {
	Message string      `json:"message"`
	Result  interface{} `json:"result"`
}
