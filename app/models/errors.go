package models

import "errors"

// Tipos de error internos. El API los colapsa todos en una respuesta
// 500 genérica, pero los tests y los servicios distinguen el tipo con
// errors.Is en vez de comparar mensajes.
var (
	// ErrValidation indica entrada inválida (campo requerido ausente,
	// referencia estricta a categoría inexistente).
	ErrValidation = errors.New("entrada inválida")

	// ErrNotFound indica que la fila pedida no existe.
	ErrNotFound = errors.New("registro no encontrado")

	// ErrPersistence envuelve cualquier fallo de la capa de datos.
	ErrPersistence = errors.New("error de persistencia")
)
