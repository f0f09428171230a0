package models

import (
	"github.com/shopspring/decimal"
)

// Product es un artículo del catálogo. CategoryID es una referencia
// débil: se guarda como columna suelta, sin asociación gorm ni
// constraint de clave foránea, así que borrar la categoría referida
// no borra ni bloquea el producto.
type Product struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Name       string          `gorm:"size:255;not null" json:"name"`
	Price      decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	CategoryID *uint           `gorm:"index" json:"categoryId,omitempty"`
}

func (p *Product) TableName() string {
	return "products"
}

// CategoryRef es la categoría embebida en la proyección.
type CategoryRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ProductView es la proyección de lectura producto + categoría.
// No se persiste; Category queda en nil cuando CategoryID es nulo o
// apunta a una categoría que ya no existe.
type ProductView struct {
	ID       uint         `json:"id"`
	Name     string       `json:"name"`
	Price    float64      `json:"price"`
	Category *CategoryRef `json:"category,omitempty"`
}
