package csvexport

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Santander-alt/catalogo/app/models"
)

const (
	// Header con los mismos rótulos que usaba la exportación del
	// frontend, separados por punto y coma.
	Header = "ID;Nombre;Precio;Categoría"

	// SinCategoria es el texto fijo para productos sin categoría.
	SinCategoria = "Sin categoría"
)

// ErrNoProducts corta la exportación con lista vacía: se avisa al
// usuario y no se genera ningún documento.
var ErrNoProducts = errors.New("no hay productos para exportar")

// Export concatena la proyección como texto CSV: una línea de
// cabecera y una línea por producto, campos unidos con ";" sin
// comillas (igual que la concatenación original).
func Export(views []models.ProductView) (string, error) {
	if len(views) == 0 {
		return "", ErrNoProducts
	}

	var b strings.Builder
	b.WriteString(Header)
	for _, v := range views {
		category := SinCategoria
		if v.Category != nil {
			category = v.Category.Name
		}

		b.WriteByte('\n')
		b.WriteString(strconv.FormatUint(uint64(v.ID), 10))
		b.WriteByte(';')
		b.WriteString(v.Name)
		b.WriteByte(';')
		b.WriteString(strconv.FormatFloat(v.Price, 'f', -1, 64))
		b.WriteByte(';')
		b.WriteString(category)
	}
	return b.String(), nil
}
