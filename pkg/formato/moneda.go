// Package formato agrupa helpers de presentación (moneda es-MX).
package formato

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var impresoraMX = message.NewPrinter(language.MustParse("es-MX"))

// Moneda formatea un monto en pesos mexicanos con dos decimales y
// separadores de miles según la localización es-MX, ej: "$1,234.50 MXN".
// Solo para presentación; los montos viajan como números planos en JSON.
func Moneda(monto decimal.Decimal) string {
	valor, _ := monto.Round(2).Float64()
	return impresoraMX.Sprintf("$%.2f MXN", valor)
}

// Cantidad formatea una cantidad con su unidad de medida, ej: "5 kg".
// Conserva los decimales con los que se registró la cantidad.
func Cantidad(cantidad decimal.Decimal, unidad string) string {
	s := cantidad.String()
	if unidad == "" {
		return s
	}
	return s + " " + unidad
}
