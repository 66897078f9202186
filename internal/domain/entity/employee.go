package entity

import "strings"

// Employee es una entrada del padrón de empleados (solo lectura para la API).
// Number siempre se maneja normalizado a 8 dígitos con ceros a la izquierda.
type Employee struct {
	Number string
	Name   string
}

// NormalizeEmployeeNumber recorta espacios y rellena con ceros a la izquierda
// hasta 8 caracteres. Valores de 8 o más caracteres se devuelven sin cambio.
func NormalizeEmployeeNumber(raw string) string {
	n := strings.TrimSpace(raw)
	if len(n) >= 8 {
		return n
	}
	return strings.Repeat("0", 8-len(n)) + n
}
