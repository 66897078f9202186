// Package csvstore implementa los puertos de persistencia sobre archivos CSV
// planos. Todo acceso es de archivo completo: se lee o se reescribe entero,
// sin I/O parcial ni bloqueos.
package csvstore

import (
	"bytes"
	"encoding/csv"
)

// parseCSV decodifica un CSV completo en memoria. FieldsPerRecord queda libre
// para tolerar archivos editados a mano.
func parseCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}
