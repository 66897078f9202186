package export

import (
	"strings"

	"github.com/hverdugo/health-survey-api/internal/domain/entity"
)

// renderCSV serializa los registros con TODOS los campos entre comillas,
// encabezado incluido. Excel respeta así los ceros a la izquierda de
// EmployeeNumber al abrir el archivo directamente.
func renderCSV(records []entity.SurveyResponse) []byte {
	var b strings.Builder
	writeQuotedRow(&b, entity.SurveyResponseColumns)
	for _, r := range records {
		writeQuotedRow(&b, r.Fields())
	}
	return []byte(b.String())
}

// writeQuotedRow escribe una fila citando cada campo y duplicando las
// comillas internas (RFC 4180).
func writeQuotedRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
