// importroster convierte una exportación de nómina heredada (CSV en Latin-1 o
// Windows-1252, números de empleado sin relleno) al padrón canónico en UTF-8
// que consume la API: encabezado EmployeeNumber,EmployeeName y números de
// ocho dígitos con ceros a la izquierda.
//
// Uso: go run ./cmd/importroster [-encoding latin1|windows1252|utf8] entrada.csv [salida.csv]
// Por defecto escribe data/employees.csv.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/hverdugo/health-survey-api/internal/domain/entity"
)

func main() {
	encoding := flag.String("encoding", "latin1", "codificación del archivo de entrada: latin1, windows1252 o utf8")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Uso: importroster [-encoding latin1|windows1252|utf8] entrada.csv [salida.csv]")
		os.Exit(1)
	}
	inPath := flag.Arg(0)
	outPath := "data/employees.csv"
	if flag.NArg() > 1 {
		outPath = flag.Arg(1)
	}

	f, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir entrada: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := readRows(f, *encoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	employees, skipped := normalizeRows(rows)
	if len(employees) == 0 {
		fmt.Fprintln(os.Stderr, "La entrada no contiene empleados")
		os.Exit(1)
	}

	if err := writeRoster(outPath, employees); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir padrón: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d empleados (%d filas omitidas)\n", outPath, len(employees), skipped)
}

// readRows decodifica la entrada a UTF-8 según la codificación indicada y
// la parsea como CSV tolerante a filas de distinta longitud.
func readRows(f io.Reader, encoding string) ([][]string, error) {
	var in io.Reader = f
	switch strings.ToLower(encoding) {
	case "latin1", "iso-8859-1", "iso8859-1":
		in = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	case "windows1252", "cp1252":
		in = transform.NewReader(f, charmap.Windows1252.NewDecoder())
	case "utf8", "utf-8":
		// sin transformación
	default:
		return nil, fmt.Errorf("codificación no soportada: %s", encoding)
	}

	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

// normalizeRows aplica el relleno de ceros, descarta filas incompletas y
// duplicados (gana la primera aparición) y detecta un encabezado opcional.
func normalizeRows(rows [][]string) ([]entity.Employee, int) {
	var employees []entity.Employee
	seen := make(map[string]bool)
	skipped := 0

	for i, row := range rows {
		if len(row) < 2 {
			skipped++
			continue
		}
		number := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if i == 0 && isHeaderRow(number) {
			continue
		}
		if number == "" || name == "" {
			skipped++
			continue
		}
		number = entity.NormalizeEmployeeNumber(number)
		if seen[number] {
			skipped++
			continue
		}
		seen[number] = true
		employees = append(employees, entity.Employee{Number: number, Name: name})
	}
	return employees, skipped
}

// isHeaderRow reconoce la primera fila como encabezado si la primera celda
// contiene algo que no sea dígitos.
func isHeaderRow(cell string) bool {
	if cell == "" {
		return true
	}
	for _, r := range cell {
		if r < '0' || r > '9' {
			return true
		}
	}
	return false
}

// writeRoster escribe el padrón canónico: encabezado sin comillas y filas de
// datos entre comillas para conservar los ceros a la izquierda en hojas de cálculo.
func writeRoster(path string, employees []entity.Employee) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear directorio %s: %w", dir, err)
		}
	}

	var b strings.Builder
	b.WriteString("EmployeeNumber,EmployeeName\n")
	for _, e := range employees {
		b.WriteString(quoteCSV(e.Number))
		b.WriteByte(',')
		b.WriteString(quoteCSV(e.Name))
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
