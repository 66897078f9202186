package csvstore

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hverdugo/health-survey-api/internal/domain"
	"github.com/hverdugo/health-survey-api/internal/domain/entity"
	"github.com/hverdugo/health-survey-api/internal/domain/repository"
)

var _ repository.SurveyResponseRepository = (*SurveyRepo)(nil)

// SurveyRepo implementación del puerto SurveyResponseRepository sobre un CSV
// plano de solo inserción.
//
// Limitación conocida: Append reescribe el archivo completo sin bloqueo, por
// lo que dos escrituras simultáneas pueden perder una fila (gana la última).
// El volumen de una encuesta interna no justifica un mecanismo de lock.
type SurveyRepo struct {
	path string
}

// NewSurveyRepository construye el adaptador de la tabla de respuestas.
func NewSurveyRepository(path string) *SurveyRepo {
	return &SurveyRepo{path: path}
}

// Initialize crea la tabla con solo el encabezado si el archivo no existe.
func (r *SurveyRepo) Initialize() error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat responses file: %w", err)
	}
	return r.writeAll(nil)
}

// Append agrega una fila al final releyendo y reescribiendo el archivo
// completo. Si el respaldo no existe lo crea con encabezado más la fila.
func (r *SurveyRepo) Append(resp entity.SurveyResponse) error {
	records, err := r.ReadAll()
	if err != nil {
		return err
	}
	records = append(records, resp)
	return r.writeAll(records)
}

// ReadAll devuelve todas las filas en orden de archivo. Respaldo ausente se
// comporta como tabla vacía. EmployeeNumber se conserva como texto y las
// celdas numéricas ilegibles quedan en cero (dato ausente para los promedios).
func (r *SurveyRepo) ReadAll() ([]entity.SurveyResponse, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []entity.SurveyResponse{}, nil
		}
		return nil, fmt.Errorf("read responses file: %w", err)
	}
	rows, err := parseCSV(data)
	if err != nil {
		return nil, fmt.Errorf("parse responses file: %w", err)
	}
	records := make([]entity.SurveyResponse, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // encabezado
		}
		records = append(records, decodeResponseRow(row))
	}
	return records, nil
}

// Exists informa si el respaldo está presente en disco.
func (r *SurveyRepo) Exists() bool {
	_, err := os.Stat(r.path)
	return err == nil
}

// Stat devuelve tamaño en bytes y ruta del respaldo.
func (r *SurveyRepo) Stat() (int64, string, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, r.path, domain.ErrNotFound
		}
		return 0, r.path, fmt.Errorf("stat responses file: %w", err)
	}
	return info.Size(), r.path, nil
}

// writeAll serializa encabezado más todas las filas y reemplaza el archivo.
func (r *SurveyRepo) writeAll(records []entity.SurveyResponse) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(entity.SurveyResponseColumns); err != nil {
		return fmt.Errorf("write responses header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec.Fields()); err != nil {
			return fmt.Errorf("write response row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush responses: %w", err)
	}
	if err := os.WriteFile(r.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write responses file: %w", err)
	}
	return nil
}

// decodeResponseRow arma la entidad desde una fila cruda, tolerando filas
// cortas y celdas ilegibles.
func decodeResponseRow(row []string) entity.SurveyResponse {
	get := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	rec := entity.SurveyResponse{
		EmployeeNumber: get(1),
		EmployeeName:   get(2),
		Gender:         get(3),
		BMICategory:    get(10),
	}
	if t, err := time.ParseInLocation(entity.SubmissionTimeLayout, get(0), time.Local); err == nil {
		rec.SubmittedAt = t
	}
	if v, err := strconv.Atoi(get(4)); err == nil {
		rec.Age = v
	}
	if v, err := decimal.NewFromString(get(5)); err == nil {
		rec.WaistInches = v
	}
	if v, err := strconv.Atoi(get(6)); err == nil {
		rec.HeightFeet = v
	}
	if v, err := strconv.Atoi(get(7)); err == nil {
		rec.HeightInches = v
	}
	if v, err := decimal.NewFromString(get(8)); err == nil {
		rec.WeightLb = v
	}
	if v, err := decimal.NewFromString(get(9)); err == nil {
		rec.BMI = v
	}
	return rec
}
