package csvstore_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hverdugo/health-survey-api/internal/domain"
	"github.com/hverdugo/health-survey-api/internal/domain/entity"
	"github.com/hverdugo/health-survey-api/internal/infrastructure/csvstore"
)

func tempSurveyPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "data", "survey_responses.csv")
}

func buildStoredResponse() entity.SurveyResponse {
	return entity.SurveyResponse{
		SubmittedAt:    time.Date(2025, 1, 15, 9, 30, 0, 0, time.Local),
		EmployeeNumber: "00070098",
		EmployeeName:   "Aye Aye Tun",
		Gender:         "Female",
		Age:            30,
		WaistInches:    decimal.RequireFromString("34.5"),
		HeightFeet:     5,
		HeightInches:   6,
		WeightLb:       decimal.RequireFromString("150.5"),
		BMI:            decimal.RequireFromString("24.3"),
		BMICategory:    "Normal weight",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Initialize
// ──────────────────────────────────────────────────────────────────────────────

// Initialize deja la tabla lista para anexar: solo el encabezado canónico.
func TestInitialize_CreaTablaConEncabezado(t *testing.T) {
	path := tempSurveyPath(t)
	repo := csvstore.NewSurveyRepository(path)

	require.NoError(t, repo.Initialize())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(entity.SurveyResponseColumns, ",")+"\n", string(data))

	records, err := repo.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestInitialize_NoPisaDatosExistentes(t *testing.T) {
	repo := csvstore.NewSurveyRepository(tempSurveyPath(t))
	require.NoError(t, repo.Append(buildStoredResponse()))

	require.NoError(t, repo.Initialize())

	records, err := repo.ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "Initialize sobre una tabla con filas no debe borrarlas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Append y ReadAll
// ──────────────────────────────────────────────────────────────────────────────

// Ida y vuelta completa: lo que se anexa se relee idéntico, incluidos los
// ceros a la izquierda y los decimales.
func TestAppend_IdaYVuelta(t *testing.T) {
	repo := csvstore.NewSurveyRepository(tempSurveyPath(t))
	original := buildStoredResponse()

	require.NoError(t, repo.Append(original))

	records, err := repo.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "2025-01-15 09:30:00", got.SubmittedAt.Format(entity.SubmissionTimeLayout))
	assert.Equal(t, "00070098", got.EmployeeNumber)
	assert.Equal(t, "Aye Aye Tun", got.EmployeeName)
	assert.Equal(t, "Female", got.Gender)
	assert.Equal(t, 30, got.Age)
	assert.Equal(t, "34.5", got.WaistInches.String())
	assert.Equal(t, 5, got.HeightFeet)
	assert.Equal(t, 6, got.HeightInches)
	assert.Equal(t, "150.5", got.WeightLb.String())
	assert.Equal(t, "24.3", got.BMI.String())
	assert.Equal(t, "Normal weight", got.BMICategory)
}

// Append sin Initialize previo crea el archivo con encabezado más la fila.
func TestAppend_CreaArchivoSiFalta(t *testing.T) {
	path := tempSurveyPath(t)
	repo := csvstore.NewSurveyRepository(path)

	require.NoError(t, repo.Append(buildStoredResponse()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "SubmissionDate,"))
}

func TestAppend_ConservaOrdenDeLlegada(t *testing.T) {
	repo := csvstore.NewSurveyRepository(tempSurveyPath(t))

	first := buildStoredResponse()
	second := buildStoredResponse()
	second.EmployeeNumber = "00071215"
	second.EmployeeName = "Pyae Phyo Latt"

	require.NoError(t, repo.Append(first))
	require.NoError(t, repo.Append(second))

	records, err := repo.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "00070098", records[0].EmployeeNumber)
	assert.Equal(t, "00071215", records[1].EmployeeNumber)
}

func TestReadAll_ArchivoAusenteEsTablaVacia(t *testing.T) {
	repo := csvstore.NewSurveyRepository(tempSurveyPath(t))

	records, err := repo.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}

// Celdas ilegibles quedan en cero en vez de tumbar la lectura completa: el
// agregador las trata como dato ausente.
func TestReadAll_CeldasIlegiblesQuedanEnCero(t *testing.T) {
	path := tempSurveyPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	raw := strings.Join(entity.SurveyResponseColumns, ",") + "\n" +
		"no-es-fecha,00070098,Aye Aye Tun,Female,abc,xx,5,6,150.5,24.3,Normal weight\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	repo := csvstore.NewSurveyRepository(path)
	records, err := repo.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.True(t, got.SubmittedAt.IsZero(), "fecha ilegible queda en cero")
	assert.Equal(t, 0, got.Age, "edad ilegible queda en cero")
	assert.True(t, got.WaistInches.IsZero(), "cintura ilegible queda en cero")
	assert.Equal(t, "00070098", got.EmployeeNumber, "las celdas sanas se conservan")
	assert.Equal(t, "24.3", got.BMI.String())
}

// Filas cortas (menos columnas de las esperadas) no provocan pánico.
func TestReadAll_FilaCortaNoRevienta(t *testing.T) {
	path := tempSurveyPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	raw := strings.Join(entity.SurveyResponseColumns, ",") + "\n" +
		"2025-01-15 09:30:00,00070098\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	repo := csvstore.NewSurveyRepository(path)
	records, err := repo.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "00070098", records[0].EmployeeNumber)
	assert.Empty(t, records[0].EmployeeName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exists y Stat
// ──────────────────────────────────────────────────────────────────────────────

func TestExists_ReflejaElRespaldo(t *testing.T) {
	repo := csvstore.NewSurveyRepository(tempSurveyPath(t))

	assert.False(t, repo.Exists())
	require.NoError(t, repo.Initialize())
	assert.True(t, repo.Exists())
}

func TestStat_RespaldoAusente(t *testing.T) {
	path := tempSurveyPath(t)
	repo := csvstore.NewSurveyRepository(path)

	size, location, err := repo.Stat()
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, size)
	assert.Equal(t, path, location)
}

func TestStat_ReportaTamanoYUbicacion(t *testing.T) {
	path := tempSurveyPath(t)
	repo := csvstore.NewSurveyRepository(path)
	require.NoError(t, repo.Append(buildStoredResponse()))

	size, location, err := repo.Stat()
	require.NoError(t, err)
	assert.Positive(t, size)
	assert.Equal(t, path, location)
}
