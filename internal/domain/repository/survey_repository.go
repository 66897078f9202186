package repository

import "github.com/hverdugo/health-survey-api/internal/domain/entity"

// SurveyResponseRepository define el puerto de persistencia de respuestas (DIP).
// El almacén es de solo inserción: no existe actualización ni borrado.
type SurveyResponseRepository interface {
	// Initialize crea la tabla con solo el encabezado si no existe.
	Initialize() error
	Append(r entity.SurveyResponse) error
	// ReadAll devuelve vacío (sin error) cuando el respaldo no existe.
	ReadAll() ([]entity.SurveyResponse, error)
	Exists() bool
	// Stat expone tamaño en bytes y ubicación del respaldo.
	Stat() (size int64, location string, err error)
}
