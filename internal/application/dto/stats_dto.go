package dto

// SurveyStatsData es la parte agregada (pura) de GET /survey-stats: se calcula
// solo a partir de los registros, sin tocar el sistema de archivos.
type SurveyStatsData struct {
	TotalResponses     int             `json:"total_responses"`
	GenderDistribution map[string]int  `json:"gender_distribution"`
	Averages           SurveyAverages  `json:"averages"`
	BMICategories      map[string]int  `json:"bmi_categories"`
	DateRange          SurveyDateRange `json:"date_range"`
}

// SurveyAverages promedios redondeados a 1 decimal (0 cuando no hay datos).
// La estatura se descompone en pies enteros y pulgadas restantes.
type SurveyAverages struct {
	Age                float64 `json:"age"`
	BMI                float64 `json:"bmi"`
	WaistCircumference float64 `json:"waist_circumference_inches"`
	Weight             float64 `json:"weight_lb"`
	HeightFeet         int     `json:"height_feet"`
	HeightInches       float64 `json:"height_inches"`
}

// SurveyDateRange primera y última respuesta ("N/A" si no hay fechas válidas).
type SurveyDateRange struct {
	FirstResponse string `json:"first_response"`
	LastResponse  string `json:"last_response"`
}

// SurveyFileInfo metadatos del respaldo de la tabla de respuestas.
type SurveyFileInfo struct {
	SizeKB   float64 `json:"size_kb"`
	Location string  `json:"location"`
}

// SurveyStatsResponse salida completa de GET /survey-stats con datos.
type SurveyStatsResponse struct {
	SurveyStatsData
	FileInfo SurveyFileInfo `json:"file_info"`
}

// SurveyStatsEmptyResponse salida de GET /survey-stats sin registros.
type SurveyStatsEmptyResponse struct {
	TotalResponses int    `json:"total_responses"`
	Message        string `json:"message"`
}
