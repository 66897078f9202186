package dto

// SubmitSurveyRequest entrada de POST /submit-survey. Los nombres de campo
// replican el formulario del frontend (camelCase).
type SubmitSurveyRequest struct {
	EmployeeNumber     string  `json:"employeeNumber" validate:"required"`
	EmployeeName       string  `json:"employeeName" validate:"required"`
	Gender             string  `json:"gender" validate:"required"`
	Age                int     `json:"age" validate:"required,gte=1,lte=120"`
	WaistCircumference float64 `json:"waistCircumference" validate:"required,gt=0"`
	HeightFeet         int     `json:"heightFeet" validate:"gte=0,lte=8"`
	HeightInches       int     `json:"heightInches" validate:"gte=0,lte=11"`
	Weight             float64 `json:"weight" validate:"required,gt=0"`
	BMI                float64 `json:"bmi" validate:"required,gt=0"`
	BMICategory        string  `json:"bmiCategory" validate:"required"`
}

// SurveyRecordResponse una respuesta registrada, con las claves JSON iguales a
// los encabezados de la tabla (el frontend pinta la grilla directamente con
// estas claves).
type SurveyRecordResponse struct {
	SubmissionDate     string  `json:"SubmissionDate"`
	EmployeeNumber     string  `json:"EmployeeNumber"`
	EmployeeName       string  `json:"EmployeeName"`
	Gender             string  `json:"Gender"`
	Age                int     `json:"Age"`
	WaistCircumference float64 `json:"Waist Circumference (inches)"`
	HeightFeet         int     `json:"Height - Feet"`
	HeightInches       int     `json:"Height - Inches"`
	Weight             float64 `json:"Weight (lb)"`
	BMI                float64 `json:"BMI"`
	BMICategory        string  `json:"BMI Category"`
}

// SubmitSurveyResponse salida de POST /submit-survey.
type SubmitSurveyResponse struct {
	Message string               `json:"message"`
	Data    SurveyRecordResponse `json:"data"`
}

// DebugCSVResponse salida de GET /debug-csv cuando el respaldo existe.
type DebugCSVResponse struct {
	FileExists    bool                   `json:"file_exists"`
	Columns       []string               `json:"columns"`
	TotalRows     int                    `json:"total_rows"`
	SampleData    []SurveyRecordResponse `json:"sample_data"`
	FileSizeBytes int64                  `json:"file_size_bytes"`
}
