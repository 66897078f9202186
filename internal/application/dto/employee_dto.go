package dto

// EmployeeResponse entrada del padrón tal como la consume el frontend.
// Las claves JSON replican los encabezados de la tabla (PascalCase).
type EmployeeResponse struct {
	EmployeeNumber string `json:"EmployeeNumber"`
	EmployeeName   string `json:"EmployeeName"`
}
