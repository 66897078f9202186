// Package validate centraliza la validación estructural de los DTOs de
// entrada usando go-playground/validator y sus etiquetas `validate`.
package validate

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// Struct valida las etiquetas `validate` de s. Devuelve un mapa
// campo -> regla incumplida cuando hay violaciones, o nil si pasa.
func Struct(s interface{}) (map[string]string, error) {
	err := v.Struct(s)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: s no era un struct válido.
		return nil, err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields, nil
}
