package services

import (
	"fmt"
	"reflect"
	"strings"

	"baa-logistica/internal/core/domain"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Field names in violations use
// the json tag so the frontend can map errors back onto form inputs.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// structViolations runs tag validation over s and converts every failure
// into a field violation. messages overrides the default text per
// "<jsonField>.<tag>" key, so each service keeps the exact wording the
// frontend displays. All violations are collected, never short-circuited.
func structViolations(s interface{}, messages map[string]string) []domain.FieldViolation {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []domain.FieldViolation{{Field: "", Message: "Entrada inválida"}}
	}

	violations := make([]domain.FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = defaultMessage(fe)
		}
		violations = append(violations, domain.FieldViolation{Field: fe.Field(), Message: msg})
	}
	return violations
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Campo %s é obrigatório", fe.Field())
	case "gt":
		return fmt.Sprintf("Campo %s deve ser maior que %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("Campo %s inválido", fe.Field())
	default:
		return fmt.Sprintf("Campo %s inválido", fe.Field())
	}
}

// violationList builds a ValidationError when any violation exists
func violationList(violations []domain.FieldViolation) error {
	if len(violations) == 0 {
		return nil
	}
	return &domain.ValidationError{Violations: violations}
}
