package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"tripplanner/internal/models/request_models"
	"tripplanner/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// RequiredFieldValidator checks the `binding:"required"` tags of the tree, the
// same tags gin enforces on request bodies.
type RequiredFieldValidator struct {
	validate *validator.Validate
}

func NewRequiredFieldValidator() *RequiredFieldValidator {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequiredFieldValidator{validate: v}
}

// Validate returns ErrValidationGap listing every empty required field by its
// form field identifier.
func (r *RequiredFieldValidator) Validate(tree request_models.ItineraryInput) error {
	err := r.validate.Struct(tree)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace is "ItineraryInput.userPreferences.diningOptions.type".
		ns := fe.Namespace()
		if i := strings.Index(ns, "."); i >= 0 {
			ns = ns[i+1:]
		}
		missing = append(missing, ns)
	}
	return fmt.Errorf("%w: %s", utils.ErrValidationGap, strings.Join(missing, ", "))
}
