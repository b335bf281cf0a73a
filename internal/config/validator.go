package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/motifui/motif/internal/style"
	"github.com/motifui/motif/internal/tween"
	motiferrors "github.com/motifui/motif/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	elementIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("element_id", func(fl validator.FieldLevel) bool {
			return elementIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, ok := style.ParseHex(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("ease", func(fl validator.FieldLevel) bool {
			_, ok := tween.EaseByName(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ValidateSheet performs schema and cross-field validation on a sheet.
func ValidateSheet(sheet *Sheet) error {
	if sheet == nil {
		return motiferrors.NewValidationError("sheet", "sheet is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(sheet); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(sheet.Elements))
	for i, el := range sheet.Elements {
		if _, dup := seen[el.ID]; dup {
			field := fmt.Sprintf("elements[%d].id", i)
			return motiferrors.NewValidationError(field, fmt.Sprintf("duplicate element id %q", el.ID), nil)
		}
		seen[el.ID] = struct{}{}
	}

	return nil
}

// convertValidationError normalizes validator errors into the module's
// validation error type, reporting the first failing field.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return motiferrors.NewValidationError(field, msg, err)
	}

	return motiferrors.NewValidationError("sheet", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
