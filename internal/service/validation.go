package service

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/campus-concierge-api/internal/models"
)

// NewValidator returns a validator with the campus enum and date rules registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("campus_category", func(fl validator.FieldLevel) bool {
		return models.EventCategory(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("campus_department", func(fl validator.FieldLevel) bool {
		return models.Department(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("campus_departments", func(fl validator.FieldLevel) bool {
		list, ok := fl.Field().Interface().(models.DepartmentList)
		if !ok || len(list) == 0 {
			return false
		}
		for _, code := range list {
			if !models.Department(code).Valid() {
				return false
			}
		}
		return true
	})
	_ = v.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(models.DateLayout, fl.Field().String())
		return err == nil
	})
	return v
}

// validationMessage renders validator errors as a short human readable sentence.
func validationMessage(err error, fallback string) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return fallback
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, describeFieldError(fe))
	}
	return strings.Join(parts, "; ")
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "campus_category":
		return field + " must be one of " + strings.Join(models.CategoryValues(), ", ")
	case "campus_department":
		return field + " must be one of " + strings.Join(models.DepartmentValues(), ", ")
	case "campus_departments":
		return field + " must list one or more of " + strings.Join(models.DepartmentValues(), ", ")
	case "iso_date":
		return field + " must be a date in YYYY-MM-DD format"
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "email":
		return field + " must be a valid email address"
	default:
		return field + " is invalid"
	}
}
