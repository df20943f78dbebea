// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"baamview/internal/models"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether s is a color of the form #RGB or #RRGGBB.
// This is the rule category badge colors are held to; anything else
// falls back to the gray placeholder.
func IsHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("direction", validateDirection)
	}
}

func validateHexColor(fl validator.FieldLevel) bool {
	return IsHexColor(fl.Field().String())
}

func validateDirection(fl validator.FieldLevel) bool {
	switch models.Direction(fl.Field().String()) {
	case models.DirectionCredit, models.DirectionDebit, models.DirectionOther:
		return true
	}
	return false
}
