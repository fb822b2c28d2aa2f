package dto

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
)

var registerValidationsOnce sync.Once

// RegisterCustomValidations installs the custom binding rules used by the
// request DTOs on gin's validator engine. Safe to call more than once.
func RegisterCustomValidations() {
	registerValidationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
			return domain.UserRole(fl.Field().String()).IsValid()
		})
	})
}
