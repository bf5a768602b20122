package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
)

// budgetcategory validates that a bound field holds a known expenditure category.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("budgetcategory", func(fl validator.FieldLevel) bool {
			return domain.ValidCategory(domain.Category(fl.Field().String()))
		})
	}
}
