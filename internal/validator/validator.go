// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"wealthguard/internal/models"
	"wealthguard/internal/spending"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("asset_type", validateAssetType)
		_ = v.RegisterValidation("spending_type", validateSpendingType)
		_ = v.RegisterValidation("spending_category", validateSpendingCategory)
		_ = v.RegisterValidation("range_kind", validateRangeKind)
	}
}

func validateAssetType(fl validator.FieldLevel) bool {
	switch models.AssetType(fl.Field().String()) {
	case models.AssetTypeCrypto, models.AssetTypeStock, models.AssetTypeCash, models.AssetTypeDebt:
		return true
	}
	return false
}

func validateSpendingType(fl validator.FieldLevel) bool {
	switch models.SpendingType(fl.Field().String()) {
	case models.SpendingTypeExpense, models.SpendingTypeIncome:
		return true
	}
	return false
}

func validateSpendingCategory(fl validator.FieldLevel) bool {
	return models.ValidCategory(fl.Field().String())
}

func validateRangeKind(fl validator.FieldLevel) bool {
	return spending.ValidRange(spending.RangeKind(fl.Field().String()))
}
