package helper

import (
	"strings"

	"github.com/jos3lo89/ice-pos-server/constants"
	"github.com/jos3lo89/ice-pos-server/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetSetting reads a configuration value inside the caller's transaction,
// falling back to the given default when the key is missing or blank.
func GetSetting(tx *gorm.DB, key, fallback string) string {
	var setting model.Setting
	if err := tx.Where("key = ?", key).First(&setting).Error; err != nil {
		return fallback
	}
	if v := strings.TrimSpace(setting.Value); v != "" {
		return v
	}
	return fallback
}

// GetIgvRate returns the configured tax percentage (default 18).
func GetIgvRate(tx *gorm.DB) decimal.Decimal {
	raw := GetSetting(tx, constants.SETTING_IGV_RATE, constants.DEFAULT_IGV_RATE)
	rate, err := decimal.NewFromString(raw)
	if err != nil || rate.IsNegative() {
		rate, _ = decimal.NewFromString(constants.DEFAULT_IGV_RATE)
	}
	return rate
}
