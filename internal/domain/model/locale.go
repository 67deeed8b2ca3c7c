// Package model contains the core domain types for the locale service.
package model

// Direction is the text direction of a locale.
type Direction string

const (
	// DirectionLTR is left-to-right text.
	DirectionLTR Direction = "ltr"
	// DirectionRTL is right-to-left text.
	DirectionRTL Direction = "rtl"
)

// LocaleConfig describes a single locale the site can render in.
type LocaleConfig struct {
	// Code is the two-letter locale identifier (e.g. "en", "pt").
	Code string `json:"code" example:"en"`
	// DisplayName is the locale name in English.
	DisplayName string `json:"display_name" example:"English"`
	// NativeName is the locale name in its own language.
	NativeName string `json:"native_name" example:"English"`
	// Direction is "ltr" or "rtl".
	Direction Direction `json:"direction" example:"ltr"`
	// DateFormat is the preferred date layout for the locale.
	DateFormat string `json:"date_format" example:"01/02/2006"`
	// CurrencyCode is the ISO 4217 currency for the locale.
	CurrencyCode string `json:"currency_code" example:"USD"`
	// Enabled controls whether the locale is selectable.
	Enabled bool `json:"enabled"`
}
