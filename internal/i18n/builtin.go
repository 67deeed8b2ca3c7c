package i18n

import "github.com/soundhaus/locale-service/internal/domain/model"

// builtinTables holds minimal compiled-in translation trees used when a
// locale's bundle cannot be fetched or parsed. They cover the error and
// common strings the service itself needs to stay presentable.
var builtinTables = map[string]*model.Node{
	"en": model.MustTree(`{
		"common": {
			"loading": "Loading…",
			"save": "Save",
			"cancel": "Cancel"
		},
		"error": {
			"internal": "Something went wrong. Please try again.",
			"invalid_request": "The request could not be understood.",
			"unauthorized": "Authentication is required.",
			"forbidden": "You do not have access to this resource.",
			"not_found": "The requested resource was not found.",
			"rate_limit": "Too many requests. Please slow down.",
			"timeout": "The request timed out.",
			"unsupported_locale": "That language is not available.",
			"switch_in_progress": "A language change is already in progress."
		}
	}`),
	"es": model.MustTree(`{
		"common": {
			"loading": "Cargando…",
			"save": "Guardar",
			"cancel": "Cancelar"
		},
		"error": {
			"internal": "Algo salió mal. Inténtalo de nuevo.",
			"invalid_request": "No se pudo entender la solicitud.",
			"unauthorized": "Se requiere autenticación.",
			"forbidden": "No tienes acceso a este recurso.",
			"not_found": "No se encontró el recurso solicitado.",
			"rate_limit": "Demasiadas solicitudes. Más despacio, por favor.",
			"timeout": "La solicitud expiró.",
			"unsupported_locale": "Ese idioma no está disponible.",
			"switch_in_progress": "Ya hay un cambio de idioma en curso."
		}
	}`),
}

// BuiltinTable returns the compiled-in tree for a locale, or nil when none
// exists.
func BuiltinTable(code string) *model.Node {
	return builtinTables[NormalizeCode(code)]
}
