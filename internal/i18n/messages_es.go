package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Spanish

	// Recomendaciones
	message.SetString(lang, "recommendation.color", "Patrón de Color Detectado: %d %s consecutivos. Considera apostar al %s.")
	message.SetString(lang, "recommendation.parity", "Patrón de Paridad Detectado: %d %s consecutivos. Considera apostar al %s.")
	message.SetString(lang, "recommendation.dozen", "Patrón de Docenas Detectado: %d números de 2 docenas. Considera apostar a la %s docena (%s).")
	message.SetString(lang, "recommendation.diagonal", "Patrón de Diagonal Detectado: %d números consecutivos de %s. Considera apostar a %s: %s")
	message.SetString(lang, "recommendation.none", "No se han detectado patrones aún. ¡Sigue agregando números!")

	// Etiquetas
	message.SetString(lang, "label.red", "rojo")
	message.SetString(lang, "label.black", "negro")
	message.SetString(lang, "label.red.plural", "rojos")
	message.SetString(lang, "label.black.plural", "negros")
	message.SetString(lang, "label.even", "par")
	message.SetString(lang, "label.odd", "impar")
	message.SetString(lang, "label.even.plural", "pares")
	message.SetString(lang, "label.odd.plural", "impares")
	message.SetString(lang, "label.first", "primera")
	message.SetString(lang, "label.second", "segunda")
	message.SetString(lang, "label.third", "tercera")
	message.SetString(lang, "label.diagonal_1", "diagonal_1")
	message.SetString(lang, "label.diagonal_2", "diagonal_2")
}
