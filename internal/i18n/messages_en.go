package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Recommendations
	message.SetString(lang, "recommendation.color", "Color pattern detected: %d consecutive %s. Consider betting on %s.")
	message.SetString(lang, "recommendation.parity", "Parity pattern detected: %d consecutive %s. Consider betting on %s.")
	message.SetString(lang, "recommendation.dozen", "Dozen pattern detected: %d numbers from 2 dozens. Consider betting on the %s dozen (%s).")
	message.SetString(lang, "recommendation.diagonal", "Diagonal pattern detected: %d consecutive numbers from %s. Consider betting on %s: %s")
	message.SetString(lang, "recommendation.none", "No patterns detected yet. Keep adding numbers!")

	// Labels
	message.SetString(lang, "label.red", "red")
	message.SetString(lang, "label.black", "black")
	message.SetString(lang, "label.red.plural", "reds")
	message.SetString(lang, "label.black.plural", "blacks")
	message.SetString(lang, "label.even", "even")
	message.SetString(lang, "label.odd", "odd")
	message.SetString(lang, "label.even.plural", "evens")
	message.SetString(lang, "label.odd.plural", "odds")
	message.SetString(lang, "label.first", "first")
	message.SetString(lang, "label.second", "second")
	message.SetString(lang, "label.third", "third")
	message.SetString(lang, "label.diagonal_1", "diagonal 1")
	message.SetString(lang, "label.diagonal_2", "diagonal 2")
}
