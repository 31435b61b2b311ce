// Package i18n выбирает язык запроса и печатает сообщения из каталога.
// Поддерживаются испанский (язык исходного анализатора) и английский
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam Query параметр для явного выбора языка
const LangParam = "lang"

var (
	supported = []language.Tag{language.English, language.Spanish}
	matcher   = language.NewMatcher(supported)
)

func Supported() []language.Tag {
	return supported
}

func Default() language.Tag {
	return language.English
}

func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag Язык запроса: сначала ?lang=, затем Accept-Language, иначе язык по умолчанию
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}

	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if tag, err := language.Parse(v); err == nil {
			return Match(tag)
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return Match(tags...)
		}
	}

	return Default()
}

// Match Ближайший поддерживаемый язык
func Match(tags ...language.Tag) language.Tag {
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default()
	}
	return supported[idx]
}
