// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides localized UI strings for Keymirror. It uses the
// go-i18n library to load the embedded YAML translation files. Only labels are
// translated; the key layout itself is fixed.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

// bundle stores all the loaded translation messages from the locale files.
var bundle *i18n.Bundle

// localizer is used to translate messages into a specific language.
var localizer *i18n.Localizer

var currentLang string

// Init initializes the i18n bundle and sets up the localizer for a specific language.
// It parses all embedded YAML files from the 'locales' directory.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile(path.Join("locales", f.Name()))
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	currentLang = lang
	localizer = i18n.NewLocalizer(bundle, lang)
}

// T translates a message by its ID. Extra arguments are applied with
// fmt.Sprintf. If the i18n system has not been initialized, it defaults to
// English; unknown IDs are returned as-is.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang changes the active language of the localizer.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the language passed to the last Init.
func GetLang() string {
	return currentLang
}

// GetAvailableLocales maps each embedded locale tag to its name in that language.
func GetAvailableLocales() map[string]string {
	locales := map[string]string{}
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		code := strings.TrimSuffix(f.Name(), path.Ext(f.Name()))
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		locales[code] = display.Self.Name(tag)
	}
	return locales
}

// IsAvailable reports whether lang, or its base language, has an embedded
// locale. "de-AT" is available when de.yaml exists.
func IsAvailable(lang string) bool {
	locales := GetAvailableLocales()
	if _, ok := locales[lang]; ok {
		return true
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	_, ok := locales[base.String()]
	return ok
}
