// Package i18n provides the localized advisory messages shown by the
// calculator front ends. Translations are YAML files embedded from the
// locales directory and loaded with go-i18n.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Catalog translates message IDs into one language.
type Catalog struct {
	localizer *i18n.Localizer
}

// New loads the embedded translations and returns a catalog for lang.
// Messages missing in lang fall back to English.
func New(lang string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("locale %s: %w", f.Name(), err)
		}
	}
	return &Catalog{localizer: i18n.NewLocalizer(bundle, lang, "en")}, nil
}

// T translates a message by its ID. Unknown IDs are returned unchanged.
func (c *Catalog) T(messageID string) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}

// Languages returns the tags of the embedded translations.
func Languages() []language.Tag {
	files, _ := fs.ReadDir(localeFS, "locales")
	tags := make([]language.Tag, 0, len(files))
	for _, f := range files {
		name := f.Name()
		tag, err := language.Parse(name[:len(name)-len(".yaml")])
		if err == nil {
			tags = append(tags, tag)
		}
	}
	return tags
}
