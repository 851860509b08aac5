// Package i18n holds the embedded interface strings for both site languages
// and resolves the language of a request.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/content"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// Direction is the text direction of a language.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

type localeFile struct {
	Locale    string            `yaml:"locale"`
	Direction Direction         `yaml:"direction"`
	Messages  map[string]string `yaml:"messages"`
}

// Catalog translates interface keys. A key with no entry translates to itself.
type Catalog struct {
	messages   map[content.Language]map[string]string
	directions map[content.Language]Direction
	printers   map[content.Language]*message.Printer
}

// LoadEmbedded loads the locale files compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	return LoadFromFS(embeddedLocales)
}

// LoadFromFS loads every locales/*.yaml file in fsys.
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)

	builder := catalog.NewBuilder()
	c := &Catalog{
		messages:   make(map[content.Language]map[string]string),
		directions: make(map[content.Language]Direction),
		printers:   make(map[content.Language]*message.Printer),
	}

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", path, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", path, err)
		}
		lang, ok := content.ParseLanguage(file.Locale)
		if !ok {
			return nil, fmt.Errorf("locale %s: unsupported language %q", path, file.Locale)
		}
		if _, dup := c.messages[lang]; dup {
			return nil, fmt.Errorf("locale %s: duplicate language %q", path, lang)
		}

		tag := Tag(lang)
		for key, text := range file.Messages {
			// Messages carry no format arguments; a literal % must survive Sprintf.
			if err := builder.SetString(tag, key, strings.ReplaceAll(text, "%", "%%")); err != nil {
				return nil, fmt.Errorf("locale %s: set %q: %w", path, key, err)
			}
		}
		c.messages[lang] = file.Messages
		c.directions[lang] = file.Direction
	}

	for _, lang := range content.Languages {
		if _, ok := c.messages[lang]; !ok {
			return nil, fmt.Errorf("missing locale for %q", lang)
		}
		c.printers[lang] = message.NewPrinter(Tag(lang), message.Catalog(builder))
	}
	return c, nil
}

// T returns the translation of key in lang, or key itself when there is none.
func (c *Catalog) T(lang content.Language, key string) string {
	if _, ok := c.messages[lang][key]; !ok {
		return key
	}
	return c.printers[lang].Sprintf(key)
}

// Messages returns a copy of every message defined for lang.
func (c *Catalog) Messages(lang content.Language) map[string]string {
	out := make(map[string]string, len(c.messages[lang]))
	for k, v := range c.messages[lang] {
		out[k] = v
	}
	return out
}

// Direction returns the text direction of lang.
func (c *Catalog) Direction(lang content.Language) Direction {
	if d, ok := c.directions[lang]; ok && d != "" {
		return d
	}
	if lang == content.LangAR {
		return RTL
	}
	return LTR
}

// GalleryFilterLabel returns the label of a gallery filter. "All" and the
// categories map to gallery_filter_<lowercase>; a category with no entry
// shows its raw name.
func (c *Catalog) GalleryFilterLabel(lang content.Language, filter string) string {
	key := "gallery_filter_" + strings.ToLower(filter)
	if _, ok := c.messages[lang][key]; !ok {
		return filter
	}
	return c.T(lang, key)
}
