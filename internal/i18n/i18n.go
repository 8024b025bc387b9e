// Package i18n registers translated display names for the taxonomy with
// golang.org/x/text/message. The English display names are the message keys,
// so an unregistered language falls back to English.
package i18n

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/taxonomy"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

//go:embed locales/*.yaml
var localesFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog holds the messages of every loaded locale.
type Catalog struct {
	messages map[language.Tag]map[string]string
	tags     []language.Tag
	matcher  language.Matcher
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	errDefault     error
)

// Default loads the embedded locales and registers them with the
// process-wide message catalog. It is safe to call repeatedly.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, errDefault = Load(localesFS, "locales")
		if errDefault != nil {
			return
		}
		defaultCatalog.Register()
	})
	return defaultCatalog, errDefault
}

// Load reads every <dir>/*.yaml catalog from fsys.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	paths, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, errors.DirectoryProblem(dir).WithCause(err)
	}
	if len(paths) == 0 {
		return nil, errors.FileNotOpened(path.Join(dir, "*.yaml"), fs.ErrNotExist)
	}
	sort.Strings(paths)

	c := &Catalog{messages: map[language.Tag]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, errors.FileNotOpened(p, err)
		}

		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, errors.Wrapf(err, "failed to parse catalog %s", p)
		}
		if err := c.add(p, file); err != nil {
			return nil, err
		}
	}

	// English is the source language and always matches first.
	c.tags = append([]language.Tag{language.English}, c.tags...)
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

func (c *Catalog) add(p string, file catalogFile) error {
	vb := errors.NewValidationBuilder()
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		vb.RequiredField("locale")
	} else if locale != strings.TrimSuffix(path.Base(p), path.Ext(p)) {
		vb.Fieldf("locale", "%q does not match file %s", locale, p)
	}
	if len(file.Messages) == 0 {
		vb.RequiredField("messages")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return errors.InvalidArgumentf("catalog %s has invalid locale %q", p, locale)
	}
	if _, exists := c.messages[tag]; exists {
		return errors.AlreadyExistsf("locale %s is defined twice", locale)
	}

	messages := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		messages[strings.TrimSpace(key)] = value
	}
	c.messages[tag] = messages
	c.tags = append(c.tags, tag)
	return nil
}

// Register adds every message to the x/text default catalog.
func (c *Catalog) Register() {
	for tag, messages := range c.messages {
		for key, value := range messages {
			_ = message.SetString(tag, key, value)
		}
	}
}

// Messages returns a copy of the messages for one locale.
func (c *Catalog) Messages(tag language.Tag) map[string]string {
	out := make(map[string]string, len(c.messages[tag]))
	for k, v := range c.messages[tag] {
		out[k] = v
	}
	return out
}

// Match returns the supported tag closest to lang.
func (c *Catalog) Match(lang string) (language.Tag, error) {
	if strings.TrimSpace(lang) == "" {
		return language.English, nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und, errors.InvalidArgumentf("invalid language %q", lang)
	}
	_, index, _ := c.matcher.Match(tag)
	return c.tags[index], nil
}

// Printer returns a printer for the closest supported language.
func Printer(lang string) (*message.Printer, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	tag, err := c.Match(lang)
	if err != nil {
		return nil, err
	}
	return message.NewPrinter(tag), nil
}

type displayNamer interface {
	DisplayName(plural bool) string
}

// Name translates the display name of a taxonomy value.
func Name(p *message.Printer, v displayNamer, plural bool) string {
	return p.Sprintf(v.DisplayName(plural))
}

// SpeciesName translates a species set one flag at a time.
func SpeciesName(p *message.Printer, s taxonomy.Species, plural bool) string {
	if s == taxonomy.SpeciesAll || s.IsSingle() {
		return Name(p, s, plural)
	}
	flags := s.Flags()
	if len(flags) == 0 {
		return Name(p, s, plural)
	}
	names := make([]string, len(flags))
	for i, f := range flags {
		names[i] = Name(p, f, plural)
	}
	return strings.Join(names, "/")
}
