package templates

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/justcodeworks/go-pagebuilder/internal/logging"
	"github.com/justcodeworks/go-pagebuilder/pkg/interfaces"
)

// Loader discovers markdown catalog files and registers their entries. Each
// file carries one catalog entry in YAML frontmatter; the markdown body, when
// present, becomes the English description unless the frontmatter already
// provides one.
type Loader struct {
	fs      fs.FS
	service Service
	logger  interfaces.Logger
}

// NewLoader constructs a catalog loader over the provided filesystem.
func NewLoader(filesystem fs.FS, service Service, logger interfaces.Logger) *Loader {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Loader{fs: filesystem, service: service, logger: logger}
}

// Load walks the filesystem for *.md files and registers every entry found.
// Entries already present in the catalog are skipped. It returns the number
// of entries registered.
func (l *Loader) Load(ctx context.Context) (int, error) {
	paths, err := l.discover()
	if err != nil {
		return 0, err
	}

	registered := 0
	for _, path := range paths {
		select {
		case <-ctx.Done():
			return registered, ctx.Err()
		default:
		}

		input, err := l.parseFile(path)
		if err != nil {
			return registered, err
		}

		if _, err := l.service.Register(ctx, input); err != nil {
			if errors.Is(err, ErrTemplateExists) {
				l.logger.Debug("catalog entry already registered", "path", path)
				continue
			}
			return registered, fmt.Errorf("templates: load %s: %w", path, err)
		}
		registered++
	}

	l.logger.Info("catalog loaded from markdown", "files", len(paths), "registered", registered)
	return registered, nil
}

func (l *Loader) discover() ([]string, error) {
	var paths []string
	err := fs.WalkDir(l.fs, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".md") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("templates: discover catalog files: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

func (l *Loader) parseFile(path string) (RegisterTemplateInput, error) {
	data, err := fs.ReadFile(l.fs, path)
	if err != nil {
		return RegisterTemplateInput{}, fmt.Errorf("templates: read %s: %w", path, err)
	}

	var envelope catalogEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(data), &envelope)
	if err != nil {
		return RegisterTemplateInput{}, fmt.Errorf("templates: parse %s: %w", path, err)
	}

	input := envelope.toInput()
	if description := strings.TrimSpace(string(body)); description != "" {
		if input.Description == nil {
			input.Description = LocaleStrings{}
		}
		if input.Description["en"] == "" {
			input.Description["en"] = description
		}
	}
	return input, nil
}

type catalogEnvelope struct {
	TemplateCode        string                            `yaml:"template_code"`
	BusinessType        string                            `yaml:"business_type"`
	SectionType         string                            `yaml:"section_type"`
	DisplayName         map[string]string                 `yaml:"display_name"`
	Description         map[string]string                 `yaml:"description"`
	DefaultContent      map[string]map[string]any         `yaml:"default_content"`
	DefaultSettings     settingsEnvelope                  `yaml:"default_settings"`
	BusinessTypeMapping map[string]verticalOverrideEnvelope `yaml:"business_type_mapping"`
}

type settingsEnvelope struct {
	BackgroundColor string `yaml:"background_color"`
	TextColor       string `yaml:"text_color"`
	Padding         string `yaml:"padding"`
	Margin          string `yaml:"margin"`
	Layout          string `yaml:"layout"`
	Columns         int    `yaml:"columns"`
	ShowImage       bool   `yaml:"show_image"`
	ImagePosition   string `yaml:"image_position"`
	Animation       string `yaml:"animation"`
	Effect          string `yaml:"effect"`
	CustomCSS       string `yaml:"custom_css"`
}

type verticalOverrideEnvelope struct {
	DisplayName        map[string]string         `yaml:"display_name"`
	ContentAdjustments map[string]map[string]any `yaml:"content_adjustments"`
}

func (e catalogEnvelope) toInput() RegisterTemplateInput {
	input := RegisterTemplateInput{
		TemplateCode:   e.TemplateCode,
		BusinessType:   e.BusinessType,
		SectionType:    e.SectionType,
		DisplayName:    LocaleStrings(e.DisplayName),
		Description:    LocaleStrings(e.Description),
		DefaultContent: toLocaleContent(e.DefaultContent),
		DefaultSettings: Settings{
			BackgroundColor: e.DefaultSettings.BackgroundColor,
			TextColor:       e.DefaultSettings.TextColor,
			Padding:         e.DefaultSettings.Padding,
			Margin:          e.DefaultSettings.Margin,
			Layout:          e.DefaultSettings.Layout,
			Columns:         e.DefaultSettings.Columns,
			ShowImage:       e.DefaultSettings.ShowImage,
			ImagePosition:   e.DefaultSettings.ImagePosition,
			Animation:       e.DefaultSettings.Animation,
			Effect:          e.DefaultSettings.Effect,
			CustomCSS:       e.DefaultSettings.CustomCSS,
		},
	}

	if len(e.BusinessTypeMapping) > 0 {
		mapping := make(map[string]VerticalOverride, len(e.BusinessTypeMapping))
		for vertical, override := range e.BusinessTypeMapping {
			mapping[vertical] = VerticalOverride{
				DisplayName:        LocaleStrings(override.DisplayName),
				ContentAdjustments: toLocaleContent(override.ContentAdjustments),
			}
		}
		input.BusinessTypeMapping = mapping
	}
	return input
}

func toLocaleContent(raw map[string]map[string]any) LocaleContent {
	if raw == nil {
		return nil
	}
	out := make(LocaleContent, len(raw))
	for locale, content := range raw {
		out[locale] = Content(content)
	}
	return out
}
