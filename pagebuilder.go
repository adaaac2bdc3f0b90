package pagebuilder

import (
	"github.com/justcodeworks/go-pagebuilder/internal/di"
	internallibrary "github.com/justcodeworks/go-pagebuilder/internal/library"
	internalpages "github.com/justcodeworks/go-pagebuilder/internal/pages"
	internaltemplates "github.com/justcodeworks/go-pagebuilder/internal/templates"
)

// TemplateService exports the section template catalog contract.
type TemplateService = internaltemplates.Service

// PageService exports the page composition contract.
type PageService = internalpages.Service

// LibraryService exports the component library contract.
type LibraryService = internallibrary.Service

// Module represents the top level page builder runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a page builder module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Templates returns the configured section template service.
func (m *Module) Templates() TemplateService {
	return m.container.TemplateService()
}

// Pages returns the configured page service.
func (m *Module) Pages() PageService {
	return m.container.PageService()
}

// Library returns the configured component library service.
func (m *Module) Library() LibraryService {
	return m.container.LibraryService()
}
