package pages

import pbpages "github.com/justcodeworks/go-pagebuilder/pages"

type (
	Service                      = pbpages.Service
	EditablePage                 = pbpages.EditablePage
	PageSection                  = pbpages.PageSection
	SectionPatch                 = pbpages.SectionPatch
	SEOSettings                  = pbpages.SEOSettings
	WebsiteTemplate              = pbpages.WebsiteTemplate
	CreatePageRequest            = pbpages.CreatePageRequest
	AddSectionRequest            = pbpages.AddSectionRequest
	UpdateSectionRequest         = pbpages.UpdateSectionRequest
	SetSectionContentRequest     = pbpages.SetSectionContentRequest
	ExportWebsiteTemplateRequest = pbpages.ExportWebsiteTemplateRequest
	PageNotFoundError            = pbpages.PageNotFoundError
	SectionNotFoundError         = pbpages.SectionNotFoundError
)

var (
	ErrSlugRequired     = pbpages.ErrSlugRequired
	ErrSlugInvalid      = pbpages.ErrSlugInvalid
	ErrSlugExists       = pbpages.ErrSlugExists
	ErrNameRequired     = pbpages.ErrNameRequired
	ErrPageRequired     = pbpages.ErrPageRequired
	ErrTemplateRequired = pbpages.ErrTemplateRequired
	ErrLocaleRequired   = pbpages.ErrLocaleRequired
	ErrPageNotFound     = pbpages.ErrPageNotFound
	ErrSectionNotFound  = pbpages.ErrSectionNotFound
)
