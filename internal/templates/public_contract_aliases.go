package templates

import pbtemplates "github.com/justcodeworks/go-pagebuilder/templates"

type (
	Service               = pbtemplates.Service
	RegisterTemplateInput = pbtemplates.RegisterTemplateInput
	SectionTemplate       = pbtemplates.SectionTemplate
	Content               = pbtemplates.Content
	LocaleContent         = pbtemplates.LocaleContent
	LocaleStrings         = pbtemplates.LocaleStrings
	Settings              = pbtemplates.Settings
	VerticalOverride      = pbtemplates.VerticalOverride
	TemplateNotFoundError = pbtemplates.TemplateNotFoundError
)

var (
	ErrTemplateCodeRequired = pbtemplates.ErrTemplateCodeRequired
	ErrSectionTypeRequired  = pbtemplates.ErrSectionTypeRequired
	ErrBusinessTypeRequired = pbtemplates.ErrBusinessTypeRequired
	ErrDisplayNameRequired  = pbtemplates.ErrDisplayNameRequired
	ErrContentRequired      = pbtemplates.ErrContentRequired
	ErrTemplateExists       = pbtemplates.ErrTemplateExists
	ErrTemplateNotFound     = pbtemplates.ErrTemplateNotFound
)
