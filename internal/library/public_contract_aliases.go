package library

import pblibrary "github.com/justcodeworks/go-pagebuilder/library"

type (
	Service               = pblibrary.Service
	Item                  = pblibrary.Item
	Card                  = pblibrary.Card
	Fragment              = pblibrary.Fragment
	AddItemInput          = pblibrary.AddItemInput
	ListFilter            = pblibrary.ListFilter
	RenderHomepageRequest = pblibrary.RenderHomepageRequest
	ItemNotFoundError     = pblibrary.ItemNotFoundError
)

var (
	ErrItemNameRequired = pblibrary.ErrItemNameRequired
	ErrTargetRequired   = pblibrary.ErrTargetRequired
	ErrItemExists       = pblibrary.ErrItemExists
	ErrItemNotFound     = pblibrary.ErrItemNotFound
)
