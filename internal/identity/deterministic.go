package identity

import (
	"strconv"
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// SectionTemplateUUID keys a catalog entry by the full catalog key.
func SectionTemplateUUID(templateCode, businessType, sectionType string) uuid.UUID {
	return UUID("go-pagebuilder:section_template:" +
		strings.ToLower(strings.TrimSpace(templateCode)) + ":" +
		strings.ToLower(strings.TrimSpace(businessType)) + ":" +
		strings.ToLower(strings.TrimSpace(sectionType)))
}

// PageUUID keys a page by slug.
func PageUUID(slug string) uuid.UUID {
	return UUID("go-pagebuilder:page:" + strings.ToLower(strings.TrimSpace(slug)))
}

// SectionUUID keys a page section by its owning page and template provenance.
func SectionUUID(pageID uuid.UUID, templateID uuid.UUID, position int) uuid.UUID {
	return UUID("go-pagebuilder:page_section:" + pageID.String() + ":" + templateID.String() + ":" + strconv.Itoa(position))
}

// LibraryItemUUID keys a library item by its external name and target.
func LibraryItemUUID(name, target string) uuid.UUID {
	return UUID("go-pagebuilder:library_item:" +
		strings.ToLower(strings.TrimSpace(target)) + ":" +
		strings.ToLower(strings.TrimSpace(name)))
}
