package domain

import (
	"encoding/json"
	"strings"
)

// ReferenceType classifies a task reference.
type ReferenceType string

// Reference type constants.
const (
	// ReferenceTypeLink is a plain URL.
	ReferenceTypeLink ReferenceType = "link"

	// ReferenceTypeObsidian is an obsidian:// vault link.
	ReferenceTypeObsidian ReferenceType = "obsidian"

	// ReferenceTypeDoc is a markdown or text document.
	ReferenceTypeDoc ReferenceType = "doc"
)

// IsValid checks if the reference type is a valid value.
func (t ReferenceType) IsValid() bool {
	switch t {
	case ReferenceTypeLink, ReferenceTypeObsidian, ReferenceTypeDoc:
		return true
	default:
		return false
	}
}

// DetectReferenceType infers a reference type from the URL shape:
// obsidian:// scheme ⇒ obsidian, .md/.txt suffix ⇒ doc, otherwise link.
func DetectReferenceType(url string) ReferenceType {
	if strings.HasPrefix(url, "obsidian://") {
		return ReferenceTypeObsidian
	}
	if strings.HasSuffix(url, ".md") || strings.HasSuffix(url, ".txt") {
		return ReferenceTypeDoc
	}
	return ReferenceTypeLink
}

// Reference is a link or document attached to a task. References are
// owned exclusively by their parent task and disappear with it.
type Reference struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	URL       string        `json:"url"`
	Type      ReferenceType `json:"type"`
	CreatedAt string        `json:"createdAt"`
}

// ReferenceCreate is the payload for attaching a reference to a task.
// Type is auto-detected from the URL when omitted.
type ReferenceCreate struct {
	Title string        `json:"title" validate:"required"`
	URL   string        `json:"url" validate:"required"`
	Type  ReferenceType `json:"type" validate:"omitempty,oneof=link obsidian doc"`
}

// rawReference is the decode shape for persisted references. It carries
// the legacy path field so pre-migration documents normalize on read.
type rawReference struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Path      string `json:"path"`
	Type      string `json:"type"`
	CreatedAt string `json:"createdAt"`
}

// normalizeReference maps a raw persisted entry into the current
// Reference shape. Legacy entries carrying a path instead of a url get
// fallback id/title/url derived from the path; any type outside the
// enum coerces to link. The function is pure and idempotent: feeding a
// normalized reference back through it changes nothing.
func normalizeReference(raw rawReference) Reference {
	ref := Reference{
		ID:        raw.ID,
		Title:     raw.Title,
		URL:       raw.URL,
		Type:      ReferenceType(raw.Type),
		CreatedAt: raw.CreatedAt,
	}
	if raw.Path != "" {
		if ref.ID == "" {
			ref.ID = raw.Path
		}
		if ref.URL == "" {
			ref.URL = raw.Path
		}
		if ref.Title == "" {
			parts := strings.Split(raw.Path, "/")
			ref.Title = parts[len(parts)-1]
		}
	}
	if !ref.Type.IsValid() {
		ref.Type = ReferenceTypeLink
	}
	return ref
}

// NormalizeReference re-applies the read-boundary normalization to an
// in-memory reference. Exposed for property tests asserting idempotence.
func NormalizeReference(ref Reference) Reference {
	return normalizeReference(rawReference{
		ID:        ref.ID,
		Title:     ref.Title,
		URL:       ref.URL,
		Type:      string(ref.Type),
		CreatedAt: ref.CreatedAt,
	})
}

// ReferenceList is a reference slice that survives malformed persisted
// entries: non-object members are dropped and legacy-shaped members are
// normalized while decoding. The migration is never written back by
// read paths.
type ReferenceList []Reference

// UnmarshalJSON implements json.Unmarshaler with per-entry recovery.
func (l *ReferenceList) UnmarshalJSON(data []byte) error {
	var rawList []json.RawMessage
	if err := json.Unmarshal(data, &rawList); err != nil {
		// A non-list value is treated as an empty reference set rather
		// than corrupting the whole task document.
		*l = ReferenceList{}
		return nil
	}
	out := make(ReferenceList, 0, len(rawList))
	for _, item := range rawList {
		var raw rawReference
		if err := json.Unmarshal(item, &raw); err != nil {
			continue
		}
		out = append(out, normalizeReference(raw))
	}
	*l = out
	return nil
}
