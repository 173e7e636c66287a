package domain

import "fmt"

// ContentKind distinguishes the two content catalogues.
type ContentKind string

const (
	ContentMeal  ContentKind = "meal"
	ContentDrink ContentKind = "drink"
)

func (k ContentKind) String() string { return string(k) }

// IsValid returns true if the kind is a known value.
func (k ContentKind) IsValid() bool {
	return k == ContentMeal || k == ContentDrink
}

// ParseContentKind converts a string into a ContentKind.
func ParseContentKind(s string) (ContentKind, error) {
	k := ContentKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("unknown content kind %q: %w", s, ErrValidation)
	}
	return k, nil
}

// ContentSummary is one row of a search result.
type ContentSummary struct {
	ID        string      `json:"id"`
	Kind      ContentKind `json:"kind"`
	Name      string      `json:"name"`
	Thumbnail string      `json:"thumbnail,omitempty"`
	Category  string      `json:"category,omitempty"`
}

// ContentItem is the detail record of a meal or a drink. Area is only set
// for meals and Glass only for drinks.
type ContentItem struct {
	ID           string      `json:"id"`
	Kind         ContentKind `json:"kind"`
	Name         string      `json:"name"`
	Thumbnail    string      `json:"thumbnail,omitempty"`
	Category     string      `json:"category,omitempty"`
	Area         string      `json:"area,omitempty"`
	Glass        string      `json:"glass,omitempty"`
	Instructions string      `json:"instructions,omitempty"`
	Tags         []string    `json:"tags,omitempty"`
}

// Label is the text recorded in the activity log when the item is viewed.
func (c ContentItem) Label() string {
	return c.Name
}

// Summary returns the search-row form of the item.
func (c ContentItem) Summary() ContentSummary {
	return ContentSummary{
		ID:        c.ID,
		Kind:      c.Kind,
		Name:      c.Name,
		Thumbnail: c.Thumbnail,
		Category:  c.Category,
	}
}
