package contentdb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/traveleats-backend/internal/domain"
)

// apiResponse is the envelope of both APIs. The list is null when nothing
// matched; TheCocktailDB sometimes sends a string such as "no data found"
// instead, which is treated the same way.
type apiResponse struct {
	Meals  json.RawMessage `json:"meals"`
	Drinks json.RawMessage `json:"drinks"`
}

func (r apiResponse) records(kind domain.ContentKind) ([]apiRecord, error) {
	raw := r.Meals
	if kind == domain.ContentDrink {
		raw = r.Drinks
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, nil
	}

	var out []apiRecord
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("contentdb: decode %s list: %w", kind, err)
	}
	return out, nil
}

// apiRecord holds the fields used from either API. Only the prefix matching
// the provider's kind is populated.
type apiRecord struct {
	IDMeal    string `json:"idMeal"`
	StrMeal   string `json:"strMeal"`
	MealThumb string `json:"strMealThumb"`
	StrArea   string `json:"strArea"`

	IDDrink    string `json:"idDrink"`
	StrDrink   string `json:"strDrink"`
	DrinkThumb string `json:"strDrinkThumb"`
	StrGlass   string `json:"strGlass"`

	StrCategory     string `json:"strCategory"`
	StrInstructions string `json:"strInstructions"`
	StrTags         string `json:"strTags"`
}

func (r apiRecord) toItem(kind domain.ContentKind) domain.ContentItem {
	item := domain.ContentItem{
		Kind:         kind,
		Category:     strings.TrimSpace(r.StrCategory),
		Instructions: strings.TrimSpace(r.StrInstructions),
		Tags:         splitTags(r.StrTags),
	}

	switch kind {
	case domain.ContentMeal:
		item.ID = r.IDMeal
		item.Name = strings.TrimSpace(r.StrMeal)
		item.Thumbnail = r.MealThumb
		item.Area = strings.TrimSpace(r.StrArea)
	case domain.ContentDrink:
		item.ID = r.IDDrink
		item.Name = strings.TrimSpace(r.StrDrink)
		item.Thumbnail = r.DrinkThumb
		item.Glass = strings.TrimSpace(r.StrGlass)
	}
	return item
}

// splitTags turns "Pasta, Curry," into ["Pasta", "Curry"].
func splitTags(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
