package content

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/traveleats-backend/internal/domain"
)

const (
	maxKeywordLength = 100
	maxIDLength      = 32
)

// SearchInput holds parameters for a keyword search.
type SearchInput struct {
	Kind    domain.ContentKind
	Keyword string
}

// Validate validates the search input. A blank keyword is valid.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be meal or drink"})
	}
	if utf8.RuneCountInString(i.Keyword) > maxKeywordLength {
		errs = append(errs, domain.FieldError{Field: "q", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DetailInput holds parameters for a detail lookup.
type DetailInput struct {
	Kind domain.ContentKind
	ID   string
}

// Validate validates the detail input.
func (i DetailInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be meal or drink"})
	}

	id := strings.TrimSpace(i.ID)
	switch {
	case id == "":
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	case len(id) > maxIDLength:
		errs = append(errs, domain.FieldError{Field: "id", Message: "too long"})
	case strings.ContainsAny(id, "/?#&"):
		errs = append(errs, domain.FieldError{Field: "id", Message: "invalid characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
