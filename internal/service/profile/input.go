package profile

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/traveleats-backend/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
// All fields are optional (nil = don't change).
type UpdateProfileInput struct {
	Username  *string
	FullName  *string
	AvatarURL *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == nil && i.FullName == nil && i.AvatarURL == nil {
		errs = append(errs, domain.FieldError{Field: "profile", Message: "nothing to update"})
	}

	if i.Username != nil {
		if *i.Username == "" {
			errs = append(errs, domain.FieldError{Field: "username", Message: "cannot be empty"})
		} else if utf8.RuneCountInString(*i.Username) > 50 {
			errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
		}
	}

	if i.FullName != nil {
		if *i.FullName == "" {
			errs = append(errs, domain.FieldError{Field: "fullname", Message: "cannot be empty"})
		} else if utf8.RuneCountInString(*i.FullName) > 255 {
			errs = append(errs, domain.FieldError{Field: "fullname", Message: "too long"})
		}
	}

	if i.AvatarURL != nil && *i.AvatarURL != "" {
		if len(*i.AvatarURL) > 512 {
			errs = append(errs, domain.FieldError{Field: "avatar_url", Message: "too long"})
		} else if u, err := url.Parse(*i.AvatarURL); err != nil || !u.IsAbs() {
			errs = append(errs, domain.FieldError{Field: "avatar_url", Message: "must be an absolute URI"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateProfileInput) normalized() UpdateProfileInput {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.TrimSpace(*s)
		return &v
	}
	return UpdateProfileInput{
		Username:  trim(i.Username),
		FullName:  trim(i.FullName),
		AvatarURL: trim(i.AvatarURL),
	}
}

func (i UpdateProfileInput) fields() []string {
	var out []string
	if i.Username != nil {
		out = append(out, "username")
	}
	if i.FullName != nil {
		out = append(out, "fullname")
	}
	if i.AvatarURL != nil {
		out = append(out, "avatar_url")
	}
	return out
}
