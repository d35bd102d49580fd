package services

import (
	"errors"
	"regexp"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"golang.org/x/text/unicode/norm"

	domain "user-account-api/internal/domain/user"
)

const (
	minNameLen     = 2
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt input limit, bytes
)

var lettersOnly = regexp.MustCompile(`^[a-zA-Zа-яА-ЯёЁ\-]+$`)

const (
	msgInvalidBody    = "invalid request body"
	msgEmptyUpdate    = "At least one parameter for user update should be provided"
	msgFirstLetters   = "First name should contain only letters"
	msgLastLetters    = "Last name should contain only letters"
	msgFirstTooShort  = "First name must have at least 2 letters"
	msgLastTooShort   = "Last name must have at least 2 letters"
	msgInvalidEmail   = "value is not a valid email address"
	msgPasswordLength = "password length must be 8-72 characters"
)

// nameRule matches the letters pattern and, when minLen > 0, a minimum rune
// count. Unlike ozzo's Match it rejects empty strings. Nil pointers pass.
func nameRule(lettersMsg, shortMsg string, minLen int) validation.Rule {
	return validation.By(func(value interface{}) error {
		v, isNil := validation.Indirect(value)
		if isNil {
			return nil
		}
		s, _ := v.(string)
		if !lettersOnly.MatchString(s) {
			return errors.New(lettersMsg)
		}
		if minLen > 0 && utf8.RuneCountInString(s) < minLen {
			return errors.New(shortMsg)
		}
		return nil
	})
}

func normalizeName(s string) string { return norm.NFC.String(s) }

func normalizeNamePtr(s *string) *string {
	if s == nil {
		return nil
	}
	n := normalizeName(*s)
	return &n
}

func validateCreate(p *domain.CreateParams) error {
	p.FirstName = normalizeName(p.FirstName)
	p.LastName = normalizeName(p.LastName)

	err := validation.ValidateStruct(p,
		validation.Field(&p.FirstName, nameRule(msgFirstLetters, msgFirstTooShort, 0)),
		validation.Field(&p.LastName, nameRule(msgLastLetters, msgLastTooShort, 0)),
		validation.Field(&p.Email,
			validation.Required.Error(msgInvalidEmail),
			is.Email.Error(msgInvalidEmail),
		),
		validation.Field(&p.Password,
			validation.NilOrNotEmpty.Error(msgPasswordLength),
			validation.Length(minPasswordLen, maxPasswordLen).Error(msgPasswordLength),
		),
	)
	return toValidationError(err)
}

func validateUpdate(f *domain.Fields) error {
	if f.IsEmpty() {
		return &ValidationError{Message: msgEmptyUpdate}
	}
	f.FirstName = normalizeNamePtr(f.FirstName)
	f.LastName = normalizeNamePtr(f.LastName)

	err := validation.ValidateStruct(f,
		validation.Field(&f.FirstName, nameRule(msgFirstLetters, msgFirstTooShort, minNameLen)),
		validation.Field(&f.LastName, nameRule(msgLastLetters, msgLastTooShort, minNameLen)),
		validation.Field(&f.Email,
			validation.NilOrNotEmpty.Error(msgInvalidEmail),
			is.Email.Error(msgInvalidEmail),
		),
	)
	return toValidationError(err)
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var vErrs validation.Errors
	if !errors.As(err, &vErrs) {
		return err
	}

	fields := make(map[string]string, len(vErrs))
	for field, fErr := range vErrs {
		fields[field] = fErr.Error()
	}
	return &ValidationError{Message: msgInvalidBody, Fields: fields}
}
