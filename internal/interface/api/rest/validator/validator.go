package validator

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"user-account-api/internal/interface/api/rest/dto/auth"
	"user-account-api/internal/interface/api/rest/dto/user"
)

const (
	msgFieldRequired = "field required"
	msgMustBeString  = "must be a string"
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// ValidateCreateRequest reports every missing required key. Password is
// optional. Value checks happen in the user service.
func ValidateCreateRequest(r user.CreateRequest) map[string]string {
	errs := make(map[string]string)

	if r.FirstName == nil {
		errs["first_name"] = msgFieldRequired
	}
	if r.LastName == nil {
		errs["last_name"] = msgFieldRequired
	}
	if r.Email == nil {
		errs["email"] = msgFieldRequired
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Login()) == "" {
		errs["username"] = msgFieldRequired
	}
	if r.Password == "" {
		errs["password"] = msgFieldRequired
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// BindErrors turns a JSON type mismatch into a field error. Other decode
// failures return nil and are reported as a malformed body.
func BindErrors(err error) map[string]string {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return nil
	}

	msg := "invalid type"
	if typeErr.Type != nil && typeErr.Type.String() == "string" {
		msg = msgMustBeString
	}

	return map[string]string{typeErr.Field: msg}
}
