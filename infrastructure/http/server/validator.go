package server

import (
	"encoding/json"
	"fmt"
	"game-lab/errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type AddSeatRequest struct {
	Name string `json:"name" validate:"required,max=32"`
}

type StartRequest struct {
	AutoCollect *bool `json:"autoCollect"`
}

type ActionRequest struct {
	Action string          `json:"action" validate:"required,max=64"`
	Args   json.RawMessage `json:"args"`
}

// Seat is a pointer so that seat 0 passes the required check.
// Negative seats are refused by the service, after the debug check.
type SwitchSeatRequest struct {
	Seat *int `json:"seat" validate:"required"`
}

func ValidateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}
	if r, ok := req.(AddSeatRequest); ok && !isDisplayNameValid(r.Name) {
		return fmt.Errorf("%w: display name %q", errors.ErrInvalidArgument, r.Name)
	}
	return nil
}

func isDisplayNameValid(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, char := range s {
		if unicode.IsControl(char) {
			return false
		}
	}
	return true
}
