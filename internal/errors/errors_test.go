package errors

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestFromValidationErrors_Capitalization(t *testing.T) {
	v := validator.New()

	type registerForm struct {
		Name     string `validate:"required"`
		Password string `validate:"required"`
	}
	type addressForm struct {
		Flat   string `validate:"required"`
		Street string `validate:"required"`
	}

	t.Run("register and login messages stay lowercase", func(t *testing.T) {
		err := v.Struct(registerForm{})
		resp := FromValidationErrors(err)

		msgs := make([]string, 0, len(resp.Errors))
		for _, fe := range resp.Errors {
			msgs = append(msgs, fe.Msg)
		}
		assert.Contains(t, msgs, "Name is required")
		assert.Contains(t, msgs, "Password is required")
	})

	t.Run("address messages carry the capital R", func(t *testing.T) {
		err := v.Struct(addressForm{})
		resp := FromValidationErrorsTitled(err)

		msgs := make([]string, 0, len(resp.Errors))
		for _, fe := range resp.Errors {
			msgs = append(msgs, fe.Msg)
		}
		assert.Contains(t, msgs, "Flat is Required")
		assert.Contains(t, msgs, "Street is Required")
	})

	t.Run("non-validator error falls back to a generic message", func(t *testing.T) {
		resp := FromValidationErrorsTitled(assert.AnError)
		assert.Equal(t, []FieldError{{Msg: "invalid request"}}, resp.Errors)
	})
}
