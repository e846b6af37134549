package usecase

import (
	"testing"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stretchr/testify/assert"
)

type form struct {
	Name  string `validate:"required,notblank"`
	Email string `validate:"omitempty,email"`
	Mode  string `validate:"omitempty,oneof=year full"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(&form{Name: "Cats"}))
	assert.NoError(t, ValidateStruct(&form{Name: "Cats", Email: "a@b.co", Mode: "year"}))

	err := ValidateStruct(&form{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "Name: notblank")

	err = ValidateStruct(&form{Name: "Cats", Email: "nope", Mode: "month"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "Email: email")
	assert.Contains(t, err.Error(), "Mode: oneof")
}

func TestValidateStruct_NonStructInput(t *testing.T) {
	assert.ErrorIs(t, ValidateStruct(42), domain.ErrValidation)
}
