package handler_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxengine/internal/handler"
)

type taggedParty struct {
	GSTIN     string `json:"gstin" validate:"omitempty,gstin"`
	PAN       string `json:"pan" validate:"omitempty,pan"`
	StateCode string `json:"state_code" validate:"omitempty,statecode"`
	Pincode   string `json:"pincode" validate:"omitempty,pincode"`
	HSN       string `json:"hsn" validate:"omitempty,hsn"`
	FY        string `json:"fy" validate:"omitempty,financialyear"`
}

func TestRegisterValidations(t *testing.T) {
	v := validator.New()
	require.NoError(t, handler.RegisterValidations(v))

	valid := taggedParty{
		GSTIN:     "27AAPFU0939F1ZV",
		PAN:       "AAPFU0939F",
		StateCode: "27",
		Pincode:   "411001",
		HSN:       "998314",
		FY:        "2024-25",
	}
	assert.NoError(t, v.Struct(valid))
	assert.NoError(t, v.Struct(taggedParty{}))

	invalid := taggedParty{
		GSTIN:     "27AAPFU0939F1Z",
		PAN:       "AAPF0939F",
		StateCode: "39",
		Pincode:   "011001",
		HSN:       "12",
		FY:        "2024/25",
	}
	err := v.Struct(invalid)
	require.Error(t, err)

	var fields []string
	for _, fe := range err.(validator.ValidationErrors) {
		fields = append(fields, fe.Field())
	}
	assert.ElementsMatch(t, []string{"gstin", "pan", "state_code", "pincode", "hsn", "fy"}, fields)
}
