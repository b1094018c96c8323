package core

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedReq struct {
	Name    string `json:"name" validate:"notblank"`
	Country string `json:"country" validate:"omitempty,countrycode"`
	Size    string `json:"size" validate:"omitempty,avatarsize"`
	Number  string `json:"number" validate:"required"`
}

func TestInitValidators(t *testing.T) {
	validate := validator.New()
	translator := NewTranslator()
	InitValidators(validate, translator)

	tests := []struct {
		name string
		req  validatedReq
		want map[string]string
	}{
		{name: "valid", req: validatedReq{Name: "jean", Country: "fr", Size: "xl", Number: "06"}},
		{name: "valid empty optionals", req: validatedReq{Name: "jean", Number: "06"}},
		{
			name: "invalid",
			req:  validatedReq{Name: "  ", Country: "FRA", Size: "xxl"},
			want: map[string]string{
				"name":    "name cannot be blank",
				"country": "country must be a two-letter country code",
				"size":    "size must be one of xs, sm, md, lg, xl",
				"number":  "this field is required",
			},
		},
		{
			name: "country not letters",
			req:  validatedReq{Name: "jean", Country: "33", Number: "06"},
			want: map[string]string{"country": "country must be a two-letter country code"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			var vErrs validator.ValidationErrors
			require.ErrorAs(t, err, &vErrs)
			got := make(map[string]string, len(vErrs))
			for _, e := range vErrs {
				got[e.Field()] = e.Translate(translator)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsASCIILetters(t *testing.T) {
	assert.True(t, IsASCIILetters("FR", 2))
	assert.True(t, IsASCIILetters("be", 2))
	assert.False(t, IsASCIILetters("F", 2))
	assert.False(t, IsASCIILetters("F1", 2))
	assert.False(t, IsASCIILetters("É", 2))
}
