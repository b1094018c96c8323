package echoapi

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/eddigit/academie-levinet-ok-sub000/core/phone"
)

type phoneApi struct {
	validate       *validator.Validate
	defaultCountry string
}

func registerPhoneAPI(g *echo.Group, validate *validator.Validate, defaultCountry string) {
	if defaultCountry == "" {
		defaultCountry = phone.DefaultCountry
	}
	api := phoneApi{validate: validate, defaultCountry: defaultCountry}

	pg := g.Group("/phones")
	pg.POST("/format", api.format)
	pg.GET("/prefixes", api.prefixes)
}

// Handlers

func (api *phoneApi) format(ctx echo.Context) error {
	var data PhoneRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PhoneRequest")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	country := strings.ToUpper(strings.TrimSpace(data.Country))
	if country == "" {
		country = api.defaultCountry
	}
	return ctx.JSON(http.StatusOK, PhoneResponse{
		Formatted:   phone.Format(data.Number, country),
		Prefix:      phone.Prefix(country),
		Country:     country,
		Placeholder: phone.Placeholder(country),
	})
}

func (api *phoneApi) prefixes(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, phone.Prefixes())
}

// Requests / Responses

type (
	PhoneRequest struct {
		Number  string `json:"number" validate:"required"`
		Country string `json:"country" validate:"omitempty,countrycode"`
	}

	PhoneResponse struct {
		Formatted   string `json:"formatted"`
		Prefix      string `json:"prefix"`
		Country     string `json:"country"`
		Placeholder string `json:"placeholder"`
	}
)
