package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/eddigit/academie-levinet-ok-sub000/core"
	"github.com/eddigit/academie-levinet-ok-sub000/core/person"
)

// maxNamesPerRequest bounds format-many bodies.
const maxNamesPerRequest = 500

type nameApi struct {
	validate *validator.Validate
}

func registerNameAPI(g *echo.Group, validate *validator.Validate) {
	api := nameApi{validate: validate}

	ng := g.Group("/names")
	ng.POST("/format", api.format)
	ng.POST("/format-many", api.formatMany)
}

// Handlers

func (api *nameApi) format(ctx echo.Context) error {
	var data NameRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NameRequest")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, person.Forms(data.Name))
}

func (api *nameApi) formatMany(ctx echo.Context) error {
	var data NamesRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NamesRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	names := make([]person.NameForms, len(data.Names))
	for i, n := range data.Names {
		names[i] = person.Forms(n)
	}
	return ctx.JSON(http.StatusOK, names)
}

// Requests

type (
	NameRequest struct {
		Name string `json:"name" validate:"notblank"`
	}

	NamesRequest struct {
		Names []string `json:"names" validate:"required"`
	}
)

func (nr NamesRequest) Validate(validate *validator.Validate) error {
	if err := validate.Struct(nr); err != nil {
		return err
	}
	if len(nr.Names) > maxNamesPerRequest {
		return core.NewValidationError(nil, core.FieldError{
			Field: "names",
			Error: "at most " + strconv.Itoa(maxNamesPerRequest) + " names can be formatted at once",
		})
	}
	return nil
}
