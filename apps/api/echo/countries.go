package echoapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eddigit/academie-levinet-ok-sub000/core"
	"github.com/eddigit/academie-levinet-ok-sub000/core/country"
)

func registerCountryAPI(g *echo.Group) {
	cg := g.Group("/countries")
	cg.GET("", queryCountries)
	cg.GET("/lookup", lookupCountry)
	cg.GET("/:code/flag", countryFlag)
}

// Handlers

func queryCountries(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, country.All())
}

func countryFlag(ctx echo.Context) error {
	c, ok := country.ByCode(ctx.Param("code"))
	if !ok {
		return errCountryNotFound
	}
	return ctx.JSON(http.StatusOK, c)
}

// lookupCountry finds the country a free-text name (as typed in member forms) refers to.
func lookupCountry(ctx echo.Context) error {
	name := strings.TrimSpace(ctx.QueryParam("name"))
	if name == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "name", Error: "this field is required"})
	}

	c, ok := country.ByName(name)
	if !ok {
		return errCountryNotFound
	}
	return ctx.JSON(http.StatusOK, c)
}
