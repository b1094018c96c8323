package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/eddigit/academie-levinet-ok-sub000/core/person"
)

type avatarApi struct {
	validate *validator.Validate
	groupMax int
}

func registerAvatarAPI(g *echo.Group, validate *validator.Validate, groupMax int) {
	api := avatarApi{validate: validate, groupMax: groupMax}

	ag := g.Group("/avatars")
	ag.POST("", api.avatar)
	ag.POST("/group", api.group)
}

// Handlers

func (api *avatarApi) avatar(ctx echo.Context) error {
	var data AvatarRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AvatarRequest")
	}
	ctx.Set(ctxPersonKey, data.Person)
	if err := api.validate.Struct(data); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, person.Avatar(&data.Person, data.Size, data.Online))
}

func (api *avatarApi) group(ctx echo.Context) error {
	var data AvatarGroupRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AvatarGroupRequest")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	max := data.Max
	if max == 0 {
		max = api.groupMax
	}
	return ctx.JSON(http.StatusOK, person.AvatarGroup(data.People, max, data.Size))
}

// Requests

type (
	AvatarRequest struct {
		person.Person
		Size   string `json:"size" validate:"omitempty,avatarsize"`
		Online *bool  `json:"online"`
	}

	AvatarGroupRequest struct {
		People []person.Person `json:"people" validate:"max=100"`
		Max    int             `json:"max" validate:"gte=0"`
		Size   string          `json:"size" validate:"omitempty,avatarsize"`
	}
)
