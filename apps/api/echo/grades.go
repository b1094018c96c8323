package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eddigit/academie-levinet-ok-sub000/core/grade"
)

func registerGradeAPI(g *echo.Group) {
	g.GET("/grades", queryGrades)
	g.GET("/grades/:value", retrieveGrade)
	g.GET("/belts", queryBelts)
	g.GET("/disciplines", queryDisciplines)
}

// Handlers

func queryGrades(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, grade.DanGrades())
}

// retrieveGrade never fails: unknown values are labelled as is.
func retrieveGrade(ctx echo.Context) error {
	value := ctx.Param("value")
	return ctx.JSON(http.StatusOK, grade.Dan{Value: value, Label: grade.DanLabel(value)})
}

func queryBelts(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, grade.Belts())
}

func queryDisciplines(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, grade.Disciplines())
}
