package echoapi

import (
	"net/http"
	"testing"

	"github.com/eddigit/academie-levinet-ok-sub000/core/grade"
)

func Test_gradeApi(t *testing.T) {
	app, _ := setup(t)

	runHTTPTests(t, app, []httpTest{
		{name: "grades", method: http.MethodGet, path: "/v1/grades", wantCode: http.StatusOK, wantData: marchallObj(t, grade.DanGrades())},
		{name: "grade", method: http.MethodGet, path: "/v1/grades/1dan", wantCode: http.StatusOK, wantData: []byte(`{"value": "1dan", "label": "1er Dan"}`)},
		{name: "unknown grade", method: http.MethodGet, path: "/v1/grades/ceinture", wantCode: http.StatusOK, wantData: []byte(`{"value": "ceinture", "label": "ceinture"}`)},
		{name: "belts", method: http.MethodGet, path: "/v1/belts", wantCode: http.StatusOK, wantData: marchallObj(t, grade.Belts())},
		{name: "disciplines", method: http.MethodGet, path: "/v1/disciplines", wantCode: http.StatusOK, wantData: marchallObj(t, grade.Disciplines())},
	})
}
