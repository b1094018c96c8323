package echoapi

import (
	"net/http"
	"strings"
	"testing"

	"github.com/eddigit/academie-levinet-ok-sub000/core/person"
)

func Test_nameApi_format(t *testing.T) {
	app, _ := setup(t)

	path := "/v1/names/format"
	blank := marchallObj(t, map[string]string{"name": "name cannot be blank"})

	runHTTPTests(t, app, []httpTest{
		{
			name:     "no name",
			method:   http.MethodPost,
			path:     path,
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: blank,
		},
		{
			name:     "blank name",
			method:   http.MethodPost,
			path:     path,
			body:     []byte(`{"name": "   "}`),
			wantCode: http.StatusBadRequest,
			wantData: blank,
		},
		{
			name:     "full name",
			method:   http.MethodPost,
			path:     path,
			body:     []byte(`{"name": "jean pierre dupont"}`),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, person.NameForms{
				Input:     "jean pierre dupont",
				FirstName: "Jean Pierre Dupont",
				LastName:  "JEAN PIERRE DUPONT",
				FullName:  "Jean Pierre DUPONT",
				ListName:  "DUPONT Jean Pierre",
				Initials:  "JD",
			}),
		},
		{
			name:     "single word",
			method:   http.MethodPost,
			path:     path,
			body:     []byte(`{"name": "madonna"}`),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, person.NameForms{
				Input:     "madonna",
				FirstName: "Madonna",
				LastName:  "MADONNA",
				FullName:  "Madonna",
				ListName:  "Madonna",
				Initials:  "M",
			}),
		},
		{
			name:     "hyphenated",
			method:   http.MethodPost,
			path:     path,
			body:     []byte(`{"name": "JEAN-PIERRE martin"}`),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, person.NameForms{
				Input:     "JEAN-PIERRE martin",
				FirstName: "Jean-Pierre-Martin",
				LastName:  "JEAN-PIERRE MARTIN",
				FullName:  "Jean-Pierre MARTIN",
				ListName:  "MARTIN Jean-Pierre",
				Initials:  "JM",
			}),
		},
	})
}

func Test_nameApi_formatMany(t *testing.T) {
	app, _ := setup(t)

	path := "/v1/names/format-many"
	tooMany := `{"names": ["a"` + strings.Repeat(`, "a"`, maxNamesPerRequest) + `]}`

	runHTTPTests(t, app, []httpTest{
		{
			name:     "no names",
			method:   http.MethodPost,
			path:     path,
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"names": "this field is required"}),
		},
		{
			name:     "too many names",
			method:   http.MethodPost,
			path:     path,
			body:     []byte(tooMany),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"names": "at most 500 names can be formatted at once"}),
		},
		{
			name:     "empty list",
			method:   http.MethodPost,
			path:     path,
			body:     []byte(`{"names": []}`),
			wantCode: http.StatusOK,
			wantData: []byte(`[]`),
		},
		{
			name:     "names",
			method:   http.MethodPost,
			path:     path,
			body:     []byte(`{"names": ["madonna", "", "jean dupont"]}`),
			wantCode: http.StatusOK,
			wantData: marchallList(t,
				person.Forms("madonna"),
				person.NameForms{},
				person.NameForms{
					Input:     "jean dupont",
					FirstName: "Jean Dupont",
					LastName:  "JEAN DUPONT",
					FullName:  "Jean DUPONT",
					ListName:  "DUPONT Jean",
					Initials:  "JD",
				},
			),
		},
	})
}
