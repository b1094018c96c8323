package echoapi

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eddigit/academie-levinet-ok-sub000/core/person"
)

func Test_avatarApi_avatar(t *testing.T) {
	app, _ := setup(t)

	path := "/v1/avatars"
	palette := person.Palette()

	runHTTPTests(t, app, []httpTest{
		{
			name:     "invalid size",
			method:   http.MethodPost,
			path:     path,
			body:     []byte(`{"full_name": "Jean Dupont", "size": "xxl"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"size": "size must be one of xs, sm, md, lg, xl"}),
		},
		{
			name:     "nobody",
			method:   http.MethodPost,
			path:     path,
			body:     []byte(`{}`),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, person.Identity{
				Alt:      "Avatar",
				Initials: "?",
				Color:    palette[0],
				Size:     person.SizeMD,
				Classes:  person.SizeClasses{Container: "w-10 h-10", Text: "text-sm", Indicator: "w-2.5 h-2.5 border-2"},
			}),
		},
		{
			name:     "single word, online",
			method:   http.MethodPost,
			path:     path,
			body:     []byte(`{"full_name": "Madonna", "image_url": "/m.png", "size": "lg", "online": true}`),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, person.Identity{
				PhotoURL:            "/m.png",
				Alt:                 "Madonna",
				Initials:            "MA",
				Color:               palette[0],
				Size:                person.SizeLG,
				Classes:             person.SizeClasses{Container: "w-12 h-12", Text: "text-base", Indicator: "w-3 h-3 border-2"},
				ShowOnlineIndicator: true,
				Online:              true,
			}),
		},
		{
			name:     "first & last names, offline",
			method:   http.MethodPost,
			path:     path,
			body:     []byte(`{"first_name": "alice", "last_name": "martin", "size": "xs", "online": false}`),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, person.Identity{
				Alt:                 "Avatar",
				Initials:            "AM",
				Color:               palette[person.PaletteIndex("alice")],
				Size:                person.SizeXS,
				Classes:             person.SizeClasses{Container: "w-6 h-6", Text: "text-[10px]", Indicator: "w-1.5 h-1.5 border"},
				ShowOnlineIndicator: true,
			}),
		},
	})
}

func Test_avatarApi_group(t *testing.T) {
	app, _ := setup(t)

	path := "/v1/avatars/group"
	people := []person.Person{
		{FullName: "Jean Dupont"},
		{FullName: "Marie Claire"},
		{FirstName: "Paul", LastName: "Martin"},
		{Name: "Madonna"},
		{FullName: "Alice Bob"},
		{},
	}
	body := func(max int, size string) []byte {
		return marchallObj(t, AvatarGroupRequest{People: people, Max: max, Size: size})
	}

	runHTTPTests(t, app, []httpTest{
		{
			name:     "negative max",
			method:   http.MethodPost,
			path:     path,
			body:     body(-1, ""),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"max": "max must be 0 or greater"}),
		},
		{
			name:     "default max",
			method:   http.MethodPost,
			path:     path,
			body:     body(0, ""),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, person.AvatarGroup(people, 4, person.SizeSM)),
		},
		{
			name:     "custom max & size",
			method:   http.MethodPost,
			path:     path,
			body:     body(2, person.SizeXL),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, person.AvatarGroup(people, 2, person.SizeXL)),
		},
		{
			name:     "nobody",
			method:   http.MethodPost,
			path:     path,
			body:     []byte(`{}`),
			wantCode: http.StatusOK,
			wantData: []byte(`{"avatars": [], "remaining": 0}`),
		},
	})
}

func Test_avatarApi_avatar_reportsPerson(t *testing.T) {
	app, logger := setup(t)
	app.app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if err := next(ctx); err != nil {
				return err
			}
			return errors.New("lol")
		}
	})

	p := person.Person{ID: "42", FullName: "Jean Dupont", Email: "jean@example.com"}
	req, rec := newRequest(http.MethodPost, "/v1/avatars", marchallObj(t, AvatarRequest{Person: p}))
	app.ServeHTTP(rec, req)

	args := logger.loggedArgs("error")
	require.Len(t, args, 1)
	assert.Contains(t, args[0], p)
}
