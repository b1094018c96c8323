package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/eddigit/academie-levinet-ok-sub000/core"
)

func testConfig() *core.Config {
	return &core.Config{
		AppName:        "Académie Jacques Levinet",
		Env:            "TEST",
		Build:          "test",
		TestMode:       true,
		DefaultCountry: "FR",
		AvatarGroupMax: 4,
		Server:         core.ServerConfig{DisableReqLogs: true},
	}
}

func setup(t *testing.T, conf ...*core.Config) (*Server, *testLogger) {
	t.Helper()

	c := testConfig()
	if len(conf) > 0 {
		c = conf[0]
	}
	logger := &testLogger{}
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)

	return NewServer(c, logger, validate, translator), logger
}

// testLogger records logged messages and their args per level.
type testLogger struct {
	mu   sync.Mutex
	msgs map[string][]string
	args map[string][][]interface{}
}

var _ core.Logger = (*testLogger)(nil)

func (l *testLogger) log(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.msgs == nil {
		l.msgs = make(map[string][]string)
		l.args = make(map[string][][]interface{})
	}
	l.msgs[level] = append(l.msgs[level], msg)
	l.args[level] = append(l.args[level], args)
}

func (l *testLogger) logged(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.msgs[level]
}

func (l *testLogger) loggedArgs(level string) [][]interface{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.args[level]
}

func (l *testLogger) Debug(msg string, args ...interface{}) { l.log("debug", msg, args) }
func (l *testLogger) Info(msg string, args ...interface{})  { l.log("info", msg, args) }
func (l *testLogger) Warn(msg string, args ...interface{})  { l.log("warn", msg, args) }
func (l *testLogger) Error(msg string, args ...interface{}) { l.log("error", msg, args) }
func (l *testLogger) Fatal(msg string, args ...interface{}) { l.log("fatal", msg, args) }

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app http.Handler, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
