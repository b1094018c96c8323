package logsvc

import (
	"log"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/eddigit/academie-levinet-ok-sub000/core"
	"github.com/eddigit/academie-levinet-ok-sub000/core/person"
)

// RollbarLogger prints to a std logger and reports to rollbar when enabled.
type RollbarLogger struct {
	std *log.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Address)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	return &RollbarLogger{std: std}
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// expected fmt: msg | error, map[string]interface{}, person.Person
func (l RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	var pSet bool
	newArgs := make([]interface{}, 0, len(args)+1)
	newArgs = append(newArgs, msg)
	for _, arg := range args {
		p, ok := asPerson(arg)
		if !ok {
			newArgs = append(newArgs, arg)
			continue
		}
		// only set one Person
		if !pSet && p.DisplayName() != "" {
			rollbar.SetPerson(p.ID, p.DisplayName(), p.Email)
			pSet = true
		}
	}
	if !pSet {
		rollbar.ClearPerson()
	}
	return newArgs
}

func asPerson(arg interface{}) (*person.Person, bool) {
	switch p := arg.(type) {
	case person.Person:
		return &p, true
	case *person.Person:
		return p, p != nil
	}
	return nil, false
}

func (l RollbarLogger) print(msg string, args []interface{}) {
	l.std.Println(msg)
	for _, arg := range args {
		if p, ok := asPerson(arg); ok {
			l.std.Printf("person: %q\n", p.DisplayName())
			continue
		}
		l.std.Printf("%+v\n", arg)
	}
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) {
	rollbar.Debug(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	rollbar.Info(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Warn(msg string, args ...interface{}) {
	rollbar.Warning(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Error(msg string, args ...interface{}) {
	rollbar.Error(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	rollbar.Critical(l.prepare(msg, args)...)
	l.print(msg, args)
	l.std.Fatal(msg)
}
