// Package panel holds the per-screen state for About Us, Sponsors and
// Nominees and the single update function that drives each one.
//
// Actions (Load, OpenAdd, Edit, Submit, Delete, ...) return Bubble Tea
// commands that perform the network call. The command's completion message
// is fed back through Update, which checks its request token, applies it to
// the cache, clears busy flags and reports the outcome through a Notifier.
// Errors never leave this package; they become notifications.
package panel

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/five82/podium/internal/api"
)

// Notifier receives the outcome of every action.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Options configures a panel.
type Options struct {
	// Context bounds every request the panel issues.
	Context  context.Context
	Notifier Notifier
	PageSize int
}

func (o Options) context() context.Context {
	if o.Context == nil {
		return context.Background()
	}
	return o.Context
}

func (o Options) notifier() Notifier {
	if o.Notifier == nil {
		return nopNotifier{}
	}
	return o.Notifier
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

// describe renders err for the operator. Configuration and validation
// problems are shown as-is; everything else goes through format.
func describe(err error, format string) string {
	if standalone(err) {
		return api.UserMessage(err)
	}
	return fmt.Sprintf(format, api.UserMessage(err))
}

func standalone(err error) bool {
	var cfgErr *api.ConfigError
	var valErr *api.ValidationError
	return errors.As(err, &cfgErr) || errors.As(err, &valErr)
}

func logFailure(op string, err error) {
	if standalone(err) {
		return
	}
	if id := api.RequestID(err); id != "" {
		log.Printf("%s failed (request %s): %v", op, id, err)
		return
	}
	log.Printf("%s failed: %v", op, err)
}
