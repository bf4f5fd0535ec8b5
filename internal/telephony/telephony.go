package telephony

import (
	"errors"
	"strings"

	"github.com/briksiq/core/internal/logger"
)

// ErrNoNumber is returned when an action is requested for an empty phone number.
var ErrNoNumber = errors.New("no phone number")

// Dialer hands a phone action to the platform. Implementations are fire and
// forget: a nil error means the action was handed off, not that it completed.
type Dialer interface {
	Call(number string) error
	SMS(number string) error
}

// LogDialer is the development Dialer. It records each action instead of
// reaching a real telephony layer.
type LogDialer struct {
	log *logger.Logger
}

// NewLogDialer creates a LogDialer writing through the given logger.
func NewLogDialer(log *logger.Logger) *LogDialer {
	return &LogDialer{log: log.WithComponent("telephony")}
}

func (d *LogDialer) Call(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrNoNumber
	}
	d.log.Info("Placing call", map[string]interface{}{
		"number": number,
	})
	return nil
}

func (d *LogDialer) SMS(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrNoNumber
	}
	d.log.Info("Composing SMS", map[string]interface{}{
		"number": number,
	})
	return nil
}
