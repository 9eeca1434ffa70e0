// Package telemetry reports successful installs on a best-effort basis.
// Nothing in this package returns an error to its caller; failures are
// logged and dropped.
package telemetry

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/simplespec-labs/simplespec/internal/logging"
)

// EventInstallSuccess is sent after an install batch completes.
const EventInstallSuccess = "install_success"

// placeholderKey is the unset value shipped in sample configuration.
const placeholderKey = "<insert key>"

// Event is one telemetry event.
type Event struct {
	ID         string         `json:"id"`
	DistinctID string         `json:"distinct_id"`
	Name       string         `json:"event"`
	Timestamp  time.Time      `json:"timestamp"`
	Properties map[string]any `json:"properties"`
}

// Sink delivers events.
type Sink interface {
	Capture(e Event) error
}

// LogSink writes events to the debug log instead of a remote service.
type LogSink struct {
	Log zerolog.Logger
}

func (s LogSink) Capture(e Event) error {
	s.Log.Debug().
		Str("id", e.ID).
		Str("distinct_id", e.DistinctID).
		Str("event", e.Name).
		Interface("properties", e.Properties).
		Msg("telemetry event")
	return nil
}

// InstallOptions describes a successful install.
type InstallOptions struct {
	Version     string
	DistinctID  string
	Disabled    bool
	Key         string
	InstallMode string
	Runtimes    []string
}

// Tracker hands events to a Sink.
type Tracker struct {
	sink Sink
	log  zerolog.Logger
	now  func() time.Time
}

// NewTracker returns a Tracker delivering to sink. A nil sink logs events.
func NewTracker(sink Sink) *Tracker {
	log := logging.GetLogger("telemetry")
	if sink == nil {
		sink = LogSink{Log: log}
	}
	return &Tracker{sink: sink, log: log, now: time.Now}
}

// TrackInstallSuccess sends an install_success event and reports whether the
// sink accepted it. It never panics and never fails the caller.
func (t *Tracker) TrackInstallSuccess(opts InstallOptions) (sent bool) {
	if opts.Disabled {
		return false
	}
	if opts.Key == "" || opts.Key == placeholderKey {
		t.log.Warn().Msg("Telemetry is disabled because no telemetry key is configured")
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			t.log.Debug().Str("panic", fmt.Sprint(r)).Msg("telemetry sink panicked")
			sent = false
		}
	}()

	distinctID := opts.DistinctID
	if distinctID == "" {
		distinctID = ulid.Make().String()
	}

	event := Event{
		ID:         ulid.Make().String(),
		DistinctID: distinctID,
		Name:       EventInstallSuccess,
		Timestamp:  t.now().UTC(),
		Properties: map[string]any{
			"version":      opts.Version,
			"install_mode": opts.InstallMode,
			"runtimes":     opts.Runtimes,
		},
	}

	if err := t.sink.Capture(event); err != nil {
		t.log.Debug().Err(err).Msg("telemetry event dropped")
		return false
	}
	return true
}
