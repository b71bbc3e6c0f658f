// internal/event/recorder.go
package event

import (
	"fmt"

	"go.uber.org/zap"
)

// Recorder keeps every event it sees, in order. Two runs of the same match
// produce equal recordings.
type Recorder struct {
	Events []Event
}

func (r *Recorder) OnEvent(e Event) {
	r.Events = append(r.Events, e)
}

// OfType returns the recorded events of one type.
func (r *Recorder) OfType(t EventType) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops the recording.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

// LogListener mirrors events to a zap logger at debug level.
type LogListener struct {
	logger *zap.Logger
}

func NewLogListener(logger *zap.Logger) *LogListener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogListener{logger: logger}
}

func (l *LogListener) OnEvent(e Event) {
	if ce := l.logger.Check(zap.DebugLevel, string(e.Type)); ce != nil {
		ce.Write(
			zap.Int("turn", e.Turn),
			zap.Int("frame", e.Frame),
			zap.String("data", fmt.Sprintf("%+v", e.Data)),
		)
	}
}
