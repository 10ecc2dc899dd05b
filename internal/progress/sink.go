package progress

import "log/slog"

// Sink receives ordered progress messages from a running export.
// Implementations must not block the caller.
type Sink interface {
	Emit(message string)
}

// Discard drops every message.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) Emit(string) {}

// NewChannelSink returns a Sink that forwards messages to ch without
// blocking: a message that does not fit (or a nil channel) falls back to
// logger. A nil logger degrades to dropping the overflow.
func NewChannelSink(ch chan<- string, logger *slog.Logger) Sink {
	return &channelSink{ch: ch, logger: logger}
}

type channelSink struct {
	ch     chan<- string
	logger *slog.Logger
}

func (s *channelSink) Emit(message string) {
	if s.ch != nil {
		select {
		case s.ch <- message:
			return
		default:
		}
	}
	if s.logger != nil {
		s.logger.Info(message)
	}
}

// NewLogSink returns a Sink that writes every message to logger.
func NewLogSink(logger *slog.Logger) Sink {
	if logger == nil {
		return Discard
	}
	return &logSink{logger: logger}
}

type logSink struct {
	logger *slog.Logger
}

func (s *logSink) Emit(message string) {
	s.logger.Info(message)
}
