package parser

import (
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"
)

// Logger receives structured trace events for a parse session: memo
// cache hits/misses and f-string sub-parser recursion. Any type with
// these three methods satisfies it; a zerolog.Logger does not on its own,
// and WithLogger wraps one in zerologLogger to adapt it.
type Logger interface {
	MemoHit(ruleID, mark int)
	MemoMiss(ruleID, mark int)
	FStringRecurse(depth int)
}

// zerologLogger adapts a zerolog.Logger, tagging every event with a
// per-session UUID so interleaved parses (e.g. an outer parse and its
// f-string sub-parses) can be told apart in the log stream.
type zerologLogger struct {
	log       zerolog.Logger
	sessionID uuid.UUID
}

func (l *zerologLogger) MemoHit(ruleID, mark int) {
	l.log.Debug().Str("session", l.sessionID.String()).Int("rule", ruleID).Int("mark", mark).Msg("memo hit")
}

func (l *zerologLogger) MemoMiss(ruleID, mark int) {
	l.log.Debug().Str("session", l.sessionID.String()).Int("rule", ruleID).Int("mark", mark).Msg("memo miss")
}

func (l *zerologLogger) FStringRecurse(depth int) {
	l.log.Debug().Str("session", l.sessionID.String()).Int("depth", depth).Msg("fstring recurse")
}

// Option configures a State at construction time.
type Option func(*State)

// WithLogger attaches a zerolog.Logger to the parser session, tagging
// every event with a fresh gofrs/uuid session identifier. Off by
// default: a State built without this option never touches zerolog or
// gofrs/uuid, so the happy path pays nothing for diagnostics it doesn't
// use.
func WithLogger(log zerolog.Logger) Option {
	return func(s *State) {
		id, err := uuid.NewV4()
		if err != nil {
			// uuid generation failure (exhausted entropy source) is not
			// worth failing a parse over; fall back to the nil UUID.
			id = uuid.UUID{}
		}
		s.logger = &zerologLogger{log: log, sessionID: id}
	}
}

// WithLoggerInstance attaches an already-built Logger directly, bypassing
// the zerolog/uuid wiring WithLogger does. The f-string sub-parser uses
// this to thread the outer parse's logger into each private sub-parser
// State it constructs, so a recursive f-string parse is tagged with the
// same session identifier as the parse that triggered it.
func WithLoggerInstance(log Logger) Option {
	return func(s *State) {
		s.logger = log
	}
}
