package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/termwordle/internal/telemetry"
)

// WordSource supplies secret words and validates guesses.
type WordSource interface {
	Dictionary
	RandomSecret(rng *rand.Rand) string
}

// Session runs rounds one after another until the player declines a replay
// or quits.
type Session struct {
	words    WordSource
	input    Input
	renderer Renderer
	cfg      Config
	rng      *rand.Rand
	log      zerolog.Logger
	tracer   trace.Tracer

	id      string
	roundID string
	round   *Round
	prompt  Prompt
	stats   Stats
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithTracer sets the tracer used for round spans.
func WithTracer(t trace.Tracer) Option {
	return func(s *Session) { s.tracer = t }
}

// NewSession creates a session. Nothing is drawn until Run is called.
func NewSession(words WordSource, input Input, renderer Renderer, cfg Config, opts ...Option) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		words:    words,
		input:    input,
		renderer: renderer,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		log:      zerolog.Nop(),
		tracer:   telemetry.Tracer("session"),
		id:       uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("session", s.id).Logger()
	return s
}

// Round returns the round in progress.
func (s *Session) Round() *Round {
	return s.round
}

// Stats returns the results recorded so far.
func (s *Session) Stats() Stats {
	return s.stats
}

// Run plays rounds until the player quits or declines to play again.
// It returns the session stats; the error is non-nil only when the input
// source fails.
func (s *Session) Run(ctx context.Context) (Stats, error) {
	ctx, span := s.tracer.Start(ctx, "session.run")
	defer span.End()

	s.log.Info().Int64("seed", s.cfg.Seed).Str("keyboard_policy", s.cfg.KeyboardPolicy.String()).Msg("session started")

	for {
		s.newRound(ctx)

		quit, err := s.playRound(ctx)
		if err != nil {
			span.RecordError(err)
			return s.stats, err
		}
		if quit {
			break
		}

		s.endRound(ctx)

		again, err := s.promptReplay()
		if err != nil {
			span.RecordError(err)
			return s.stats, err
		}
		if !again {
			break
		}
	}

	span.SetAttributes(
		attribute.Int("rounds.played", s.stats.Played),
		attribute.Int("rounds.won", s.stats.Won),
	)
	s.log.Info().Int("played", s.stats.Played).Int("won", s.stats.Won).Msg("session ended")
	return s.stats, nil
}

// newRound starts a round with a fresh secret word and keyboard.
func (s *Session) newRound(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "round.start")
	defer span.End()

	s.roundID = uuid.NewString()
	s.round = NewRound(s.words.RandomSecret(s.rng), s.words, NewKeyboard(s.cfg.KeyboardPolicy))
	s.prompt = Prompt{Kind: PromptTyping}

	span.SetAttributes(attribute.String("round.id", s.roundID))
	s.log.Debug().Str("round", s.roundID).Msg("round started")
}

// playRound handles input until the round is over. It reports quit=true if
// the player interrupted the session.
func (s *Session) playRound(ctx context.Context) (quit bool, err error) {
	for !s.round.State().Terminal() {
		s.renderer.Draw(s.round, s.prompt)

		switch ev := s.input.PollEvent().(type) {
		case nil:
			return false, ErrInputClosed
		case KeyEvent:
			if ev.Key == KeyInterrupt {
				s.log.Debug().Str("round", s.roundID).Msg("interrupted")
				return true, nil
			}
			s.handleKey(ctx, ev)
		case ResizeEvent:
			s.renderer.Resize()
		case PointerEvent:
		}
	}
	return false, nil
}

// handleKey applies one key press to the round.
func (s *Session) handleKey(ctx context.Context, ev KeyEvent) {
	switch ev.Key {
	case KeyRune:
		s.prompt = Prompt{Kind: PromptTyping}
		s.round.TypeLetter(foldLetter(ev.Rune))
	case KeyBackspace:
		s.prompt = Prompt{Kind: PromptTyping}
		s.round.Backspace()
	case KeyEnter:
		s.submit(ctx)
	}
}

// submit submits the current guess and shows the rejection flash if needed.
func (s *Session) submit(ctx context.Context) {
	word := s.round.Current()
	res := s.round.Submit()

	switch res.Status {
	case StatusIgnored:
		return
	case StatusRejected:
		s.log.Debug().Str("round", s.roundID).Str("guess", word).Msg("guess rejected")
		s.prompt = Prompt{Kind: PromptInvalid}
		s.renderer.Draw(s.round, s.prompt)
		s.renderer.FlashInvalid(s.round)
		return
	}

	_, span := s.tracer.Start(ctx, "round.guess")
	span.SetAttributes(
		attribute.String("round.id", s.roundID),
		attribute.Int("guess.attempt", s.round.Attempts()),
		attribute.String("guess.marks", res.Marks.String()),
		attribute.String("guess.status", res.Status.String()),
	)
	span.End()

	s.prompt = Prompt{Kind: PromptTyping}
	s.log.Debug().
		Str("round", s.roundID).
		Int("attempt", s.round.Attempts()).
		Str("marks", res.Marks.String()).
		Stringer("status", res.Status).
		Msg("guess submitted")
}

// endRound records the finished round.
func (s *Session) endRound(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "round.end")
	defer span.End()

	s.stats.Record(s.round)

	span.SetAttributes(
		attribute.String("round.id", s.roundID),
		attribute.String("outcome", s.round.State().String()),
		attribute.Int("attempts", s.round.Attempts()),
	)
	s.log.Info().
		Str("round", s.roundID).
		Stringer("outcome", s.round.State()).
		Int("attempts", s.round.Attempts()).
		Msg("round finished")
}

// promptReplay shows the end-of-round summary and waits for y or n.
func (s *Session) promptReplay() (bool, error) {
	kind := PromptLost
	if s.round.State() == StateWon {
		kind = PromptWon
	}
	s.prompt = Prompt{Kind: kind, Secret: s.round.Secret(), Stats: s.stats}

	for {
		s.renderer.Draw(s.round, s.prompt)

		switch ev := s.input.PollEvent().(type) {
		case nil:
			return false, ErrInputClosed
		case KeyEvent:
			if ev.Key == KeyInterrupt {
				return false, nil
			}
			if ev.Key != KeyRune {
				continue
			}
			switch foldLetter(ev.Rune) {
			case 'y':
				return true, nil
			case 'n':
				return false, nil
			}
		case ResizeEvent:
			s.renderer.Resize()
		}
	}
}

// foldLetter lowercases ASCII capitals and leaves everything else alone.
func foldLetter(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
