package console

import (
	"Roshambo/internal/feed"
	"Roshambo/internal/game"
	"Roshambo/internal/metrics"
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Publisher receives game events for spectators.
type Publisher interface {
	Publish(command string, payload any)
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, any) {}

const (
	menuBestOf = iota + 1
	menuPractice
	menuHistory
	menuQuit
)

// Session is the console controller: it owns the prompt loop, the player
// and the history for the lifetime of the process.
type Session struct {
	in      *bufio.Reader
	out     io.Writer
	source  game.MoveSource
	history *game.History
	feed    Publisher

	// mu guards player and current, which spectators read.
	mu      sync.RWMutex
	player  game.Player
	current *game.Match
}

func NewSession(in io.Reader, out io.Writer, source game.MoveSource, history *game.History, pub Publisher) *Session {
	if pub == nil {
		pub = nopPublisher{}
	}
	return &Session{
		in:      bufio.NewReader(in),
		out:     out,
		source:  source,
		history: history,
		feed:    pub,
	}
}

// Run plays until the user quits or input ends. Invalid input is never
// fatal; only read errors other than EOF are returned.
func (s *Session) Run() error {
	s.displayWelcomeScreen()

	name, err := s.promptName()
	if err != nil {
		return s.finish(err)
	}
	s.mu.Lock()
	s.player = game.NewPlayer(name)
	s.mu.Unlock()
	slog.Info("Session started", "player", name)

	for {
		choice, err := s.promptMenu()
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case menuBestOf:
			err = s.playBestOfNRounds()
		case menuPractice:
			err = s.playPracticeMode()
		case menuHistory:
			s.displayDetailedGameHistory()
		case menuQuit:
			return s.finish(nil)
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

// finish prints the final stats; EOF counts as a normal quit.
func (s *Session) finish(err error) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.displayFinalStats()
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	slog.Error("Session ended on read error", "error", err)
	return err
}

// Player returns the session's player; zero until the name is chosen.
func (s *Session) Player() game.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player
}

func (s *Session) Scoreboard() game.Scoreboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sb := game.Scoreboard{
		Player: s.player.Username,
		Totals: s.history.Totals(),
	}
	if s.current != nil {
		score := s.current.Score()
		sb.Match = &score
	}
	return sb
}

func (s *Session) startMatch(m *game.Match) {
	s.mu.Lock()
	s.current = m
	s.mu.Unlock()
	s.feed.Publish(feed.CommandMatchStarted, m.Score())
	slog.Debug("Match started", "match", m.ID, "mode", m.Mode, "rounds", m.Rounds)
}

func (s *Session) endMatch(m *game.Match) {
	s.mu.Lock()
	score := m.Score()
	s.current = nil
	s.mu.Unlock()

	if score.Winner != "" {
		metrics.MatchesTotal.WithLabelValues(score.Winner).Inc()
	}
	s.feed.Publish(feed.CommandMatchEnded, score)
	slog.Info("Match ended", "match", m.ID, "mode", m.Mode, "player", m.PlayerScore, "computer", m.ComputerScore)
}

func (s *Session) playBestOfNRounds() error {
	rounds, err := s.promptRounds()
	if err != nil {
		return err
	}
	m, err := game.NewBestOf(rounds)
	if err != nil {
		// promptRounds already normalised the value.
		return fmt.Errorf("start match: %w", err)
	}
	s.startMatch(m)

	for m.State() != game.MatchComplete {
		fmt.Fprintf(s.out, "\n--- Round %d of %d ---\n", m.CurrentRound(), m.Rounds)
		if _, err := s.playRound(m); err != nil {
			s.endMatch(m)
			return err
		}
		s.displayCurrentScore(m.PlayerScore, m.ComputerScore)
	}

	s.announceMatchWinner(m)
	s.endMatch(m)
	return nil
}

func (s *Session) playPracticeMode() error {
	m := game.NewPractice()
	s.startMatch(m)
	defer s.endMatch(m)

	for {
		totals := s.history.Totals()
		fmt.Fprintln(s.out, "\n--- Practice Mode ---")
		fmt.Fprintf(s.out, "Current Total Score - %s: %d | Computer: %d\n", s.Player().Username, totals.Wins, totals.Losses)

		ok, err := s.confirmContinuePlaying()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if _, err := s.playRound(m); err != nil {
			return err
		}
	}
}

// playRound repeats until a round is resolved; ties are replayed.
func (s *Session) playRound(m *game.Match) (game.Outcome, error) {
	for {
		playerMove, err := s.promptMove()
		if err != nil {
			return game.Tie, err
		}
		computerMove := s.source.Next()
		s.displayMoves(playerMove, computerMove)

		s.mu.Lock()
		outcome, err := m.Play(playerMove, computerMove)
		s.mu.Unlock()
		if err != nil {
			return game.Tie, fmt.Errorf("play round: %w", err)
		}
		metrics.RoundsTotal.WithLabelValues(string(m.Mode), outcome.String()).Inc()
		slog.Debug("Round played", "match", m.ID, "player", playerMove.Name(), "computer", computerMove.Name(), "result", outcome)

		if outcome == game.Tie {
			fmt.Fprintf(s.out, "It's a tie! %s Replaying the round.\n", outcome.Message())
			s.feed.Publish(feed.CommandRoundTied, m.Score())
			continue
		}

		entry, _ := s.history.Record(m, playerMove, computerMove, outcome)
		s.feed.Publish(feed.CommandRoundPlayed, entry)

		if outcome == game.PlayerWin {
			fmt.Fprintf(s.out, "%s wins this round! %s\n", s.Player().Username, outcome.Message())
		} else {
			fmt.Fprintf(s.out, "Computer wins this round! %s\n", outcome.Message())
		}
		return outcome, nil
	}
}
