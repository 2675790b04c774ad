package console

import (
	"Roshambo/internal/game"
	"Roshambo/internal/services"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readLine returns the next input line, or io.EOF once input is exhausted.
// Lines have no length limit; a final line without a newline still counts.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) promptName() (string, error) {
	for {
		fmt.Fprintf(s.out, "Enter your name (%d-%d characters, blank for a random one): ", services.MinNameLength, services.MaxNameLength)
		input, err := s.readLine()
		if err != nil {
			return "", err
		}
		if input == "" {
			name := services.GenerateName()
			fmt.Fprintf(s.out, "You shall be known as %s.\n", name)
			return name, nil
		}
		name, err := services.ValidateName(input)
		if err == nil {
			return name, nil
		}
		fmt.Fprintln(s.out, "Invalid name. Please try again.")
	}
}

func (s *Session) promptMenu() (int, error) {
	s.displayGameMenu()
	for {
		fmt.Fprint(s.out, "Select mode (1-4): ")
		input, err := s.readLine()
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(input)
		if err == nil && choice >= menuBestOf && choice <= menuQuit {
			return choice, nil
		}
		fmt.Fprintln(s.out, "Invalid selection. Please enter a number between 1 and 4.")
	}
}

// promptRounds returns a validated, odd number of rounds.
func (s *Session) promptRounds() (int, error) {
	for {
		fmt.Fprintf(s.out, "Enter number of rounds (odd, %d-%d): ", game.MinRounds, game.MaxRounds)
		input, err := s.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a number.")
			continue
		}
		rounds, err := game.NormalizeRounds(n)
		if errors.Is(err, game.ErrInvalidRounds) {
			fmt.Fprintf(s.out, "Please enter an odd number between %d and %d.\n", game.MinRounds, game.MaxRounds)
			continue
		}
		if rounds != n {
			fmt.Fprintf(s.out, "An even count can't produce a majority, playing best of %d.\n", rounds)
		}
		return rounds, nil
	}
}

func (s *Session) promptMove() (game.Move, error) {
	for {
		s.displayMoveOptions()
		fmt.Fprint(s.out, "Enter your move (1-3): ")
		input, err := s.readLine()
		if err != nil {
			return 0, err
		}
		move, err := game.ParseMove(input)
		if err == nil {
			fmt.Fprintln(s.out, move.Description())
			return move, nil
		}
		fmt.Fprintln(s.out, "Invalid move! Please enter 1, 2, or 3.")
	}
}

// confirmContinuePlaying treats anything not starting with "n" as yes.
func (s *Session) confirmContinuePlaying() (bool, error) {
	fmt.Fprint(s.out, "Ready to play another round? (yes/no): ")
	input, err := s.readLine()
	if err != nil {
		return false, err
	}
	return !strings.HasPrefix(strings.ToLower(input), "n"), nil
}
