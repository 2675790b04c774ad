package console

import (
	"Roshambo/internal/game"
	"fmt"
	"strings"
)

const timestampLayout = "2006-01-02 15:04:05"

func (s *Session) displayWelcomeScreen() {
	fmt.Fprintln(s.out, strings.Repeat("*", 40))
	fmt.Fprintln(s.out, "*    ROCK PAPER SCISSORS ULTIMATE    *")
	fmt.Fprintln(s.out, "*         CHAMPIONSHIP EDITION       *")
	fmt.Fprintln(s.out, strings.Repeat("*", 40))
	fmt.Fprintln(s.out, "✊  ✋  ✌️  - Choose Your Destiny! 🎲")
	fmt.Fprintln(s.out)
}

func (s *Session) displayGameMenu() {
	fmt.Fprintln(s.out, "\n--- Game Modes ---")
	fmt.Fprintln(s.out, "1. Best of N Rounds")
	fmt.Fprintln(s.out, "2. Unlimited Practice Mode")
	fmt.Fprintln(s.out, "3. Detailed Game History")
	fmt.Fprintln(s.out, "4. Quit and Show Total Stats")
}

func (s *Session) displayMoveOptions() {
	fmt.Fprintln(s.out, "\nAvailable Moves:")
	for i, m := range game.Moves {
		fmt.Fprintf(s.out, "%d: %s %s\n", i+1, m, m.Symbol())
	}
}

func (s *Session) displayMoves(player, computer game.Move) {
	fmt.Fprintf(s.out, "\n%s's move: %s (%s)\n", s.Player().Username, player.Symbol(), player)
	fmt.Fprintf(s.out, "Computer's move: %s (%s)\n", computer.Symbol(), computer)
}

func (s *Session) displayCurrentScore(playerScore, computerScore int) {
	fmt.Fprintf(s.out, "\nCurrent Score:\n%s: %d | Computer: %d\n", s.Player().Username, playerScore, computerScore)
}

func (s *Session) announceMatchWinner(m *game.Match) {
	name := s.Player().Username
	fmt.Fprintln(s.out, "\n"+strings.Repeat("=", 40))
	if w, _ := m.Winner(); w == game.PlayerWin {
		fmt.Fprintf(s.out, "🎉 Congratulations, %s! You won the match! 🎉\n", name)
	} else {
		fmt.Fprintf(s.out, "Better luck next time, %s! Computer wins the match!\n", name)
	}
	fmt.Fprintf(s.out, "Final Score - %s: %d | Computer: %d\n", name, m.PlayerScore, m.ComputerScore)
	fmt.Fprintln(s.out, strings.Repeat("=", 40))
}

func (s *Session) displayDetailedGameHistory() {
	entries := s.history.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "\nNo games have been played yet!")
		return
	}

	rule := strings.Repeat("-", 80)
	fmt.Fprintln(s.out, "\n--- Detailed Game History ---")
	fmt.Fprintln(s.out, rule)
	fmt.Fprintf(s.out, "%-4s %-20s %-10s %-10s %-10s %-8s %s\n",
		"#", "Timestamp", "Mode", "Player", "Computer", "Result", "Outcome")
	fmt.Fprintln(s.out, rule)
	for i, e := range entries {
		fmt.Fprintf(s.out, "%-4d %-20s %-10s %-10s %-10s %-8s %s\n",
			i+1,
			e.Timestamp.Format(timestampLayout),
			e.Mode.Title(),
			e.PlayerMove,
			e.ComputerMove,
			strings.ToUpper(e.Result.String()),
			e.Result.Message())
	}
	fmt.Fprintln(s.out, rule)
}

func (s *Session) displayFinalStats() {
	totals := s.history.Totals()
	fmt.Fprintln(s.out, "\n"+strings.Repeat("=", 40))
	fmt.Fprintf(s.out, "Final Tournament Stats for %s:\n", s.Player().Username)
	fmt.Fprintf(s.out, "Total Wins: %d\n", totals.Wins)
	fmt.Fprintf(s.out, "Total Losses: %d\n", totals.Losses)
	fmt.Fprintf(s.out, "Rounds Played: %d\n", totals.Rounds)
	fmt.Fprintln(s.out, "Thanks for playing Rock Paper Scissors Ultimate!")
	fmt.Fprintln(s.out, strings.Repeat("=", 40))
}
