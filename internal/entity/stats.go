package entity

import "fmt"

// Stats aggregates finished games from the human's point of view.
// It is owned by the caller and only changes through Apply.
type Stats struct {
	Games        int `json:"games"`
	HumanWins    int `json:"human_wins"`
	ComputerWins int `json:"computer_wins"`
	Draws        int `json:"draws"`
}

func (that *Stats) Apply(event GameFinished) {
	that.Games++

	switch event.Winner {
	case WinnerHuman:
		that.HumanWins++
	case WinnerComputer:
		that.ComputerWins++
	case WinnerDraw:
		that.Draws++
	}
}

func (that Stats) String() string {
	return fmt.Sprintf("games: %d, wins: %d, losses: %d, draws: %d", that.Games, that.HumanWins, that.ComputerWins, that.Draws)
}
