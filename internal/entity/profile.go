package entity

const (
	DefaultRating = 1000
	MinRating     = 100

	WinRatingGain     = 25
	LossRatingPenalty = 15
)

type Outcome int

const (
	OutcomeLoss Outcome = iota
	OutcomeDraw
	OutcomeWin
)

// OutcomeFor returns the result of a finished game for the given seat.
// A nil winner means the game was drawn.
func OutcomeFor(seat Seat, winner *Seat) Outcome {
	switch {
	case winner == nil:
		return OutcomeDraw
	case *winner == seat:
		return OutcomeWin
	default:
		return OutcomeLoss
	}
}

type PlayerProfile struct {
	Wins       int   `json:"wins"`
	Losses     int   `json:"losses"`
	Draws      int   `json:"draws"`
	TotalGames int   `json:"totalGames"`
	Rating     int   `json:"rating"`
	CreatedAt  int64 `json:"createdAt,omitempty"`
}

func NewPlayerProfile() *PlayerProfile {
	return &PlayerProfile{
		Rating: DefaultRating,
	}
}

func (that *PlayerProfile) RecordResult(outcome Outcome) {
	that.TotalGames++

	switch outcome {
	case OutcomeWin:
		that.Wins++
		that.Rating += WinRatingGain
	case OutcomeDraw:
		that.Draws++
	case OutcomeLoss:
		that.Losses++
		that.Rating = max(MinRating, that.Rating-LossRatingPenalty)
	}
}

type LeaderboardRecord struct {
	OwnerID    string `json:"ownerId"`
	Score      int64  `json:"score"`
	Subscore   int64  `json:"subscore"`
	Rank       int64  `json:"rank"`
	UpdateTime int64  `json:"updateTime,omitempty"`
}
