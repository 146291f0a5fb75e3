package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AuthResult:
		o.printAuthResult(v)
	case SubmissionResult:
		o.printSubmissionResult(v)
	case TeamScoreResult:
		o.printTeamScoreResult(v)
	case LeaderboardResult:
		o.printLeaderboardResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// AuthResult is the auth response type (matches API)
type AuthResult struct {
	Email        string `json:"email"`
	TeamID       string `json:"team_id"`
	SessionToken string `json:"session_token"`
}

// SubmissionResult is the flag submission response type (matches API)
type SubmissionResult struct {
	Accepted         bool `json:"accepted"`
	AlreadyCompleted bool `json:"already_completed"`
	PointsAwarded    int  `json:"points_awarded"`
}

// TeamScoreResult is the team score response type (matches API)
type TeamScoreResult struct {
	TeamID              string   `json:"team_id"`
	Points              int      `json:"points"`
	CompletedChallenges []string `json:"completed_challenges"`
}

// LeaderboardEntry is one leaderboard row (matches API)
type LeaderboardEntry struct {
	Rank                int       `json:"rank"`
	TeamID              string    `json:"team_id"`
	Points              int       `json:"points"`
	CompletedChallenges []string  `json:"completed_challenges"`
	LastUpdated         time.Time `json:"last_updated"`
}

// LeaderboardResult is the leaderboard response type (matches API)
type LeaderboardResult struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// HealthResult is the health response type (matches API)
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Printf("Email:   %s\n", a.Email)
	fmt.Printf("Team ID: %s\n", a.TeamID)
	if a.SessionToken != "" {
		fmt.Println("Session token saved.")
	}
}

func (o *Output) printSubmissionResult(r SubmissionResult) {
	switch {
	case !r.Accepted:
		fmt.Println("Incorrect flag.")
	case r.AlreadyCompleted:
		fmt.Println("Correct, but already solved. No points awarded.")
	default:
		fmt.Printf("Correct! Awarded %d points.\n", r.PointsAwarded)
	}
}

func (o *Output) printTeamScoreResult(s TeamScoreResult) {
	fmt.Printf("Team:   %s\n", s.TeamID)
	fmt.Printf("Points: %d\n", s.Points)
	if len(s.CompletedChallenges) == 0 {
		fmt.Println("Solved: none")
		return
	}
	fmt.Println("Solved:")
	for _, c := range s.CompletedChallenges {
		fmt.Printf("  - %s\n", c)
	}
}

func (o *Output) printLeaderboardResult(l LeaderboardResult) {
	if len(l.Entries) == 0 {
		fmt.Println("No teams on the board yet.")
		return
	}
	fmt.Printf("%-6s %-22s %-8s %s\n", "RANK", "TEAM", "POINTS", "SOLVED")
	for _, e := range l.Entries {
		fmt.Printf("%-6d %-22s %-8d %d\n", e.Rank, e.TeamID, e.Points, len(e.CompletedChallenges))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
