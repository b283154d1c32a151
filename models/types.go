package models

import "time"

// Request types

// VoteRequest is a ballot submission. Form and JSON bodies use the same field names.
type VoteRequest struct {
	VoterName    string `json:"voter_name"`
	FirstChoice  string `json:"first_choice"`
	SecondChoice string `json:"second_choice"`

	// Audit metadata filled in by the handler, never read from the body
	IPHash    string `json:"-"`
	UserAgent string `json:"-"`
}

// Response types

type IndexResponse struct {
	Holidays  []Holiday  `json:"holidays"`
	Travelers []Traveler `json:"travelers"`
}

// VoteFormResponse re-renders the voting form state alongside a validation error
type VoteFormResponse struct {
	Error     string     `json:"error"`
	Holidays  []Holiday  `json:"holidays"`
	Travelers []Traveler `json:"travelers"`
}

type VoteResponse struct {
	BallotID     string `json:"ballot_id"`
	VoterName    string `json:"voter_name"`
	FirstChoice  string `json:"first_choice"`
	SecondChoice string `json:"second_choice"`
	TotalVotes   int    `json:"total_votes"`
	Message      string `json:"message"`
}

type ResultsResponse struct {
	Results       []DestinationResult `json:"results"`
	TotalVotes    int                 `json:"total_votes"`
	MaxVotes      int                 `json:"max_votes"`
	Participation float64             `json:"participation"`
}

// Domain types

type Traveler struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	HasVoted bool   `json:"has_voted"`
}

// Holiday is a destination proposal. Coordinates are nil when unknown.
type Holiday struct {
	ID          int      `json:"id"`
	Destination string   `json:"destination"`
	ProposedBy  string   `json:"by"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

type Ballot struct {
	ID           string    `json:"id"`
	VoterName    string    `json:"voter_name"`
	FirstChoice  string    `json:"first_choice"`
	SecondChoice string    `json:"second_choice"`
	SubmittedAt  time.Time `json:"submitted_at"`
	IPHash       *string   `json:"-"` // Never expose in JSON
	UserAgent    *string   `json:"-"` // Never expose in JSON
}

// Tally types

type DestinationResult struct {
	Destination       string `json:"destination"`
	ProposedBy        string `json:"by"`
	FirstChoiceVotes  int    `json:"first_choice_votes"`
	SecondChoiceVotes int    `json:"second_choice_votes"`
	TotalScore        int    `json:"total_score"`
	Rank              int    `json:"rank"`  // 1-indexed, ties share a rank
	Place             string `json:"place"` // "1st", "2nd", ...
}

type Results struct {
	Rankings     []DestinationResult `json:"rankings"`
	TotalBallots int                 `json:"total_ballots"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
