// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/holiday-vote/db"
	"github.com/danielhkuo/holiday-vote/models"
	"github.com/danielhkuo/holiday-vote/tally"
	"github.com/danielhkuo/holiday-vote/testutil"
)

func TestGetResults_NoBallots(t *testing.T) {
	conn := testutil.SetupSeededDB(t)
	defer conn.Close()

	handler := NewResultsHandler(conn, tally.NewEngine(conn, nil))

	w := httptest.NewRecorder()
	handler.GetResults(w, httptest.NewRequest("GET", "/results", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalVotes != 0 {
		t.Errorf("Expected 0 votes, got %d", resp.TotalVotes)
	}
	if resp.MaxVotes != 14 {
		t.Errorf("Expected max_votes 14, got %d", resp.MaxVotes)
	}
	if resp.Participation != 0 {
		t.Errorf("Expected 0%% participation, got %v", resp.Participation)
	}
	if len(resp.Results) != 4 {
		t.Fatalf("Expected 4 destinations, got %d", len(resp.Results))
	}
	for _, r := range resp.Results {
		if r.TotalScore != 0 {
			t.Errorf("Expected score 0 for %s, got %d", r.Destination, r.TotalScore)
		}
	}
}

func TestGetResults_Ranked(t *testing.T) {
	conn := testutil.SetupSeededDB(t)
	defer conn.Close()

	testutil.InsertTestBallot(t, conn, "Amy", "Porto", "Leucate")
	testutil.InsertTestBallot(t, conn, "Will", "Leucate", "Porto")
	testutil.InsertTestBallot(t, conn, "Kirsty", "Lake Garda", "Porto")
	testutil.InsertTestBallot(t, conn, "Gabbie", "Marrakesh", "Atlantis")

	handler := NewResultsHandler(conn, tally.NewEngine(conn, nil))

	w := httptest.NewRecorder()
	handler.GetResults(w, httptest.NewRequest("GET", "/results", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalVotes != 4 {
		t.Errorf("Expected 4 votes, got %d", resp.TotalVotes)
	}
	// 4 of 14 travelers
	if resp.Participation != 28.6 {
		t.Errorf("Expected participation 28.6, got %v", resp.Participation)
	}

	// Porto 2+1+1=4, Leucate 2+1=3, then Lake Garda and Marrakesh tie on 2 in catalog order
	want := []struct {
		destination string
		by          string
		score       int
		place       string
	}{
		{"Porto", "Amy", 4, "1st"},
		{"Leucate", "Will", 3, "2nd"},
		{"Lake Garda", "Kirsty", 2, "3rd"},
		{"Marrakesh", "Gabbie", 2, "3rd"},
	}
	for i, w := range want {
		got := resp.Results[i]
		if got.Destination != w.destination || got.ProposedBy != w.by || got.TotalScore != w.score || got.Place != w.place {
			t.Errorf("position %d: expected %+v, got %+v", i, w, got)
		}
	}
}

func TestGetHolidays(t *testing.T) {
	conn := testutil.SetupSeededDB(t)
	defer conn.Close()

	handler := NewResultsHandler(conn, tally.NewEngine(conn, nil))

	w := httptest.NewRecorder()
	handler.GetHolidays(w, httptest.NewRequest("GET", "/api/holidays", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var holidays []models.Holiday
	testutil.AssertJSON(t, w, &holidays)

	seed := db.DefaultSeed()
	if len(holidays) != len(seed.Holidays) {
		t.Fatalf("Expected %d holidays, got %d", len(seed.Holidays), len(holidays))
	}

	for i, h := range holidays {
		s := seed.Holidays[i]
		if h.ID != i+1 || h.Destination != s.Destination || h.ProposedBy != s.By {
			t.Errorf("holiday %d mismatch: %+v", i, h)
		}
		// Coordinates round-trip exactly through the store and JSON
		if h.Latitude == nil || *h.Latitude != *s.Latitude {
			t.Errorf("%s latitude mismatch: got %v want %v", h.Destination, h.Latitude, *s.Latitude)
		}
		if h.Longitude == nil || *h.Longitude != *s.Longitude {
			t.Errorf("%s longitude mismatch: got %v want %v", h.Destination, h.Longitude, *s.Longitude)
		}
	}
}

func TestGetHolidays_MissingCoordinates(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	testutil.CreateTestHoliday(t, conn, 1, "Somewhere", "Finni", nil, nil)
	testutil.CreateTestHoliday(t, conn, 2, "Reykjavik", "Finlay", testutil.Float(64.1466), testutil.Float(-21.9426))

	handler := NewResultsHandler(conn, tally.NewEngine(conn, nil))

	w := httptest.NewRecorder()
	handler.GetHolidays(w, httptest.NewRequest("GET", "/api/holidays", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	body := w.Body.String()
	var holidays []models.Holiday
	testutil.AssertJSON(t, w, &holidays)

	if len(holidays) != 2 {
		t.Fatalf("Expected 2 holidays, got %d", len(holidays))
	}
	if holidays[0].Latitude != nil || holidays[0].Longitude != nil {
		t.Errorf("Expected null coordinates, got body %s", body)
	}
	if holidays[1].Latitude == nil || *holidays[1].Latitude != 64.1466 {
		t.Errorf("Expected latitude 64.1466, got body %s", body)
	}
}

func TestParticipation(t *testing.T) {
	tests := []struct {
		votes, roster int
		want          float64
	}{
		{0, 14, 0},
		{7, 14, 50},
		{14, 14, 100},
		{1, 3, 33.3},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := participation(tt.votes, tt.roster); got != tt.want {
			t.Errorf("participation(%d, %d) = %v, want %v", tt.votes, tt.roster, got, tt.want)
		}
	}
}
