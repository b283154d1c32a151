// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"context"
	"testing"

	"github.com/danielhkuo/holiday-vote/db"
	"github.com/danielhkuo/holiday-vote/testutil"
)

func TestListHolidays(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	testutil.CreateTestHoliday(t, conn, 2, "Porto", "Amy", testutil.Float(41.1579), testutil.Float(-8.6291))
	testutil.CreateTestHoliday(t, conn, 1, "Leucate", "Will", nil, nil)

	holidays, err := db.ListHolidays(context.Background(), conn)
	if err != nil {
		t.Fatalf("ListHolidays failed: %v", err)
	}
	if len(holidays) != 2 {
		t.Fatalf("expected 2 holidays, got %d", len(holidays))
	}

	// Catalog order is id order, not insert order
	if holidays[0].Destination != "Leucate" || holidays[1].Destination != "Porto" {
		t.Errorf("unexpected order: %s, %s", holidays[0].Destination, holidays[1].Destination)
	}
	if holidays[0].Latitude != nil || holidays[0].Longitude != nil {
		t.Error("expected nil coordinates for Leucate")
	}
	if holidays[1].Latitude == nil || *holidays[1].Latitude != 41.1579 {
		t.Errorf("expected Porto latitude 41.1579, got %v", holidays[1].Latitude)
	}
	if holidays[1].ProposedBy != "Amy" {
		t.Errorf("expected proposer Amy, got %s", holidays[1].ProposedBy)
	}
}

func TestListHolidays_Empty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	holidays, err := db.ListHolidays(context.Background(), conn)
	if err != nil {
		t.Fatal(err)
	}
	if holidays == nil || len(holidays) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", holidays)
	}
}

func TestListEligibleTravelers(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	ctx := context.Background()

	testutil.CreateTestTraveler(t, conn, 1, "Will")
	testutil.CreateTestTraveler(t, conn, 2, "Amy")
	testutil.CreateTestTraveler(t, conn, 3, "Kirsty")
	testutil.InsertTestBallot(t, conn, "Kirsty", "Porto", "Leucate")

	travelers, err := db.ListEligibleTravelers(ctx, conn)
	if err != nil {
		t.Fatalf("ListEligibleTravelers failed: %v", err)
	}

	want := []string{"Amy", "Will"}
	if len(travelers) != len(want) {
		t.Fatalf("expected %d travelers, got %d", len(want), len(travelers))
	}
	for i, name := range want {
		if travelers[i].Name != name {
			t.Errorf("traveler %d: expected %s, got %s", i, name, travelers[i].Name)
		}
		if travelers[i].HasVoted {
			t.Errorf("%s should not have voted", name)
		}
	}

	roster, err := db.CountTravelers(ctx, conn)
	if err != nil || roster != 3 {
		t.Errorf("expected roster of 3, got %d (%v)", roster, err)
	}
	ballots, err := db.CountBallots(ctx, conn)
	if err != nil || ballots != 1 {
		t.Errorf("expected 1 ballot, got %d (%v)", ballots, err)
	}
}
