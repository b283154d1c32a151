// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"cmp"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/holiday-vote/models"
)

// Points per choice slot
const (
	FirstChoicePoints  = 2
	SecondChoicePoints = 1
)

// Tally scores ballots against holidays. Choices that name no holiday are
// ignored; the two slots of a ballot are scored independently. The result is
// ordered by descending score, with ties kept in catalog order, and every
// ballot counts toward TotalBallots.
func Tally(holidays []models.Holiday, ballots []models.Ballot) models.Results {
	rankings := make([]models.DestinationResult, len(holidays))
	index := make(map[string]int, len(holidays))
	for i, h := range holidays {
		rankings[i] = models.DestinationResult{
			Destination: h.Destination,
			ProposedBy:  h.ProposedBy,
		}
		index[h.Destination] = i
	}

	for _, b := range ballots {
		if i, ok := index[b.FirstChoice]; ok {
			rankings[i].FirstChoiceVotes++
			rankings[i].TotalScore += FirstChoicePoints
		}
		if i, ok := index[b.SecondChoice]; ok {
			rankings[i].SecondChoiceVotes++
			rankings[i].TotalScore += SecondChoicePoints
		}
	}

	slices.SortStableFunc(rankings, func(a, b models.DestinationResult) int {
		return cmp.Compare(b.TotalScore, a.TotalScore)
	})

	// Competition ranking: 1, 1, 3
	for i := range rankings {
		if i > 0 && rankings[i].TotalScore == rankings[i-1].TotalScore {
			rankings[i].Rank = rankings[i-1].Rank
		} else {
			rankings[i].Rank = i + 1
		}
		rankings[i].Place = humanize.Ordinal(rankings[i].Rank)
	}

	return models.Results{
		Rankings:     rankings,
		TotalBallots: len(ballots),
	}
}
