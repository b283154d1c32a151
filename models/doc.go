// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - VoteRequest: voter_name, first_choice, second_choice

# Response Types

  - IndexResponse: holidays, travelers still eligible to vote
  - VoteFormResponse: error plus the re-rendered form state
  - VoteResponse: ballot_id, total_votes, confirmation message
  - ResultsResponse: ranked results, total_votes, max_votes, participation
  - ErrorResponse: error, message

# Domain Types

  - Traveler: a voter on the fixed roster with a one-shot has_voted flag
  - Holiday: a destination proposal with optional coordinates
  - Ballot: one traveler's first and second choice
  - DestinationResult: per-destination tally and rank
  - Results: the ranked tally plus the ballot count

Holiday serializes to the shape the map front end expects:

	{"id": 1, "destination": "Porto", "by": "Amy", "latitude": 41.1579, "longitude": -8.6291}
*/
package models
