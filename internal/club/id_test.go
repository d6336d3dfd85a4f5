package club_test

import (
	"encoding/json"
	"testing"

	"github.com/phantomloop/ttclub/internal/club"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeID(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "abc-123", "abc-123"},
		{"padded string", "  abc ", "abc"},
		{"int", 7, "7"},
		{"int64", int64(7), "7"},
		{"integral float", float64(7), "7"},
		{"fractional float", 7.5, "7.5"},
		{"json number", json.Number("42"), "42"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, club.NormalizeID(tc.in))
		})
	}
}

func TestNormalizeIDAgreesAcrossForms(t *testing.T) {
	// A JSON payload carrying 7 and a store carrying "7" must name the same
	// player.
	assert.Equal(t, club.NormalizeID("7"), club.NormalizeID(float64(7)))
	assert.Equal(t, club.NormalizeID(7), club.NormalizeID(json.Number("7")))
}

func TestNormalizeScore(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int
	}{
		{"nil", nil, 0},
		{"int", 11, 11},
		{"float", float64(7), 7},
		{"negative", -3, 0},
		{"numeric string", "9", 9},
		{"padded numeric string", " 9 ", 9},
		{"garbage string", "garbage", 0},
		{"json number", json.Number("11"), 11},
		{"bool", true, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, club.NormalizeScore(tc.in))
		})
	}
}

func TestPlayerGames(t *testing.T) {
	p := club.Player{Wins: 3, Losses: 2}
	assert.Equal(t, 5, p.Games())
}

func TestMatchInvolves(t *testing.T) {
	m := club.Match{Player1ID: "a", Player2ID: "b", WinnerID: "a"}
	assert.True(t, m.Involves("a"))
	assert.True(t, m.Involves("b"))
	assert.False(t, m.Involves("c"))
}
