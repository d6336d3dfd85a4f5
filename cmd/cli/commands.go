package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(recalculateCmd)
	rootCmd.AddCommand(announcementsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players on the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the recorded matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches")
	},
}

var recordCmd = &cobra.Command{
	Use:   "record <player1ID> <player2ID> <score1> <score2> <winnerID>",
	Short: "Record a match result",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := fmt.Sprintf(`{"player1_id":%q,"player2_id":%q,"player1_score":%s,"player2_score":%s,"winner_id":%q}`,
			args[0], args[1], args[2], args[3], args[4])
		return performPostRequest("/matches/record", body)
	},
}

var recalculateCmd = &cobra.Command{
	Use:   "recalculate",
	Short: "Rebuild all player statistics from match history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/recalculate", "")
	},
}

var announcementsCmd = &cobra.Command{
	Use:   "announcements",
	Short: "List active board announcements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/announcements?active=true")
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Post the current standings to the club channel",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/notify-leaderboard", "")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	u := host + endpoint
	fmt.Printf("Making request to %s\n", u)

	resp, err := http.Get(u)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint, body string) error {
	u := host + endpoint
	fmt.Printf("Making request to %s\n", u)

	contentType := "application/json"
	if body == "" {
		contentType = "text/plain"
	}
	resp, err := http.Post(u, contentType, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	return nil
}
