package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/phantomloop/ttclub/internal/board"
	"github.com/phantomloop/ttclub/internal/club"
	"github.com/phantomloop/ttclub/internal/ledger"
	"github.com/phantomloop/ttclub/internal/roster"
)

// respondWithJSON is a helper to encode and write a JSON response body.
func respondWithJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response to JSON", "error", err)
	}
}

// statusForError maps domain errors onto HTTP status codes.
func statusForError(err error) int {
	var ve *ledger.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, roster.ErrNotFound), errors.Is(err, board.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		user, err := s.Processor.Auth().Authenticate(creds.Username, creds.Password)
		if err != nil {
			log.Error("Login lookup failed", "username", creds.Username, "error", err)
			http.Error(w, "Login failed", http.StatusInternalServerError)
			return
		}
		if user == nil {
			http.Error(w, "Invalid username or password", http.StatusUnauthorized)
			return
		}
		respondWithJSON(w, http.StatusOK, user)
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, s.Roster.List())
	}
}

func (s *Server) AddPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var np roster.NewPlayer
		if err := json.NewDecoder(r.Body).Decode(&np); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if np.Name == "" {
			http.Error(w, "Player name is required", http.StatusBadRequest)
			return
		}

		player, err := s.Processor.AddPlayer(np)
		if err != nil {
			log.Error("Failed to add player", "name", np.Name, "error", err)
			http.Error(w, "Failed to add player", statusForError(err))
			return
		}
		respondWithJSON(w, http.StatusCreated, player)
	}
}

func (s *Server) UpdatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Player id is required", http.StatusBadRequest)
			return
		}

		var fields map[string]any
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		player, err := s.Processor.UpdatePlayer(id, fields)
		if err != nil {
			log.Error("Failed to update player", "playerID", id, "error", err)
			http.Error(w, "Failed to update player", statusForError(err))
			return
		}
		respondWithJSON(w, http.StatusOK, player)
	}
}

func (s *Server) DeletePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Player id is required", http.StatusBadRequest)
			return
		}

		player, err := s.Processor.DeletePlayer(id)
		if err != nil {
			log.Error("Failed to delete player", "playerID", id, "error", err)
			http.Error(w, "Failed to delete player", statusForError(err))
			return
		}
		respondWithJSON(w, http.StatusOK, player)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, s.Processor.Matches())
	}
}

func (s *Server) RecordMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var nm ledger.NewMatch
		if err := json.NewDecoder(r.Body).Decode(&nm); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		match, err := s.Processor.RecordMatch(nm)
		if err != nil {
			var ve *ledger.ValidationError
			if errors.As(err, &ve) {
				http.Error(w, ve.Error(), http.StatusBadRequest)
				return
			}
			log.Error("Failed to record match", "error", err)
			http.Error(w, "Failed to record match", statusForError(err))
			return
		}
		respondWithJSON(w, http.StatusCreated, match)
	}
}

func (s *Server) DeleteMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Match id is required", http.StatusBadRequest)
			return
		}

		if !s.Processor.DeleteMatch(id) {
			http.Error(w, "Match not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Deleted match %s", id)
	}
}

func (s *Server) ClearMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear the match ledger")
		if err := s.Processor.ClearMatches(); err != nil {
			log.Error("Failed to clear matches", "error", err)
			http.Error(w, "Failed to clear matches", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Ledger cleared!")
		log.Info("Ledger cleared successfully")
	}
}

func (s *Server) RecalculateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Starting full recalculation from history...")
		report, err := s.Processor.Recalculate()
		if err != nil {
			log.Error("Recalculation failed", "error", err)
			http.Error(w, "Recalculation failed", http.StatusInternalServerError)
			return
		}
		log.Info("Recalculation finished.", "players", report.Players, "matches", report.Matches, "skipped", len(report.Skipped))
		respondWithJSON(w, http.StatusOK, report)
	}
}

func (s *Server) SetAttendanceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			PlayerID any    `json:"player_id"`
			Status   string `json:"status"`
			Date     string `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Status == "" {
			http.Error(w, "Attendance status is required", http.StatusBadRequest)
			return
		}

		player, err := s.Attendance.SetAttendance(req.PlayerID, req.Status, req.Date)
		if err != nil {
			log.Error("Failed to set attendance", "playerID", req.PlayerID, "error", err)
			http.Error(w, "Failed to set attendance", statusForError(err))
			return
		}
		respondWithJSON(w, http.StatusOK, player)
	}
}

func (s *Server) AttendanceReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Player id is required", http.StatusBadRequest)
			return
		}

		now := time.Now()
		year := now.Year()
		month := int(now.Month())
		if y := r.URL.Query().Get("year"); y != "" {
			parsed, err := strconv.Atoi(y)
			if err != nil {
				http.Error(w, "Invalid year", http.StatusBadRequest)
				return
			}
			year = parsed
		}
		if m := r.URL.Query().Get("month"); m != "" {
			parsed, err := strconv.Atoi(m)
			if err != nil || parsed < 1 || parsed > 12 {
				http.Error(w, "Invalid month", http.StatusBadRequest)
				return
			}
			month = parsed
		}

		report, err := s.Attendance.MonthlyReport(id, year, time.Month(month))
		if err != nil {
			log.Error("Failed to build attendance report", "playerID", id, "error", err)
			http.Error(w, "Failed to build attendance report", statusForError(err))
			return
		}
		respondWithJSON(w, http.StatusOK, report)
	}
}

func (s *Server) ListAnnouncementsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeOnly := r.URL.Query().Get("active") == "true"
		respondWithJSON(w, http.StatusOK, s.Board.List(activeOnly))
	}
}

func (s *Server) CreateAnnouncementHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var na board.NewAnnouncement
		if err := json.NewDecoder(r.Body).Decode(&na); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if na.Title == "" {
			http.Error(w, "Announcement title is required", http.StatusBadRequest)
			return
		}

		ann, err := s.Board.Create(na)
		if err != nil {
			log.Error("Failed to create announcement", "title", na.Title, "error", err)
			http.Error(w, "Failed to create announcement", http.StatusInternalServerError)
			return
		}
		respondWithJSON(w, http.StatusCreated, ann)
	}
}

func (s *Server) DeleteAnnouncementHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Announcement id is required", http.StatusBadRequest)
			return
		}

		if err := s.Board.Delete(id); err != nil {
			log.Error("Failed to delete announcement", "id", id, "error", err)
			http.Error(w, "Failed to delete announcement", statusForError(err))
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Deleted announcement %s", id)
	}
}

func (s *Server) NotifyAnnouncementHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Announcement id is required", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)

		var ann *club.Announcement
		for _, a := range s.Board.List(false) {
			if a.ID == id {
				ann = a
				break
			}
		}
		if ann == nil {
			http.Error(w, "Announcement not found", http.StatusNotFound)
			return
		}

		if err := s.Notifier.SendAnnouncement(ann, isDryRun); err != nil {
			log.Error("Failed to notify announcement", "id", id, "error", err)
			http.Error(w, "Failed to notify announcement", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}
}

func (s *Server) NotifyLeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)

		if err := s.Notifier.SendLeaderboard(s.Roster.List(), isDryRun); err != nil {
			log.Error("Failed to notify leaderboard", "error", err)
			http.Error(w, "Failed to notify leaderboard", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}
}
