package club

// DateFormat is the canonical calendar-date layout used for match dates,
// attendance keys and last-seen fields.
const DateFormat = "2006-01-02"

// Attendance statuses. "Future" and "No Data" are derived on read and never
// written to a player's history.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceFuture  = "Future"
	AttendanceNoData  = "No Data"
)

// Player is a club member with derived standings state. Wins, losses, streak,
// win rate and rank are owned by the ranking engine and must never be set
// directly by callers.
type Player struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Rank             int               `json:"rank"`
	Wins             int               `json:"wins"`
	Losses           int               `json:"losses"`
	CurrentStreak    int               `json:"current_streak"`
	WinRate          float64           `json:"win_rate"`
	AttendanceStatus string            `json:"attendance_status"`
	LastSeen         string            `json:"last_seen"`
	History          map[string]string `json:"attendance_history,omitempty"`
	CreatedAt        string            `json:"created_at"`
}

// Games returns the total number of recorded games for the player.
func (p *Player) Games() int {
	return p.Wins + p.Losses
}

// Match is an immutable result between two players. There is no edit
// operation, only deletion.
type Match struct {
	ID           string `json:"id"`
	Player1ID    string `json:"player1_id"`
	Player2ID    string `json:"player2_id"`
	Player1Score int    `json:"player1_score"`
	Player2Score int    `json:"player2_score"`
	WinnerID     string `json:"winner_id"`
	MatchDate    string `json:"match_date"`
	CreatedAt    string `json:"created_at"`

	// Denormalized for display, never persisted as the source of truth.
	Player1Name string `json:"player1_name,omitempty"`
	Player2Name string `json:"player2_name,omitempty"`
	WinnerName  string `json:"winner_name,omitempty"`
}

// Involves reports whether the match references the player as either
// participant or as the recorded winner.
func (m *Match) Involves(playerID string) bool {
	return m.Player1ID == playerID || m.Player2ID == playerID || m.WinnerID == playerID
}

// Announcement is a plain board record with no derived state.
type Announcement struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Type      string `json:"type"`
	Priority  string `json:"priority"`
	CreatedAt string `json:"created_at"`
	CreatedBy string `json:"created_by"`
	IsActive  bool   `json:"is_active"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

// User is a flat credential record. Passwords are compared as-is; hardening
// the credential model is explicitly out of scope.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	PlayerID  string `json:"player_id,omitempty"`
	CreatedAt string `json:"created_at"`
}
