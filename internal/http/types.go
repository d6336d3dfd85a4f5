package http

import (
	"net/http"

	"github.com/phantomloop/ttclub/internal/attendance"
	"github.com/phantomloop/ttclub/internal/board"
	"github.com/phantomloop/ttclub/internal/config"
	"github.com/phantomloop/ttclub/internal/metrics"
	"github.com/phantomloop/ttclub/internal/notifier"
	"github.com/phantomloop/ttclub/internal/processor"
	"github.com/phantomloop/ttclub/internal/roster"
)

type Server struct {
	Roster         roster.Repository
	Board          board.Board
	Attendance     *attendance.Tracker
	Processor      *processor.Processor
	Notifier       notifier.Notifier
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
