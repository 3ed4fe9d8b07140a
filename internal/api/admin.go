package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Concord/internal/config"
)

type AdminHandler struct {
	cfg           *config.Config
	eventsEnabled bool
}

func NewAdminHandler(cfg *config.Config, eventsEnabled bool) *AdminHandler {
	return &AdminHandler{cfg: cfg, eventsEnabled: eventsEnabled}
}

type ConfigSummary struct {
	Activation     string `json:"activation"`
	Normalize      bool   `json:"normalize"`
	FlagBaseURL    string `json:"flag_base_url"`
	RateLimit      int    `json:"rate_limit_per_minute"`
	EventsEnabled  bool   `json:"events_enabled"`
	LogLevel       string `json:"log_level"`
	AdminProtected bool   `json:"admin_protected"`
}

// Config reports the effective configuration with secrets omitted.
// GET /api/v1/admin/config
func (h *AdminHandler) Config(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ConfigSummary{
		Activation:     h.cfg.Scoring.Activation.String(),
		Normalize:      h.cfg.Scoring.Normalize,
		FlagBaseURL:    h.cfg.Assets.FlagBaseURL,
		RateLimit:      h.cfg.Server.RateLimit,
		EventsEnabled:  h.eventsEnabled,
		LogLevel:       h.cfg.Logging.Level,
		AdminProtected: h.cfg.Server.AdminToken != "",
	})
}
