package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jcarrick/flagboard/internal/api/apierr"
	"github.com/jcarrick/flagboard/internal/api/middleware"
	"github.com/jcarrick/flagboard/internal/api/request"
	"github.com/jcarrick/flagboard/internal/api/response"
	"github.com/jcarrick/flagboard/internal/model"
	"github.com/jcarrick/flagboard/internal/services/leaderboard"
	"github.com/jcarrick/flagboard/internal/services/scoring"
)

// ScoreHandler handles flag submission and score endpoints
type ScoreHandler struct {
	scoringService     *scoring.Service
	leaderboardService *leaderboard.Service
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scoringService *scoring.Service, leaderboardService *leaderboard.Service) *ScoreHandler {
	return &ScoreHandler{
		scoringService:     scoringService,
		leaderboardService: leaderboardService,
	}
}

// SubmitFlag handles POST /api/v1/flags
func (h *ScoreHandler) SubmitFlag(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	var req request.SubmitFlagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.ChallengeID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("challenge_id is required"))
		return
	}
	if req.Flag == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("flag is required"))
		return
	}

	result, err := h.scoringService.SubmitFlag(r.Context(), session.TeamID, model.ChallengeID(req.ChallengeID), req.Flag)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubmissionResponseFromResult(result))
}

// MyScore handles GET /api/v1/teams/me/score
func (h *ScoreHandler) MyScore(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	score, err := h.scoringService.TeamScore(r.Context(), session.TeamID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TeamScoreFromModel(score))
}

// Leaderboard handles GET /api/v1/leaderboard
// Served without authentication, matching the competition's public scoreboard
func (h *ScoreHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	ranked, err := h.leaderboardService.Rank(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromScores(ranked))
}
