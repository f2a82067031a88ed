// internal/api/clubs/handlers.go
package clubs

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/clubkit/clubkit/internal/api/apiutil"
	"github.com/clubkit/clubkit/internal/db"
	dbgen "github.com/clubkit/clubkit/internal/db/generated"
	"github.com/clubkit/clubkit/internal/models"
	"github.com/clubkit/clubkit/internal/standings"
)

var database *db.DB

func InitHandlers(d *db.DB) {
	database = d
}

// HandleClubs serves GET (list) and POST (create) on /api/v1/clubs.
func HandleClubs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		handleList(w, r)
	case http.MethodPost:
		handleCreate(w, r)
	default:
		apiutil.Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// HandleClubDetail serves GET and PUT on /api/v1/clubs/{id} and GET on
// /api/v1/clubs/{id}/leaderboard.
func HandleClubDetail(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/v1/clubs/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		apiutil.Error(w, r, http.StatusBadRequest, "invalid club id")
		return
	}
	id := parts[0]

	if len(parts) == 2 && parts[1] == "leaderboard" {
		handleLeaderboard(w, r, id)
		return
	}
	if len(parts) > 1 {
		apiutil.Error(w, r, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		club, err := database.Queries.GetClub(r.Context(), id)
		if errors.Is(err, sql.ErrNoRows) {
			apiutil.Error(w, r, http.StatusNotFound, "club not found")
			return
		}
		if err != nil {
			apiutil.Error(w, r, http.StatusInternalServerError, "failed to load club")
			return
		}
		apiutil.WriteJSON(w, http.StatusOK, toModel(club))
	case http.MethodPut:
		handleUpdate(w, r, id)
	default:
		apiutil.Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleLeaderboard ranks the club's members by match record, or by Elo
// rating when the club ranks that way.
func handleLeaderboard(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		apiutil.Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	club, err := database.Queries.GetClub(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		apiutil.Error(w, r, http.StatusNotFound, "club not found")
		return
	}
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to load club")
		return
	}

	board, err := standings.CalculateStandings(r.Context(), database.Queries, club.ID, club.UseEloRanking)
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to calculate leaderboard")
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, board)
}

// HandleSports lists the supported sport presets.
func HandleSports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiutil.Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, models.Sports())
}

type clubRequest struct {
	Name          string `json:"name"`
	Sport         string `json:"sport"`
	Skill1Name    string `json:"skill1Name"`
	Skill2Name    string `json:"skill2Name"`
	UseEloRanking bool   `json:"useEloRanking"`
}

func handleList(w http.ResponseWriter, r *http.Request) {
	rows, err := database.Queries.ListClubs(r.Context())
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to list clubs")
		return
	}
	clubs := make([]models.Club, 0, len(rows))
	for _, row := range rows {
		clubs = append(clubs, toModel(row))
	}
	apiutil.WriteJSON(w, http.StatusOK, clubs)
}

func handleCreate(w http.ResponseWriter, r *http.Request) {
	var req clubRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.Error(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	club := models.Club{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(req.Name),
		Sport:         req.Sport,
		Skill1Name:    strings.TrimSpace(req.Skill1Name),
		Skill2Name:    strings.TrimSpace(req.Skill2Name),
		UseEloRanking: req.UseEloRanking,
	}
	if err := club.Validate(); err != nil {
		apiutil.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	row, err := database.Queries.CreateClub(r.Context(), dbgen.CreateClubParams{
		ID:            club.ID,
		Name:          club.Name,
		Sport:         club.Sport,
		Skill1Name:    nullString(club.Skill1Name),
		Skill2Name:    nullString(club.Skill2Name),
		UseEloRanking: club.UseEloRanking,
	})
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to create club")
		return
	}

	log.Ctx(r.Context()).Info().Str("club_id", row.ID).Str("sport", row.Sport).Msg("Club created")
	apiutil.WriteJSON(w, http.StatusCreated, toModel(row))
}

func handleUpdate(w http.ResponseWriter, r *http.Request, id string) {
	var req clubRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.Error(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	club := models.Club{
		ID:            id,
		Name:          strings.TrimSpace(req.Name),
		Sport:         req.Sport,
		Skill1Name:    strings.TrimSpace(req.Skill1Name),
		Skill2Name:    strings.TrimSpace(req.Skill2Name),
		UseEloRanking: req.UseEloRanking,
	}
	if err := club.Validate(); err != nil {
		apiutil.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	row, err := database.Queries.UpdateClub(r.Context(), dbgen.UpdateClubParams{
		Name:          club.Name,
		Sport:         club.Sport,
		Skill1Name:    nullString(club.Skill1Name),
		Skill2Name:    nullString(club.Skill2Name),
		UseEloRanking: club.UseEloRanking,
		ID:            id,
	})
	if errors.Is(err, sql.ErrNoRows) {
		apiutil.Error(w, r, http.StatusNotFound, "club not found")
		return
	}
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to update club")
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, toModel(row))
}

func toModel(row dbgen.Club) models.Club {
	return models.Club{
		ID:            row.ID,
		Name:          row.Name,
		Sport:         row.Sport,
		Skill1Name:    row.Skill1Name.String,
		Skill2Name:    row.Skill2Name.String,
		UseEloRanking: row.UseEloRanking,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
