// internal/api/members/handlers.go
package members

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/clubkit/clubkit/internal/api/apiutil"
	"github.com/clubkit/clubkit/internal/db"
	dbgen "github.com/clubkit/clubkit/internal/db/generated"
	"github.com/clubkit/clubkit/internal/elo"
	"github.com/clubkit/clubkit/internal/models"
)

const defaultSearchLimit = 25

var database *db.DB

func InitHandlers(d *db.DB) {
	database = d
}

// HandleMembers serves GET (list or search) and POST (create) on
// /api/v1/members. List and search both require a clubId query parameter.
func HandleMembers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		handleList(w, r)
	case http.MethodPost:
		handleCreate(w, r)
	default:
		apiutil.Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// HandleMemberDetail serves GET, PUT and DELETE on /api/v1/members/{id}.
func HandleMemberDetail(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/members/")
	if id == "" || strings.Contains(id, "/") {
		apiutil.Error(w, r, http.StatusBadRequest, "invalid member id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		member, err := database.Queries.GetMember(r.Context(), id)
		if errors.Is(err, sql.ErrNoRows) {
			apiutil.Error(w, r, http.StatusNotFound, "member not found")
			return
		}
		if err != nil {
			apiutil.Error(w, r, http.StatusInternalServerError, "failed to load member")
			return
		}
		apiutil.WriteJSON(w, http.StatusOK, toModel(member))
	case http.MethodPut:
		handleUpdate(w, r, id)
	case http.MethodDelete:
		if err := database.Queries.DeleteMember(r.Context(), id); err != nil {
			apiutil.Error(w, r, http.StatusInternalServerError, "failed to delete member")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		apiutil.Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

type memberRequest struct {
	ClubID string `json:"clubId"`
	Name   string `json:"fullName"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Gender string `json:"gender"`
	Skill1 int    `json:"skill1"`
	Skill2 int    `json:"skill2"`
}

func handleList(w http.ResponseWriter, r *http.Request) {
	clubID := r.URL.Query().Get("clubId")
	if clubID == "" {
		apiutil.Error(w, r, http.StatusBadRequest, "clubId query parameter is required")
		return
	}

	var (
		rows []dbgen.Member
		err  error
	)
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		limit := int64(defaultSearchLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, perr := strconv.ParseInt(raw, 10, 64)
			if perr != nil || parsed < 1 {
				apiutil.Error(w, r, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = parsed
		}
		rows, err = database.Queries.SearchMembers(r.Context(), dbgen.SearchMembersParams{
			ClubID:   clubID,
			FullName: q,
			Limit:    limit,
		})
	} else {
		rows, err = database.Queries.ListMembersByClub(r.Context(), clubID)
	}
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to list members")
		return
	}

	members := make([]models.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, toModel(row))
	}
	apiutil.WriteJSON(w, http.StatusOK, members)
}

func handleCreate(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.Error(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ClubID == "" {
		apiutil.Error(w, r, http.StatusBadRequest, "clubId is required")
		return
	}
	if _, err := database.Queries.GetClub(r.Context(), req.ClubID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			apiutil.Error(w, r, http.StatusNotFound, "club not found")
			return
		}
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to load club")
		return
	}

	member, err := memberFromRequest(req, uuid.New().String())
	if err != nil {
		apiutil.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	row, err := database.Queries.CreateMember(r.Context(), dbgen.CreateMemberParams{
		ID:        member.ID,
		ClubID:    member.ClubID,
		FullName:  member.FullName,
		Email:     nullString(member.Email),
		Phone:     nullString(member.Phone),
		Gender:    string(member.Gender),
		Skill1:    int64(member.Skill1),
		Skill2:    int64(member.Skill2),
		EloRating: int64(member.EloRating),
	})
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to create member")
		return
	}

	log.Ctx(r.Context()).Info().
		Str("member_id", row.ID).
		Str("club_id", row.ClubID).
		Msg("Member created")
	apiutil.WriteJSON(w, http.StatusCreated, toModel(row))
}

func handleUpdate(w http.ResponseWriter, r *http.Request, id string) {
	var req memberRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.Error(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	member, err := memberFromRequest(req, id)
	if err != nil {
		apiutil.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	row, err := database.Queries.UpdateMember(r.Context(), dbgen.UpdateMemberParams{
		FullName: member.FullName,
		Email:    nullString(member.Email),
		Phone:    nullString(member.Phone),
		Gender:   string(member.Gender),
		Skill1:   int64(member.Skill1),
		Skill2:   int64(member.Skill2),
		ID:       id,
	})
	if errors.Is(err, sql.ErrNoRows) {
		apiutil.Error(w, r, http.StatusNotFound, "member not found")
		return
	}
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to update member")
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, toModel(row))
}

// memberFromRequest validates the payload and normalizes the phone number.
// New members start at the default rating; record fields are only ever
// changed by match results.
func memberFromRequest(req memberRequest, id string) (models.Member, error) {
	member := models.Member{
		ID:        id,
		ClubID:    req.ClubID,
		FullName:  strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Gender:    models.Gender(req.Gender),
		Skill1:    req.Skill1,
		Skill2:    req.Skill2,
		EloRating: elo.DefaultRating,
	}
	if err := member.Validate(); err != nil {
		return models.Member{}, err
	}
	if member.Phone != "" {
		normalized, err := models.NormalizePhone(member.Phone)
		if err != nil {
			return models.Member{}, err
		}
		member.Phone = normalized
	}
	return member, nil
}

func toModel(row dbgen.Member) models.Member {
	return models.Member{
		ID:        row.ID,
		ClubID:    row.ClubID,
		FullName:  row.FullName,
		Email:     row.Email.String,
		Phone:     row.Phone.String,
		Gender:    models.Gender(row.Gender),
		Skill1:    int(row.Skill1),
		Skill2:    int(row.Skill2),
		EloRating: int(row.EloRating),
		Wins:      int(row.Wins),
		Losses:    int(row.Losses),
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
