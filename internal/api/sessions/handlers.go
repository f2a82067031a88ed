// internal/api/sessions/handlers.go
package sessions

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/clubkit/clubkit/internal/api/apiutil"
	"github.com/clubkit/clubkit/internal/balance"
	"github.com/clubkit/clubkit/internal/db"
	dbgen "github.com/clubkit/clubkit/internal/db/generated"
	"github.com/clubkit/clubkit/internal/elo"
	"github.com/clubkit/clubkit/internal/matchset"
	"github.com/clubkit/clubkit/internal/models"
	"github.com/clubkit/clubkit/internal/ratelimit"
)

// Team counts outside this range are rejected before the balancer runs.
const (
	minTeamCount = 2
	maxTeamCount = 10
)

var (
	database *db.DB
	limiter  *ratelimit.Limiter
)

// InitHandlers wires the package's database and optional rate limiter. A
// nil limiter disables generation throttling.
func InitHandlers(d *db.DB, l *ratelimit.Limiter) {
	database = d
	limiter = l
}

// HandleSessions serves GET (list by clubId) and POST (create) on
// /api/v1/sessions.
func HandleSessions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		handleList(w, r)
	case http.MethodPost:
		handleCreate(w, r)
	default:
		apiutil.Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// HandleSessionRoutes dispatches /api/v1/sessions/{id} and its
// sub-resources:
//
//	GET    /api/v1/sessions/{id}
//	DELETE /api/v1/sessions/{id}
//	GET    /api/v1/sessions/{id}/attendance
//	POST   /api/v1/sessions/{id}/attendance
//	GET    /api/v1/sessions/{id}/teams
//	POST   /api/v1/sessions/{id}/teams
//	POST   /api/v1/sessions/{id}/teams/swap
//	POST   /api/v1/sessions/{id}/teams/move
//	POST   /api/v1/sessions/{id}/teams/winner
func HandleSessionRoutes(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/v1/sessions/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		apiutil.Error(w, r, http.StatusBadRequest, "invalid session id")
		return
	}
	id := parts[0]

	switch {
	case len(parts) == 1:
		handleDetail(w, r, id)
	case len(parts) == 2 && parts[1] == "attendance":
		handleAttendance(w, r, id)
	case len(parts) == 2 && parts[1] == "teams":
		handleTeams(w, r, id)
	case len(parts) == 3 && parts[1] == "teams" && parts[2] == "swap":
		handleSwap(w, r, id)
	case len(parts) == 3 && parts[1] == "teams" && parts[2] == "move":
		handleMove(w, r, id)
	case len(parts) == 3 && parts[1] == "teams" && parts[2] == "winner":
		handleWinner(w, r, id)
	default:
		apiutil.Error(w, r, http.StatusNotFound, "not found")
	}
}

type sessionRequest struct {
	ClubID   string    `json:"clubId"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
}

func handleList(w http.ResponseWriter, r *http.Request) {
	clubID := r.URL.Query().Get("clubId")
	if clubID == "" {
		apiutil.Error(w, r, http.StatusBadRequest, "clubId query parameter is required")
		return
	}
	rows, err := database.Queries.ListSessionsByClub(r.Context(), clubID)
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to list sessions")
		return
	}
	sessions := make([]models.Session, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, toModel(row))
	}
	apiutil.WriteJSON(w, http.StatusOK, sessions)
}

func handleCreate(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.Error(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	session := models.Session{
		ID:       uuid.New().String(),
		ClubID:   req.ClubID,
		Name:     strings.TrimSpace(req.Name),
		Date:     req.Date,
		Location: strings.TrimSpace(req.Location),
	}
	if err := session.Validate(); err != nil {
		apiutil.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := database.Queries.GetClub(r.Context(), session.ClubID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			apiutil.Error(w, r, http.StatusNotFound, "club not found")
			return
		}
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to load club")
		return
	}

	row, err := database.Queries.CreateSession(r.Context(), dbgen.CreateSessionParams{
		ID:       session.ID,
		ClubID:   session.ClubID,
		Name:     session.Name,
		Date:     session.Date,
		Location: nullString(session.Location),
	})
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to create session")
		return
	}

	log.Ctx(r.Context()).Info().
		Str("session_id", row.ID).
		Str("club_id", row.ClubID).
		Time("date", row.Date).
		Msg("Session created")
	apiutil.WriteJSON(w, http.StatusCreated, toModel(row))
}

func handleDetail(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		row, err := database.Queries.GetSession(r.Context(), id)
		if errors.Is(err, sql.ErrNoRows) {
			apiutil.Error(w, r, http.StatusNotFound, "session not found")
			return
		}
		if err != nil {
			apiutil.Error(w, r, http.StatusInternalServerError, "failed to load session")
			return
		}
		apiutil.WriteJSON(w, http.StatusOK, toModel(row))
	case http.MethodDelete:
		if err := database.Queries.DeleteSession(r.Context(), id); err != nil {
			apiutil.Error(w, r, http.StatusInternalServerError, "failed to delete session")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		apiutil.Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

type attendanceRequest struct {
	MemberID string `json:"memberId"`
	Status   string `json:"status"`
}

type attendanceResponse struct {
	SessionID string `json:"sessionId"`
	MemberID  string `json:"memberId"`
	Status    string `json:"status"`
}

func handleAttendance(w http.ResponseWriter, r *http.Request, sessionID string) {
	switch r.Method {
	case http.MethodGet:
		rows, err := database.Queries.ListAttendanceForSession(r.Context(), sessionID)
		if err != nil {
			apiutil.Error(w, r, http.StatusInternalServerError, "failed to list attendance")
			return
		}
		out := make([]attendanceResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, attendanceResponse{
				SessionID: row.SessionID,
				MemberID:  row.MemberID,
				Status:    row.Status,
			})
		}
		apiutil.WriteJSON(w, http.StatusOK, out)
	case http.MethodPost:
		var req attendanceRequest
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			apiutil.Error(w, r, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.MemberID == "" {
			apiutil.Error(w, r, http.StatusBadRequest, "memberId is required")
			return
		}
		if !models.ValidAttendanceStatus(models.AttendanceStatus(req.Status)) {
			apiutil.Error(w, r, http.StatusBadRequest, "status must be one of present, absent, maybe")
			return
		}
		if _, err := database.Queries.GetSession(r.Context(), sessionID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				apiutil.Error(w, r, http.StatusNotFound, "session not found")
				return
			}
			apiutil.Error(w, r, http.StatusInternalServerError, "failed to load session")
			return
		}
		err := database.Queries.UpsertAttendance(r.Context(), dbgen.UpsertAttendanceParams{
			SessionID: sessionID,
			MemberID:  req.MemberID,
			Status:    req.Status,
		})
		if err != nil {
			apiutil.Error(w, r, http.StatusInternalServerError, "failed to record attendance")
			return
		}
		apiutil.WriteJSON(w, http.StatusOK, attendanceResponse{
			SessionID: sessionID,
			MemberID:  req.MemberID,
			Status:    req.Status,
		})
	default:
		apiutil.Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

type generateRequest struct {
	TeamCount   int    `json:"teamCount"`
	MatchCount  int    `json:"matchCount"`
	BalanceMode string `json:"balanceMode"`
	TeamMode    string `json:"teamMode"`
}

func handleTeams(w http.ResponseWriter, r *http.Request, sessionID string) {
	switch r.Method {
	case http.MethodGet:
		handleGetTeams(w, r, sessionID)
	case http.MethodPost:
		handleGenerateTeams(w, r, sessionID)
	default:
		apiutil.Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleGetTeams returns the persisted match set normalized to the current
// encoding, whichever shape it was stored with.
func handleGetTeams(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := database.Queries.GetSession(r.Context(), sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		apiutil.Error(w, r, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to load session")
		return
	}
	if !session.GeneratedTeams.Valid {
		apiutil.Error(w, r, http.StatusNotFound, "no teams generated for this session")
		return
	}

	set, err := matchset.Normalize(json.RawMessage(session.GeneratedTeams.String))
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).
			Str("session_id", sessionID).
			Msg("Unrecognized generated-teams payload")
		apiutil.Error(w, r, http.StatusUnprocessableEntity, "stored team data is unreadable")
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, set)
}

func handleGenerateTeams(w http.ResponseWriter, r *http.Request, sessionID string) {
	var req generateRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.Error(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TeamCount < minTeamCount || req.TeamCount > maxTeamCount {
		apiutil.Error(w, r, http.StatusBadRequest, "teamCount must be between 2 and 10")
		return
	}
	if req.MatchCount < 1 {
		req.MatchCount = 1
	}
	balanceMode := balance.BalanceMode(req.BalanceMode)
	switch balanceMode {
	case balance.BalanceStrict, balance.BalanceFlexible, balance.BalanceRandom:
	case "":
		balanceMode = balance.BalanceFlexible
	default:
		apiutil.Error(w, r, http.StatusBadRequest, "balanceMode must be one of strict, flexible, random")
		return
	}
	teamMode := matchset.TeamMode(req.TeamMode)
	switch teamMode {
	case matchset.TeamModeMixed, matchset.TeamModeSplit:
	case "":
		teamMode = matchset.TeamModeMixed
	default:
		apiutil.Error(w, r, http.StatusBadRequest, "teamMode must be one of mixed, split")
		return
	}

	if limiter != nil {
		if result := limiter.CheckGenerate(sessionID); !result.Allowed {
			ratelimit.LogRateLimitExceeded("generate", ratelimit.GetClientIP(r, false), result.Reason)
			apiutil.Error(w, r, http.StatusTooManyRequests, "too many generation requests; try again shortly")
			return
		}
	}

	session, err := database.Queries.GetSession(r.Context(), sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		apiutil.Error(w, r, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to load session")
		return
	}

	club, err := database.Queries.GetClub(r.Context(), session.ClubID)
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to load club")
		return
	}
	rankingMode := balance.RankingManual
	if club.UseEloRanking {
		rankingMode = balance.RankingElo
	}

	rows, err := database.Queries.ListPresentMembers(r.Context(), sessionID)
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to list present members")
		return
	}
	players := make([]balance.Player, 0, len(rows))
	for _, row := range rows {
		players = append(players, memberToModel(row).BalancePlayer())
	}

	set, err := matchset.Generate(players, req.TeamCount, req.MatchCount, balanceMode, teamMode, rankingMode, balance.DefaultMaxAttempts, nil)
	if errors.Is(err, balance.ErrInsufficientPlayers) {
		apiutil.Error(w, r, http.StatusUnprocessableEntity, "not enough present players for the requested team count")
		return
	}
	if err != nil {
		apiutil.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := persistMatchSet(r, sessionID, set); err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to save generated teams")
		return
	}
	if limiter != nil {
		limiter.RecordGenerate(sessionID)
	}

	log.Ctx(r.Context()).Info().
		Str("session_id", sessionID).
		Int("team_count", req.TeamCount).
		Int("match_count", len(set.Matches)).
		Str("balance_mode", string(balanceMode)).
		Str("team_mode", string(teamMode)).
		Str("ranking_mode", string(rankingMode)).
		Msg("Teams generated")
	apiutil.WriteJSON(w, http.StatusCreated, set)
}

type swapRequest struct {
	MatchID string           `json:"matchId"`
	A       matchset.SlotRef `json:"a"`
	B       matchset.SlotRef `json:"b"`
}

func handleSwap(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPost {
		apiutil.Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req swapRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.Error(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	mutateMatch(w, r, sessionID, req.MatchID, func(m matchset.Match) (matchset.Match, error) {
		return matchset.Swap(m, req.A, req.B)
	})
}

type moveRequest struct {
	MatchID     string `json:"matchId"`
	FromTeam    int    `json:"fromTeam"`
	PlayerIndex int    `json:"playerIndex"`
	ToTeam      int    `json:"toTeam"`
}

func handleMove(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPost {
		apiutil.Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req moveRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.Error(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	mutateMatch(w, r, sessionID, req.MatchID, func(m matchset.Match) (matchset.Match, error) {
		return matchset.Move(m, req.FromTeam, req.PlayerIndex, req.ToTeam)
	})
}

// mutateMatch loads and normalizes the session's match set, applies fn to
// the referenced match, persists the whole set, and writes it back to the
// client.
func mutateMatch(w http.ResponseWriter, r *http.Request, sessionID, matchID string, fn func(matchset.Match) (matchset.Match, error)) {
	set, ok := loadMatchSet(w, r, sessionID)
	if !ok {
		return
	}

	idx := findMatch(set, matchID)
	if idx < 0 {
		apiutil.Error(w, r, http.StatusNotFound, "match not found")
		return
	}
	if set.Matches[idx].Decided() {
		apiutil.Error(w, r, http.StatusConflict, "match result already declared")
		return
	}

	updated, err := fn(set.Matches[idx])
	if errors.Is(err, matchset.ErrInvalidMatchReference) {
		apiutil.Error(w, r, http.StatusBadRequest, "team or player index out of range")
		return
	}
	if err != nil {
		apiutil.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}
	set.Matches[idx] = updated

	if err := persistMatchSet(r, sessionID, set); err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to save teams")
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, set)
}

type winnerRequest struct {
	MatchID     string `json:"matchId"`
	WinningTeam int    `json:"winningTeam"`
}

// handleWinner declares a match result. Win/loss counters move for every
// player in the match, ratings move when the club uses Elo ranking, and the
// winner index is written into the stored match set, all in one
// transaction. A declared result is final.
func handleWinner(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPost {
		apiutil.Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req winnerRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.Error(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := database.Queries.GetSession(r.Context(), sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		apiutil.Error(w, r, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to load session")
		return
	}
	club, err := database.Queries.GetClub(r.Context(), session.ClubID)
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to load club")
		return
	}

	set, ok := loadMatchSet(w, r, sessionID)
	if !ok {
		return
	}
	idx := findMatch(set, req.MatchID)
	if idx < 0 {
		apiutil.Error(w, r, http.StatusNotFound, "match not found")
		return
	}
	match := set.Matches[idx]
	if match.Decided() {
		apiutil.Error(w, r, http.StatusConflict, "match result already declared")
		return
	}
	if req.WinningTeam < 0 || req.WinningTeam >= len(match.Teams) {
		apiutil.Error(w, r, http.StatusBadRequest, "winningTeam index out of range")
		return
	}

	updates := ratingUpdates(match, req.WinningTeam, club.UseEloRanking)
	set.Matches[idx].Winner = req.WinningTeam

	encoded, err := json.Marshal(set)
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to encode teams")
		return
	}

	err = database.RunInTx(r.Context(), func(tx *db.DB) error {
		for teamIdx, team := range match.Teams {
			won := teamIdx == req.WinningTeam
			for _, player := range team {
				member, err := tx.Queries.GetMember(r.Context(), player.ID)
				if err != nil {
					return err
				}
				wins, losses := member.Wins, member.Losses
				if won {
					wins++
				} else {
					losses++
				}
				rating := member.EloRating
				if newRating, ok := updates[player.ID]; ok {
					rating = int64(newRating)
				}
				if err := tx.Queries.UpdateMemberRecord(r.Context(), dbgen.UpdateMemberRecordParams{
					Wins:      wins,
					Losses:    losses,
					EloRating: rating,
					ID:        member.ID,
				}); err != nil {
					return err
				}
			}
		}
		return tx.Queries.UpdateSessionGeneratedTeams(r.Context(), dbgen.UpdateSessionGeneratedTeamsParams{
			GeneratedTeams: sql.NullString{String: string(encoded), Valid: true},
			ID:             sessionID,
		})
	})
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to record match result")
		return
	}

	log.Ctx(r.Context()).Info().
		Str("session_id", sessionID).
		Str("match_id", req.MatchID).
		Int("winning_team", req.WinningTeam).
		Bool("elo_applied", club.UseEloRanking).
		Msg("Match result declared")
	apiutil.WriteJSON(w, http.StatusOK, set)
}

// ratingUpdates returns the new rating per member id, or an empty map when
// the club does not rank by Elo.
func ratingUpdates(match matchset.Match, winningTeam int, useElo bool) map[string]int {
	out := map[string]int{}
	if !useElo {
		return out
	}
	teams := make([][]elo.Rated, len(match.Teams))
	for i, team := range match.Teams {
		rated := make([]elo.Rated, 0, len(team))
		for _, p := range team {
			rated = append(rated, elo.Rated{ID: p.ID, Rating: p.EloRating})
		}
		teams[i] = rated
	}
	for _, u := range elo.ComputeUpdates(teams, winningTeam) {
		out[u.MemberID] = u.NewRating
	}
	return out
}

// loadMatchSet fetches and normalizes the session's stored teams, writing
// the appropriate error response itself when it cannot.
func loadMatchSet(w http.ResponseWriter, r *http.Request, sessionID string) (matchset.MatchSet, bool) {
	session, err := database.Queries.GetSession(r.Context(), sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		apiutil.Error(w, r, http.StatusNotFound, "session not found")
		return matchset.MatchSet{}, false
	}
	if err != nil {
		apiutil.Error(w, r, http.StatusInternalServerError, "failed to load session")
		return matchset.MatchSet{}, false
	}
	if !session.GeneratedTeams.Valid {
		apiutil.Error(w, r, http.StatusNotFound, "no teams generated for this session")
		return matchset.MatchSet{}, false
	}
	set, err := matchset.Normalize(json.RawMessage(session.GeneratedTeams.String))
	if err != nil {
		apiutil.Error(w, r, http.StatusUnprocessableEntity, "stored team data is unreadable")
		return matchset.MatchSet{}, false
	}
	return set, true
}

func persistMatchSet(r *http.Request, sessionID string, set matchset.MatchSet) error {
	encoded, err := json.Marshal(set)
	if err != nil {
		return err
	}
	return database.Queries.UpdateSessionGeneratedTeams(r.Context(), dbgen.UpdateSessionGeneratedTeamsParams{
		GeneratedTeams: sql.NullString{String: string(encoded), Valid: true},
		ID:             sessionID,
	})
}

func findMatch(set matchset.MatchSet, matchID string) int {
	for i, m := range set.Matches {
		if m.ID == matchID {
			return i
		}
	}
	return -1
}

func toModel(row dbgen.Session) models.Session {
	s := models.Session{
		ID:       row.ID,
		ClubID:   row.ClubID,
		Name:     row.Name,
		Date:     row.Date,
		Location: row.Location.String,
	}
	if row.GeneratedTeams.Valid {
		s.GeneratedTeams = json.RawMessage(row.GeneratedTeams.String)
	}
	return s
}

func memberToModel(row dbgen.Member) models.Member {
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
