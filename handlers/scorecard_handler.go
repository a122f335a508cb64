package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/flag-league/middleware"
	"github.com/Dosada05/flag-league/models"
	"github.com/Dosada05/flag-league/scoring"
	"github.com/Dosada05/flag-league/services"
)

type ScorecardHandler struct {
	scorecardService services.ScorecardService
}

func NewScorecardHandler(ss services.ScorecardService) *ScorecardHandler {
	return &ScorecardHandler{scorecardService: ss}
}

type recordEventRequest struct {
	EventType string      `json:"event_type"`
	Jersey    looseString `json:"jersey"`
}

type manualScoreRequest struct {
	Team1Score looseString `json:"team1_score"`
	Team2Score looseString `json:"team2_score"`
}

// refereeMatch loads the match named in the URL and checks that the caller's team
// referees it. It writes the error response itself and returns nil on failure.
func (h *ScorecardHandler) refereeMatch(w http.ResponseWriter, r *http.Request) *models.Match {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return nil
	}

	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return nil
	}
	if !actor.CanUseScorecard() {
		mapServiceErrorToHTTP(w, r, services.ErrStaffScorecardForbidden)
		return nil
	}

	match, err := h.scorecardService.GetMatch(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return nil
	}
	if !actor.CanOfficiate(match) {
		mapServiceErrorToHTTP(w, r, services.ErrNotMatchReferee)
		return nil
	}
	return match
}

// respondMatch reports the match together with its scorecard phase (SETUP until the
// coin toss, LIVE afterwards).
func (h *ScorecardHandler) respondMatch(w http.ResponseWriter, r *http.Request, status int, match *models.Match) {
	if err := writeJSON(w, status, jsonResponse{"match": match, "phase": scoring.CurrentPhase(match)}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetMatch godoc
// @Summary Матч для судейской карточки
// @Tags scorecard
// @Produce json
// @Param matchID path int true "Match ID"
// @Success 200 {object} map[string]interface{} "Матч и судейская бригада"
// @Failure 403 {object} map[string]string "Команда не судит этот матч"
// @Failure 404 {object} map[string]string "Матч не найден"
// @Security BearerAuth
// @Router /matches/{matchID} [get]
func (h *ScorecardHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	match := h.refereeMatch(w, r)
	if match == nil {
		return
	}

	officials, err := h.scorecardService.ListOfficials(r.Context(), match.ID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match, "phase": scoring.CurrentPhase(match), "officials": officials}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecordCoinToss godoc
// @Summary Жеребьёвка и судейская бригада
// @Tags scorecard
// @Accept json
// @Produce json
// @Param matchID path int true "Match ID"
// @Param body body services.CoinTossInput true "Результат жеребьёвки и бригада"
// @Success 200 {object} map[string]interface{} "Обновлённый матч"
// @Failure 400 {object} map[string]string "Неверная бригада"
// @Failure 403 {object} map[string]string "Команда не судит этот матч"
// @Security BearerAuth
// @Router /matches/{matchID}/coin-toss [post]
func (h *ScorecardHandler) RecordCoinToss(w http.ResponseWriter, r *http.Request) {
	match := h.refereeMatch(w, r)
	if match == nil {
		return
	}

	var input services.CoinTossInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	updated, err := h.scorecardService.RecordCoinToss(r.Context(), match.ID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.respondMatch(w, r, http.StatusOK, updated)
}

// ListEvents godoc
// @Summary Журнал очков матча
// @Tags scorecard
// @Produce json
// @Param matchID path int true "Match ID"
// @Success 200 {object} map[string]interface{} "События в порядке создания"
// @Security BearerAuth
// @Router /matches/{matchID}/events [get]
func (h *ScorecardHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	match := h.refereeMatch(w, r)
	if match == nil {
		return
	}

	events, err := h.scorecardService.ListEvents(r.Context(), match.ID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"events": events}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecordEvent godoc
// @Summary Записать очки
// @Tags scorecard
// @Description Типы: TD, PAT1, PAT2, SAFETY. Номер игрока можно передать строкой или числом.
// @Accept json
// @Produce json
// @Param matchID path int true "Match ID"
// @Param body body recordEventRequest true "Событие"
// @Success 201 {object} map[string]interface{} "Событие и пересчитанный матч"
// @Failure 400 {object} map[string]string "Неизвестный тип события"
// @Failure 403 {object} map[string]string "Команда не судит этот матч"
// @Security BearerAuth
// @Router /matches/{matchID}/events [post]
func (h *ScorecardHandler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	match := h.refereeMatch(w, r)
	if match == nil {
		return
	}

	var input recordEventRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.EventType == "" {
		badRequestResponse(w, r, errors.New("event_type is required"))
		return
	}

	event, updated, err := h.scorecardService.RecordEvent(r.Context(), match.ID, input.EventType, string(input.Jersey))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"event": event, "match": updated, "phase": scoring.CurrentPhase(updated)}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteEvent godoc
// @Summary Удалить событие
// @Tags scorecard
// @Produce json
// @Param matchID path int true "Match ID"
// @Param eventID path int true "Score event ID"
// @Success 200 {object} map[string]interface{} "Пересчитанный матч"
// @Failure 404 {object} map[string]string "Событие не найдено"
// @Security BearerAuth
// @Router /matches/{matchID}/events/{eventID} [delete]
func (h *ScorecardHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	match := h.refereeMatch(w, r)
	if match == nil {
		return
	}

	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	updated, err := h.scorecardService.DeleteEvent(r.Context(), match.ID, eventID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.respondMatch(w, r, http.StatusOK, updated)
}

// SwitchOffense godoc
// @Summary Смена владения
// @Tags scorecard
// @Produce json
// @Param matchID path int true "Match ID"
// @Success 200 {object} map[string]interface{} "Обновлённый матч"
// @Security BearerAuth
// @Router /matches/{matchID}/switch-offense [post]
func (h *ScorecardHandler) SwitchOffense(w http.ResponseWriter, r *http.Request) {
	match := h.refereeMatch(w, r)
	if match == nil {
		return
	}

	updated, err := h.scorecardService.SwitchOffense(r.Context(), match.ID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.respondMatch(w, r, http.StatusOK, updated)
}

// RecomputeScore godoc
// @Summary Пересчитать счёт по журналу
// @Tags scorecard
// @Produce json
// @Param matchID path int true "Match ID"
// @Success 200 {object} map[string]interface{} "Обновлённый матч"
// @Security BearerAuth
// @Router /matches/{matchID}/recompute [post]
func (h *ScorecardHandler) RecomputeScore(w http.ResponseWriter, r *http.Request) {
	match := h.refereeMatch(w, r)
	if match == nil {
		return
	}

	updated, err := h.scorecardService.RecomputeScore(r.Context(), match.ID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.respondMatch(w, r, http.StatusOK, updated)
}

// ListRefereeMatches godoc
// @Summary Матчи, которые судит команда
// @Tags scorecard
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {object} map[string]interface{} "Матчи"
// @Failure 403 {object} map[string]string "Только для команд"
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/referee-matches [get]
func (h *ScorecardHandler) ListRefereeMatches(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}
	if !actor.CanUseScorecard() {
		mapServiceErrorToHTTP(w, r, services.ErrStaffScorecardForbidden)
		return
	}

	matches, err := h.scorecardService.ListRefereeMatches(r.Context(), tournamentID, *actor.TeamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Scoreboard godoc
// @Summary Табло турнира
// @Tags scoreboard
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {object} models.Scoreboard
// @Failure 404 {object} map[string]string "Турнир не найден"
// @Router /tournaments/{tournamentID}/scoreboard [get]
func (h *ScorecardHandler) Scoreboard(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	board, err := h.scorecardService.Scoreboard(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, board, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateMatchScore godoc
// @Summary Ручная правка счёта (админ)
// @Tags admin
// @Description Пустое значение снимает счёт. Некорректное или отрицательное значение считается отсутствующим.
// @Accept json
// @Produce json
// @Param matchID path int true "Match ID"
// @Param body body manualScoreRequest true "Счёт"
// @Success 200 {object} map[string]interface{} "Обновлённый матч"
// @Failure 403 {object} map[string]string "Только администратор"
// @Failure 404 {object} map[string]string "Матч не найден"
// @Security BearerAuth
// @Router /admin/matches/{matchID}/score [put]
func (h *ScorecardHandler) UpdateMatchScore(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}
	if !actor.CanAdminister() {
		mapServiceErrorToHTTP(w, r, services.ErrForbiddenOperation)
		return
	}

	var input manualScoreRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	updated, err := h.scorecardService.UpdateMatchScore(r.Context(), matchID, string(input.Team1Score), string(input.Team2Score))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.respondMatch(w, r, http.StatusOK, updated)
}
