package handlers

import (
	"net/http"

	"github.com/Dosada05/flag-league/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(ss services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: ss}
}

// TournamentStandings godoc
// @Summary Таблица турнира
// @Tags standings
// @Description Ранжированная таблица по завершённым матчам турнира с учётом тай-брейков.
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {object} map[string]interface{} "Таблица"
// @Failure 400 {object} map[string]string "Неверный ID"
// @Failure 404 {object} map[string]string "Турнир не найден"
// @Router /tournaments/{tournamentID}/standings [get]
func (h *StandingsHandler) TournamentStandings(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	rows, err := h.standingsService.TournamentStandings(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament_id": tournamentID, "standings": rows}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SeasonStandings godoc
// @Summary Таблица сезона
// @Tags standings
// @Description Сумма лучших результатов каждой команды за все турниры сезона.
// @Produce json
// @Success 200 {object} map[string]interface{} "Таблица сезона"
// @Router /season/standings [get]
func (h *StandingsHandler) SeasonStandings(w http.ResponseWriter, r *http.Request) {
	rows, err := h.standingsService.SeasonStandings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": rows}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PublishTournamentStandings godoc
// @Summary Опубликовать таблицу турнира
// @Tags admin
// @Description Загружает JSON-снимок таблицы в хранилище и оповещает зрителей.
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 201 {object} services.PublishedSnapshot
// @Failure 401 {object} map[string]string "Неавторизован"
// @Failure 403 {object} map[string]string "Только администратор"
// @Failure 404 {object} map[string]string "Турнир не найден"
// @Failure 503 {object} map[string]string "Хранилище не настроено"
// @Security BearerAuth
// @Router /admin/tournaments/{tournamentID}/standings/publish [post]
func (h *StandingsHandler) PublishTournamentStandings(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	snapshot, err := h.standingsService.PublishTournamentStandings(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"snapshot": snapshot}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
