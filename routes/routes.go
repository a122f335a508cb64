package routes

import (
	"net/http"

	"github.com/Dosada05/flag-league/handlers"
	"github.com/Dosada05/flag-league/middleware"
	"github.com/Dosada05/flag-league/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/flag-league/docs" // swagger doc
)

// Options carries the cross-cutting pieces the router needs besides the handlers.
type Options struct {
	JWTSecret      []byte
	AllowedOrigins []string
	Metrics        http.Handler
}

func SetupRoutes(
	router chi.Router,
	opts Options,
	authHandler *handlers.AuthHandler,
	standingsHandler *handlers.StandingsHandler,
	scorecardHandler *handlers.ScorecardHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate(opts.JWTSecret)

	router.Get("/swagger/*", httpSwagger.WrapHandler)
	if opts.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	router.Post("/auth/login", authHandler.Login)

	router.Get("/season/standings", standingsHandler.SeasonStandings)

	router.Route("/tournaments/{tournamentID}", func(r chi.Router) {
		// Публичные маршруты: таблица и табло
		r.Get("/standings", standingsHandler.TournamentStandings)
		r.Get("/scoreboard", scorecardHandler.Scoreboard)

		r.With(authenticate).Get("/referee-matches", scorecardHandler.ListRefereeMatches)
	})

	// Судейская карточка: доступ проверяется в обработчике по назначенной команде-судье
	router.Route("/matches/{matchID}", func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/", scorecardHandler.GetMatch)
		r.Post("/coin-toss", scorecardHandler.RecordCoinToss)
		r.Get("/events", scorecardHandler.ListEvents)
		r.Post("/events", scorecardHandler.RecordEvent)
		r.Delete("/events/{eventID}", scorecardHandler.DeleteEvent)
		r.Post("/switch-offense", scorecardHandler.SwitchOffense)
		r.Post("/recompute", scorecardHandler.RecomputeScore)
	})

	router.Route("/admin", func(r chi.Router) {
		r.Use(authenticate)
		r.Use(middleware.Authorize(models.RoleAdmin))

		r.Post("/tournaments/{tournamentID}/standings/publish", standingsHandler.PublishTournamentStandings)
		r.Put("/matches/{matchID}/score", scorecardHandler.UpdateMatchScore)
	})

	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)
}
