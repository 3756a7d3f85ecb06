package api

import (
	"net/http"

	"github.com/dom/league-improvement-tracker/internal/api/handlers"
	custommw "github.com/dom/league-improvement-tracker/internal/api/middleware"
	"github.com/dom/league-improvement-tracker/internal/events"
	"github.com/dom/league-improvement-tracker/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, hub *events.Hub) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(custommw.CORS)

	authHandler := handlers.NewAuthHandler(services.Auth)
	sessionHandler := handlers.NewGameSessionHandler(services.GameSession, hub)
	goalHandler := handlers.NewGoalHandler(services.Goal, hub)
	videoHandler := handlers.NewVideoHandler(services.Video, hub)
	creatorHandler := handlers.NewCreatorHandler(services.Creator, hub)
	poolHandler := handlers.NewChampionPoolHandler(services.ChampionPool, hub)
	eventsHandler := handlers.NewEventsHandler(services.Auth, hub)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/token", authHandler.Token)
	r.Post("/users/", authHandler.Register)

	r.Get("/ws", eventsHandler.Serve)

	r.Group(func(r chi.Router) {
		r.Use(custommw.Auth(services.Auth))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", authHandler.ListUsers)
			r.Get("/me", authHandler.Me)
			r.Put("/me", authHandler.UpdateMe)
		})

		r.Route("/game-sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.Create)
			r.Get("/", sessionHandler.List)
			r.Get("/{id}", sessionHandler.Get)
			r.Put("/{id}", sessionHandler.Update)
			r.Delete("/{id}", sessionHandler.Delete)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Post("/", goalHandler.Create)
			r.Get("/", goalHandler.List)
			r.Get("/{id}", goalHandler.Get)
			r.Put("/{id}", goalHandler.Update)
			r.Patch("/{id}/status", goalHandler.UpdateStatus)
			r.Delete("/{id}", goalHandler.Delete)
		})

		r.Route("/videos", func(r chi.Router) {
			// Fixed segments first so chi does not swallow them as {id}.
			r.Get("/search/", videoHandler.Search)

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", videoHandler.CreateCategory)
				r.Get("/", videoHandler.ListCategories)
				r.Put("/{id}", videoHandler.UpdateCategory)
				r.Delete("/{id}", videoHandler.DeleteCategory)
			})

			r.Get("/kemono/preview", videoHandler.PreviewKemono)
			r.Post("/kemono/import", videoHandler.ImportKemono)

			r.Route("/creators", func(r chi.Router) {
				r.Post("/", creatorHandler.Create)
				r.Get("/", creatorHandler.List)
				r.Get("/{id}", creatorHandler.Get)
				r.Put("/{id}", creatorHandler.Update)
				r.Delete("/{id}", creatorHandler.Delete)
				r.Get("/{id}/videos", creatorHandler.ListVideos)
			})

			r.Post("/", videoHandler.Create)
			r.Get("/", videoHandler.List)
			r.Get("/{id}", videoHandler.Get)
			r.Put("/{id}", videoHandler.Update)
			r.Delete("/{id}", videoHandler.Delete)
			r.Put("/{id}/creator/{creatorID}", videoHandler.SetCreator)
			r.Post("/{id}/progress", videoHandler.SaveProgress)
			r.Get("/{id}/progress", videoHandler.GetProgress)
		})

		r.Route("/champion-pools", func(r chi.Router) {
			r.Get("/champions/all", poolHandler.ListAllChampions)
			r.Get("/champions/category/{category}", poolHandler.ListChampionsByCategory)

			r.Post("/", poolHandler.Create)
			r.Get("/", poolHandler.List)
			r.Get("/{id}", poolHandler.Get)
			r.Put("/{id}", poolHandler.Update)
			r.Delete("/{id}", poolHandler.Delete)
			r.Post("/{id}/champions", poolHandler.AddChampion)
			r.Delete("/{id}/champions/{championID}", poolHandler.RemoveChampion)
		})
	})

	return r
}
