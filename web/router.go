package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"

	"github.com/coach77777/straight-pool-league/controller"
)

func getRouter(ctrl controller.C, render *render.Render, adminUser, adminPass string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))
	r.Get("/standings", standingsHandler(ctrl, render))

	r.Route("/matches", func(r chi.Router) {
		r.Get("/", matchListHandler(ctrl, render))
		r.Get("/{week:\\d+}/{rosterA:\\d+}/{rosterB:\\d+}", matchEditFormHandler(ctrl, render))
		r.Post("/{week:\\d+}/{rosterA:\\d+}/{rosterB:\\d+}", matchUpdateHandler(ctrl, render))
	})

	r.Route("/players", func(r chi.Router) {
		r.Get("/", playerListHandler(ctrl, render))
		r.Get("/{roster:\\d+}", playerHandler(ctrl, render))
	})

	r.Route("/export", func(r chi.Router) {
		r.Get("/matches.csv", exportMatchesHandler(ctrl, render))
		r.Get("/week-grid.csv", exportWeekGridHandler(ctrl, render))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("league", map[string]string{adminUser: adminPass}))
		r.Use(middleware.Timeout(30 * time.Second)) // Set a longer timeout for /admin actions

		r.Get("/", adminHandler(ctrl, render))
		r.Post("/import", importMatchesHandler(ctrl, render))
		r.Post("/import-players", importPlayersHandler(ctrl, render))
		r.Post("/import-url", importFromURLHandler(ctrl, render))
		r.Post("/seed", seedHandler(ctrl, render))
		r.Post("/refresh-remote", refreshRemoteHandler(ctrl, render))
	})

	return r
}
