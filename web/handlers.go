package web

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"

	"github.com/coach77777/straight-pool-league/controller"
	"github.com/coach77777/straight-pool-league/db"
	"github.com/coach77777/straight-pool-league/model"
	"github.com/coach77777/straight-pool-league/seed"
)

func rootHandler(_ controller.C, _ *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/standings", http.StatusFound)
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := ctrl.Standings(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		render.HTML(w, http.StatusOK, "standings", rows)
	}
}

func matchListHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var matches []model.Match
		var err error

		// Optional ?roster=N filter narrows to one player's history.
		rosterQuery := r.URL.Query().Get("roster")
		if rosterQuery != "" {
			roster, convErr := strconv.Atoi(rosterQuery)
			if convErr != nil {
				render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing roster id: %v", convErr))
				return
			}
			matches, err = ctrl.MatchesForPlayer(r.Context(), roster)
		} else {
			matches, err = ctrl.ListMatches(r.Context())
		}
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		// Optional ?week=N filter.
		weekQuery := r.URL.Query().Get("week")
		if weekQuery != "" {
			week, convErr := strconv.Atoi(weekQuery)
			if convErr != nil {
				render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing week: %v", convErr))
				return
			}
			filtered := make([]model.Match, 0, len(matches))
			for _, m := range matches {
				if m.Week == week {
					filtered = append(filtered, m)
				}
			}
			matches = filtered
		}

		data := map[string]any{
			"week":    weekQuery,
			"roster":  rosterQuery,
			"matches": matches,
		}
		render.HTML(w, http.StatusOK, "matches", data)
	}
}

func matchEditFormHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, rosterA, rosterB, err := matchURLParams(r)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		m, err := ctrl.GetMatch(r.Context(), week, rosterA, rosterB)
		if err != nil {
			if errors.Is(err, db.ErrMatchNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "match not found")
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		render.HTML(w, http.StatusOK, "editMatch", m)
	}
}

func matchUpdateHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, rosterA, rosterB, err := matchURLParams(r)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		// Load the stored row first so the update targets its exact key
		// orientation, whichever way the import wrote it.
		m, err := ctrl.GetMatch(r.Context(), week, rosterA, rosterB)
		if err != nil {
			if errors.Is(err, db.ErrMatchNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "match not found")
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		m.AScore, err = formScore(r, "a-score")
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
		m.BScore, err = formScore(r, "b-score")
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
		m.Status = strings.TrimSpace(r.PostForm.Get("status"))
		m.Note = strings.TrimSpace(r.PostForm.Get("note"))
		m.CountsForStandings = r.PostForm.Get("counts") != ""

		if err := ctrl.UpdateMatch(r.Context(), m); err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/matches/%d/%d/%d", m.Week, m.ARoster, m.BRoster), http.StatusSeeOther)
	}
}

func playerListHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := ctrl.ListPlayers(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		render.HTML(w, http.StatusOK, "players", players)
	}
}

func playerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roster, err := strconv.Atoi(chi.URLParam(r, "roster"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing roster id: %v", err))
			return
		}

		p, err := ctrl.GetPlayer(r.Context(), roster)
		if err != nil {
			if errors.Is(err, db.ErrPlayerNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "player not found")
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		matches, err := ctrl.MatchesForPlayer(r.Context(), roster)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"player":  p,
			"matches": matches,
		}
		render.HTML(w, http.StatusOK, "player", data)
	}
}

func exportMatchesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := ctrl.ExportMatchesCSV(r.Context())
		if err != nil {
			render.Text(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeCSV(w, render, "matches.csv", out)
	}
}

func exportWeekGridHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := ctrl.ExportWeekGridCSV(r.Context())
		if err != nil {
			render.Text(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeCSV(w, render, "week-grid.csv", out)
	}
}

func adminHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.HTML(w, http.StatusOK, "admin", nil)
	}
}

func importMatchesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, ok := formCSVFile(w, r, render, "matches-file")
		if !ok {
			return
		}
		defer file.Close()

		n, err := ctrl.ImportMatches(r.Context(), file)
		if err != nil {
			if errors.Is(err, controller.ErrNoRowsImported) {
				render.HTML(w, http.StatusBadRequest, "400", err.Error())
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		log.Printf("imported %d matches via upload", n)
		http.Redirect(w, r, "/matches", http.StatusSeeOther)
	}
}

func importPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, ok := formCSVFile(w, r, render, "players-file")
		if !ok {
			return
		}
		defer file.Close()

		n, err := ctrl.ImportPlayers(r.Context(), file)
		if err != nil {
			if errors.Is(err, controller.ErrNoRowsImported) {
				render.HTML(w, http.StatusBadRequest, "400", err.Error())
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		log.Printf("imported %d players via upload", n)
		http.Redirect(w, r, "/players", http.StatusSeeOther)
	}
}

func importFromURLHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		fetchURL := strings.TrimSpace(r.PostForm.Get("url"))
		if fetchURL == "" {
			render.HTML(w, http.StatusBadRequest, "400", "url is required")
			return
		}

		n, err := ctrl.ImportMatchesFromURL(r.Context(), fetchURL)
		if err != nil {
			if errors.Is(err, controller.ErrNoRowsImported) {
				render.HTML(w, http.StatusBadRequest, "400", err.Error())
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		log.Printf("imported %d matches from %s", n, fetchURL)
		http.Redirect(w, r, "/matches", http.StatusSeeOther)
	}
}

func seedHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.EnsureSeeded(r.Context(), seed.Matches()); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error seeding matches: %v", err))
			return
		}
		render.Text(w, http.StatusOK, "seed completed successfully")
	}
}

func refreshRemoteHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.RefreshRemoteCSVs(r.Context()); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error refreshing remote csv files: %v", err))
			return
		}
		render.Text(w, http.StatusOK, "remote csv refresh completed successfully")
	}
}

func matchURLParams(r *http.Request) (week, rosterA, rosterB int, err error) {
	week, err = strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("error parsing week: %w", err)
	}
	rosterA, err = strconv.Atoi(chi.URLParam(r, "rosterA"))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("error parsing roster id: %w", err)
	}
	rosterB, err = strconv.Atoi(chi.URLParam(r, "rosterB"))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("error parsing roster id: %w", err)
	}
	return week, rosterA, rosterB, nil
}

// formScore reads an optional score field. An empty value means the score
// has not been entered yet.
func formScore(r *http.Request, field string) (*int, error) {
	v := strings.TrimSpace(r.PostForm.Get(field))
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", field, err)
	}
	return &n, nil
}

// formCSVFile extracts an uploaded CSV file from a multipart form, writing
// an error response and returning ok=false if anything is wrong with it.
func formCSVFile(w http.ResponseWriter, r *http.Request, render *render.Render, field string) (multipart.File, bool) {
	// Parse the multipart form. 5 << 20 specifies a maximum upload of 5 MB files.
	r.ParseMultipartForm(5 << 20)

	file, handler, err := r.FormFile(field)
	if err != nil {
		render.HTML(w, http.StatusBadRequest, "400", err.Error())
		return nil, false
	}

	if handler.Header.Get("Content-Type") != "text/csv" {
		file.Close()
		msg := fmt.Sprintf("Only CSV files are supported. Got %s", handler.Header.Get("Content-Type"))
		render.HTML(w, http.StatusBadRequest, "400", msg)
		return nil, false
	}

	return file, true
}

// writeCSV sends a CSV payload as a download.
func writeCSV(w http.ResponseWriter, render *render.Render, name string, body []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	render.Data(w, http.StatusOK, body)
}
