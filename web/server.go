package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/unrolled/render"

	"github.com/coach77777/straight-pool-league/controller"
	"github.com/coach77777/straight-pool-league/model"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
}

// NewServer builds the league web server. adminUser/adminPass guard the
// /admin routes with basic auth.
func NewServer(port int, ctrl controller.C, adminUser, adminPass string) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render, adminUser, adminPass)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"score":   model.FormatScore,
				"updated": updatedFormatter,
				"week":    weekFormatter,
			},
		},
	})
}

func updatedFormatter(t time.Time) string {
	if t.IsZero() {
		return "Never"
	}
	return t.Format("2006-01-02 15:04")
}

func weekFormatter(week int) string {
	return fmt.Sprintf("Wk-%d", week)
}
