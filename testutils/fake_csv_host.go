package testutils

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

// FakeCSVHost stands in for the league's published CSV files during tests.
type FakeCSVHost struct {
	s *httptest.Server

	mu    sync.Mutex
	files map[string]string
}

func NewFakeCSVHost() *FakeCSVHost {
	f := &FakeCSVHost{
		files: make(map[string]string),
	}

	r := chi.NewRouter()
	r.Get("/files/{name}", f.fileHandler)
	f.s = httptest.NewServer(r)

	return f
}

func (f *FakeCSVHost) Close() {
	f.s.Close()
}

func (f *FakeCSVHost) URL() string {
	return f.s.URL
}

// FileURL returns the link a client should fetch to get the named file.
func (f *FakeCSVHost) FileURL(name string) string {
	return f.s.URL + "/files/" + name
}

func (f *FakeCSVHost) SetFile(name, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[name] = body
}

func (f *FakeCSVHost) fileHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	f.mu.Lock()
	body, ok := f.files[name]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
