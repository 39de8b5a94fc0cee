// Package server implements the web UI behind `mas serve`: a small dashboard
// to browse monthly summaries of an actions report and to upload a new one.
package server

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/xcoulter/actions"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server serves the dashboard. It holds the current dataset; an upload
// replaces it for every later request.
type Server struct {
	http.Server

	currency  string
	templates *template.Template

	mu sync.RWMutex
	ds *actions.Dataset
}

// NewServer configures routes and templates, returning a ready-to-run server
// over the given dataset.
func NewServer(addr string, ds *actions.Dataset, currency string) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		currency: currency,
		ds:       ds,
	}

	t, err := template.New("").Funcs(template.FuncMap{
		"money": func(d decimal.Decimal) string {
			return actions.NewMoney(d, currency).SignedString()
		},
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		log.Println("warning, failed parsing templates:", err)
	}
	s.templates = t

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/upload", s.handleUpload)
	mux.HandleFunc("/healthz", handleHealth)

	return s
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// page is what the index template renders.
type page struct {
	Months      []actions.Month
	Assets      []string
	Inventories []string
	Selection   actions.Selection
	Report      *actions.Report
	Currency    string
	All         string
	Error       string
}

func (s *Server) dataset() *actions.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	ds := s.dataset()
	s.render(w, r, ds, s.selection(r, ds), "")
}

// selection reads the report filters from the query, defaulting to the most
// recent month and no asset or inventory restriction.
func (s *Server) selection(r *http.Request, ds *actions.Dataset) actions.Selection {
	q := r.URL.Query()

	var month actions.Month
	if m, err := actions.ParseMonth(q.Get("month")); err == nil {
		month = m
	} else if months := ds.Months(); len(months) > 0 {
		month = months[len(months)-1]
	}

	sel := actions.NewSelection(month)
	if asset := q.Get("asset"); asset != "" {
		sel.Asset = asset
	}
	if inventory := q.Get("inventory"); inventory != "" {
		sel.Inventory = inventory
	}
	return sel
}

const maxUploadBytes = 32 << 20

// handleUpload replaces the current dataset with an uploaded report file.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, fmt.Sprintf("cannot parse upload: %v", err), http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("report")
	if err != nil {
		http.Error(w, fmt.Sprintf("missing report file: %v", err), http.StatusBadRequest)
		return
	}
	defer file.Close()

	var list []actions.Action
	var schema actions.Schema
	if strings.EqualFold(filepath.Ext(header.Filename), ".json") {
		list, schema, err = actions.DecodeActionsJSON(file, actions.DefaultActionsPath)
	} else {
		list, schema, err = actions.DecodeActions(file)
	}
	if err != nil {
		// A rejected upload keeps the current dataset: show the error on top
		// of the page the user already had.
		ds := s.dataset()
		s.render(w, r, ds, s.selection(r, ds), err.Error())
		return
	}

	ds := actions.Normalize(list, schema, r.FormValue("tz"))
	s.mu.Lock()
	s.ds = ds
	s.mu.Unlock()
	log.Printf("loaded %q: %d actions", header.Filename, len(ds.Records))

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, ds *actions.Dataset, sel actions.Selection, errMsg string) {
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	p := page{
		Months:      ds.Months(),
		Assets:      ds.Assets(),
		Inventories: ds.Inventories(),
		Selection:   sel,
		Currency:    s.currency,
		All:         actions.All,
		Error:       errMsg,
	}
	if !sel.Month.IsZero() {
		p.Report = ds.NewReport(sel)
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", p); err != nil {
		log.Printf("index template execution failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
