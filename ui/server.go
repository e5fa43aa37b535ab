package ui

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/arith/arith/compiler"
	"github.com/dhamidi/arith/format"
)

const indexTemplate = `<!DOCTYPE html>
<html>
<head><title>arith</title></head>
<body>
<form method="post" action="/">
  <input type="text" name="source" value="{{.Source}}" size="60" autofocus>
  <button type="submit">Evaluate</button>
</form>
{{if .Lines}}<pre>{{range .Lines}}{{.}}
{{end}}</pre>{{end}}
</body>
</html>
`

// maxSourceBytes bounds the size of a submitted expression.
const maxSourceBytes = 64 << 10

type Server struct {
	templates *template.Template
	mux       *http.ServeMux
	log       commonlog.Logger
}

type evalRequest struct {
	Source string `json:"source"`
}

type indexData struct {
	Source string
	Lines  []string
}

func NewServer() (*Server, error) {
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		templates: tmpl,
		mux:       http.NewServeMux(),
		log:       commonlog.GetLogger("arith.ui"),
	}

	s.mux.HandleFunc("POST /eval", s.handleEval)
	s.mux.HandleFunc("POST /", s.handleIndex)
	s.mux.HandleFunc("GET /", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.log.Errorf("render %s: %v", name, err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var data indexData
	if r.Method == http.MethodPost {
		r.Body = http.MaxBytesReader(w, r.Body, maxSourceBytes)
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data: "+err.Error(), http.StatusBadRequest)
			return
		}
		data.Source = r.FormValue("source")
		for _, line := range compiler.Compile(data.Source).Lines() {
			data.Lines = append(data.Lines, line.Text)
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	s.render(w, "index", data)
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	var req evalRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxSourceBytes)
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data: "+err.Error(), http.StatusBadRequest)
			return
		}
		req.Source = r.FormValue("source")
	}

	report := compiler.Compile(req.Source)
	s.log.Debugf("eval %q: ok=%v", req.Source, report.OK())

	w.Header().Set("Content-Type", "application/json")
	if !report.OK() {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	if err := format.NewJSONEncoder(w).Encode(report); err != nil {
		s.log.Errorf("encode report: %v", err)
	}
}
