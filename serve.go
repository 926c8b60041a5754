package main

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

const maxUploadBytes = 32 << 20

func runServe(config *Config) error {
	printInfo("web form listening on " + config.addr)
	return http.ListenAndServe(config.addr, newRouter(config))
}

func newRouter(config *Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", handleIndex)
	r.Get("/api/languages", handleLanguages)
	r.Post("/api/translate", handleTranslate(config))
	return r
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func handleLanguages(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(supportedLanguages)
}

// handleTranslate accepts a multipart subtitle upload, runs the batch
// translation pass over it and replies with the translated file as a
// download. Credentials come from the server's own configuration, never
// from the form.
func handleTranslate(base *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid upload: "+err.Error())
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "a subtitle file is required")
			return
		}
		defer file.Close()

		cfg := *base
		cfg.targetLang = r.FormValue("target")
		if cfg.targetLang == "" {
			writeJSONError(w, http.StatusBadRequest, "target language is required")
			return
		}
		cfg.sourceLang = r.FormValue("source")
		if cfg.sourceLang == "" {
			cfg.sourceLang = "auto"
		}
		if p := r.FormValue("provider"); p != "" {
			cfg.provider = p
		}
		cfg.dual = r.FormValue("dual") == "on" || r.FormValue("dual") == "true"
		cfg.batchSize = defaultBatchSize
		if v := r.FormValue("batch_size"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				cfg.batchSize = n
			}
		}

		name := filepath.Base(header.Filename)
		ext := strings.ToLower(filepath.Ext(name))
		if !supportedExtensions[ext] {
			writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("unsupported subtitle format %q: supported formats are ASS, SRT, SSA", ext))
			return
		}

		tr, err := newTranslator(&cfg)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}

		workDir := filepath.Join(os.TempDir(), "nea-"+uuid.NewString())
		if err := os.MkdirAll(workDir, 0755); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		defer os.RemoveAll(workDir)

		inputPath := filepath.Join(workDir, name)
		dst, err := os.Create(inputPath)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if _, err := io.Copy(dst, file); err != nil {
			dst.Close()
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		dst.Close()

		doc, err := LoadSubtitleFile(inputPath)
		if err != nil {
			writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		dialogue := doc.Dialogue()
		if len(dialogue) == 0 {
			writeJSONError(w, http.StatusUnprocessableEntity, "no translatable dialogue lines in file")
			return
		}

		log.Printf("[translate] %s: %d dialogue lines, target=%s provider=%s", name, len(dialogue), cfg.targetLang, tr.Name())
		cache := newTranslationCache()
		progress := func(done, total int) {
			log.Printf("[translate] %s: batch %d/%d", name, done, total)
		}
		stats, err := translateEventsBatched(r.Context(), dialogue, doc.LineBreak(), tr, cache, &cfg, progress)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}

		outName := defaultOutputPath(name, cfg.targetLang)
		outPath := filepath.Join(workDir, outName)
		if err := doc.Save(outPath); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}

		log.Printf("[translate] %s: done, %d spans, %d cache hits, %d failed batches",
			name, stats.Spans, stats.CacheHits, stats.FailedBatches)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", outName))
		w.Header().Set("Content-Type", "application/octet-stream")
		http.ServeFile(w, r, outPath)
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>nea — subtitle translator</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; }
label { display: block; margin-top: 1rem; }
</style>
</head>
<body>
<h1>🎬 Subtitle Translator</h1>
<p>Translates ASS/SRT/SSA files while preserving all override tags.</p>
<form action="/api/translate" method="post" enctype="multipart/form-data">
<label>Subtitle file (.ass, .srt, .ssa)
<input type="file" name="file" accept=".ass,.srt,.ssa" required></label>
<label>Target language
<select name="target">{{range .}}<option value="{{.Code}}">{{.Name}}</option>{{end}}</select></label>
<label>Source language
<select name="source"><option value="auto">Auto-detect</option>{{range .}}<option value="{{.Code}}">{{.Name}}</option>{{end}}</select></label>
<label>Provider
<select name="provider"><option value="google">Google (free)</option><option value="openai">OpenAI-compatible API</option></select></label>
<label><input type="checkbox" name="dual"> Dual subtitles (keep original below translation)</label>
<p><button type="submit">🚀 Translate</button></p>
</form>
</body>
</html>
`))

func handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, supportedLanguages); err != nil {
		log.Printf("[index] render: %v", err)
	}
}
