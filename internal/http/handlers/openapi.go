package handlers

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
)

//go:embed openapi.json
var apiDocument []byte

var apiReferencePage = template.Must(template.New("reference").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} {{.Version}}</title>
<style>body{margin:0}redoc{display:block;height:100vh}</style>
</head>
<body>
<redoc spec-url="{{.DocumentURL}}"></redoc>
<script src="https://cdn.jsdelivr.net/npm/redoc@2.2.0/bundles/redoc.standalone.js"></script>
</body>
</html>`))

type apiInfo struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

// documentInfo reads the title and version from the embedded document so the
// reference page never drifts from it.
func documentInfo() apiInfo {
	var doc struct {
		Info apiInfo `json:"info"`
	}
	if err := json.Unmarshal(apiDocument, &doc); err != nil || doc.Info.Title == "" {
		return apiInfo{Title: "Campaign Hub Dashboard API"}
	}
	return doc.Info
}

// APIDocument serves the OpenAPI description of the dashboard routes.
func (a *App) APIDocument(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(apiDocument)
}

// APIReference renders the document with Redoc. The document URL is resolved
// next to the page so the router can be mounted under any prefix.
func (a *App) APIReference(w http.ResponseWriter, r *http.Request) {
	info := documentInfo()
	base := r.URL.Path[:strings.LastIndex(r.URL.Path, "/")+1]
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := apiReferencePage.Execute(w, struct {
		Title       string
		Version     string
		DocumentURL string
	}{Title: info.Title, Version: info.Version, DocumentURL: base + "openapi.json"})
	if err != nil {
		a.Logger.Error().Err(err).Msg("render api reference")
	}
}
