package api

import (
	"encoding/json"
	"html/template"
	"net/http"
	"sync"
)

const (
	docsPath     = "/docs"
	openAPIPath  = "/docs/openapi"
	swaggerDist  = "https://unpkg.com/swagger-ui-dist@5"
	docsPageName = "Card Balance API"
)

// RegisterDocsRoutes mounts the interactive API reference. The bare root
// sends browsers to the reference page, which in turn loads the embedded
// OpenAPI document as JSON.
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.Handle("GET /{$}", http.RedirectHandler(docsPath, http.StatusMovedPermanently))
	mux.HandleFunc("GET "+docsPath, serveReferencePage)
	mux.HandleFunc("GET "+openAPIPath, serveOpenAPIDocument)
}

// openAPIJSON is computed once; the embedded document never changes at runtime.
var openAPIJSON = sync.OnceValues(func() ([]byte, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
})

func serveOpenAPIDocument(w http.ResponseWriter, _ *http.Request) {
	body, err := openAPIJSON()
	if err != nil {
		http.Error(w, "openapi document unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body) //nolint:errcheck // client went away
}

type referencePage struct {
	Title   string
	Assets  string
	SpecURL string
}

var referenceTmpl = template.Must(template.New("reference").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.Title}} reference</title>
<link rel="stylesheet" href="{{.Assets}}/swagger-ui.css">
</head>
<body style="margin:0">
<main id="reference"></main>
<script src="{{.Assets}}/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({url: {{.SpecURL}}, dom_id: "#reference", deepLinking: true});
</script>
</body>
</html>
`))

func serveReferencePage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := referencePage{Title: docsPageName, Assets: swaggerDist, SpecURL: openAPIPath}
	if err := referenceTmpl.Execute(w, page); err != nil {
		http.Error(w, "render reference page", http.StatusInternalServerError)
	}
}
