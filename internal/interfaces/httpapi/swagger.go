package httpapi

import (
	_ "embed"
	"net/http"
	"sync"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPISpec []byte

// openAPIJSON converts the embedded YAML document once, on first request.
var openAPIJSON = sync.OnceValues(func() ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(openAPISpec, &doc); err != nil {
		return nil, crerr.Wrap(err, "parse openapi.yaml")
	}
	out, err := sonic.ConfigStd.Marshal(doc)
	if err != nil {
		return nil, crerr.Wrap(err, "encode openapi json")
	}
	return out, nil
})

func (h *Handler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "OpenAPI")
	defer span.End()

	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	if _, err := w.Write(openAPISpec); err != nil {
		h.logger.WarnContext(ctx, "write openapi spec failed", "error", err)
	}
}

func (h *Handler) OpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "OpenAPIJSON")
	defer span.End()

	doc, err := openAPIJSON()
	if err != nil {
		h.logger.ErrorContext(ctx, "render openapi json failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if _, err := w.Write(doc); err != nil {
		h.logger.WarnContext(ctx, "write openapi json failed", "error", err)
	}
}

func (h *Handler) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	_, span := startHandlerSpan(r, "SwaggerUI")
	defer span.End()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(swaggerPage))
}

const swaggerPage = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Sports Analytics API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.json',
        dom_id: '#swagger-ui',
        deepLinking: true,
        tryItOutEnabled: true,
      });
    </script>
  </body>
</html>`
