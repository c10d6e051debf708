package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghhtml "github.com/yuin/goldmark/renderer/html"

	"promptlab/internal/contextutil"
	"promptlab/internal/store"
)

// PreviewHandler serves a prompt's content as a rendered HTML page,
// including the template variables it declares.
type PreviewHandler struct {
	store    *store.Store
	parser   goldmark.Markdown
	template *template.Template
}

// previewPageData holds template data for rendered preview pages.
type previewPageData struct {
	Title       string
	Description string
	Variables   []string
	UpdatedAt   string
	Content     template.HTML
}

// NewPreviewHandler creates a new handler for prompt previews.
func NewPreviewHandler(s *store.Store) *PreviewHandler {
	tmpl := template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    :root {
      color-scheme: dark;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 900px;
      line-height: 1.7;
      background: #050b18;
      color: #e4ecff;
    }
    header {
      margin-bottom: 2rem;
      border-bottom: 1px solid rgba(148, 163, 184, 0.2);
      padding-bottom: 1.5rem;
    }
    h1 {
      margin-top: 0;
      color: #fff;
      font-size: 2rem;
    }
    article {
      background: rgba(12, 19, 35, 0.85);
      border: 1px solid rgba(99, 102, 241, 0.2);
      border-radius: 16px;
      padding: 2rem;
    }
    pre {
      background: #0f172a;
      padding: 1rem;
      overflow-x: auto;
      border-radius: 10px;
      border: 1px solid rgba(99, 102, 241, 0.2);
    }
    code {
      font-family: 'SFMono-Regular', Consolas, 'Liberation Mono', Menlo, monospace;
      background: rgba(99, 102, 241, 0.18);
      padding: 2px 5px;
      border-radius: 6px;
      color: #cbd5ff;
    }
    pre code {
      background: transparent;
      padding: 0;
    }
    .meta {
      color: #94a3b8;
      font-size: 0.95rem;
      margin-top: 0.5rem;
    }
    .variable {
      display: inline-block;
      background: rgba(59, 130, 246, 0.18);
      color: #93c5fd;
      border-radius: 6px;
      padding: 1px 8px;
      margin-right: 6px;
      font-size: 0.9rem;
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    {{if .Description}}<p class="meta">{{.Description}}</p>{{end}}
    <p class="meta">Updated: {{.UpdatedAt}}</p>
    {{if .Variables}}<p class="meta">Variables:
      {{range .Variables}}<span class="variable">{{.}}</span>{{end}}
    </p>{{end}}
  </header>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &PreviewHandler{
		store: s,
		parser: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Strikethrough,
				extension.Linkify,
			),
			goldmark.WithRendererOptions(
				ghhtml.WithUnsafe(),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		template: tmpl,
	}
}

// ServeHTTP renders the requested prompt as HTML.
func (h *PreviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	p, err := h.store.GetPrompt(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	htmlContent, err := h.renderMarkdown([]byte(p.Content))
	if err != nil {
		logger.ErrorContext(ctx, "failed to render prompt content", "prompt_id", p.ID, "error", err)
		http.Error(w, "failed to render prompt", http.StatusInternalServerError)
		return
	}

	pageData := previewPageData{
		Title:     p.Title,
		Variables: store.ExtractVariables(p.Content),
		UpdatedAt: p.UpdatedAt.Format("2006-01-02 15:04 UTC"),
		Content:   template.HTML(htmlContent),
	}
	if p.Description != nil {
		pageData.Description = *p.Description
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, pageData); err != nil {
		logger.ErrorContext(ctx, "failed to execute preview template", "prompt_id", p.ID, "error", err)
	}
}

func (h *PreviewHandler) renderMarkdown(content []byte) (string, error) {
	var buf bytes.Buffer
	if err := h.parser.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
