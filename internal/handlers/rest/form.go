package rest

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/cividesk/braintree-bridge/internal/services/clienttoken"
)

//go:embed static
var staticFiles embed.FS

// FormHandler serves the hosted direct-debit payment page and its
// tokenization script
type FormHandler struct {
	static http.Handler
	page   *template.Template
	tokens *clienttoken.Service
}

type formPageData struct {
	ClientToken string
	ContactID   string
}

// NewFormHandler creates the hosted form handler
func NewFormHandler(tokens *clienttoken.Service) (*FormHandler, error) {
	page, err := template.ParseFS(staticFiles, "static/ach_form.html")
	if err != nil {
		return nil, err
	}

	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, err
	}

	return &FormHandler{
		static: http.StripPrefix("/pay/static/", http.FileServer(http.FS(sub))),
		page:   page,
		tokens: tokens,
	}, nil
}

// Page handles GET /pay/ach. The client token is issued server-side and
// embedded in the page, so the browser never needs the host API key. The
// host passes the contact id as a query parameter when linking here.
func (h *FormHandler) Page(w http.ResponseWriter, r *http.Request) {
	token := h.tokens.Generate(r.Context())
	if !token.Success {
		http.Error(w, "payment system is unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.page.Execute(w, formPageData{
		ClientToken: token.ClientToken,
		ContactID:   r.URL.Query().Get("contactID"),
	})
}

// Static serves the embedded assets under /pay/static/
func (h *FormHandler) Static(w http.ResponseWriter, r *http.Request) {
	h.static.ServeHTTP(w, r)
}
