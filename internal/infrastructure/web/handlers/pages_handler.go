package handlers

import (
	"bytes"
	"crypto-tracker/internal/application/dto"
	"crypto-tracker/internal/application/services"
	"crypto-tracker/internal/domain/interfaces"
	"crypto-tracker/internal/infrastructure/logging"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
)

//go:embed templates/*.html
var templateFS embed.FS

// detailPage es el modelo de la plantilla de detalle
type detailPage struct {
	Detail *dto.DetailResponse
	Chart  *chartSVG
}

// PagesHandler renderiza las vistas de listado y detalle como HTML
type PagesHandler struct {
	client    interfaces.MarketDataClient
	mapper    *dto.ViewMapper
	config    ViewConfig
	templates *template.Template
}

// NewPagesHandler parsea las plantillas embebidas; falla si alguna es inválida
func NewPagesHandler(client interfaces.MarketDataClient, config ViewConfig) (*PagesHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	return &PagesHandler{
		client:    client,
		mapper:    dto.NewViewMapper(),
		config:    config,
		templates: tmpl,
	}, nil
}

// Listing maneja GET /?q=&sort=
func (h *PagesHandler) Listing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	request := dto.NewListingRequest(r.URL.Query().Get("q"), r.URL.Query().Get("sort"))

	vm := services.NewListingViewModel(h.client)
	vm.SetQuery(request.Query)
	vm.SetSortKey(request.Sort)
	vm.Load(ctx)

	h.render(w, r, http.StatusOK, "listing.html", h.mapper.ToListingResponse(vm.Snapshot()))
}

// Detail maneja GET /coin/{id}
func (h *PagesHandler) Detail(w http.ResponseWriter, r *http.Request) {
	request, err := dto.NewDetailRequest(mux.Vars(r)["id"])
	if err != nil {
		page := detailPage{Detail: &dto.DetailResponse{NotFound: true, Message: "Coin not found"}}
		h.render(w, r, http.StatusNotFound, "detail.html", page)
		return
	}

	vm := services.NewDetailViewModel(h.client,
		services.WithLocation(h.config.location()),
		services.WithChartDays(h.config.chartDays()),
	)
	defer vm.Close()

	snap := vm.Load(r.Context(), request.ID)
	page := detailPage{Detail: h.mapper.ToDetailResponse(snap, h.config.chartDays())}
	if page.Detail.ChartAvailable {
		page.Chart = newChartSVG(page.Detail.Chart)
	}

	status := http.StatusOK
	if snap.NotFound() {
		status = http.StatusNotFound
	}
	h.render(w, r, status, "detail.html", page)
}

// render ejecuta la plantilla en un buffer para poder responder 500 si falla
func (h *PagesHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		logging.ErrorWithError(r.Context(), "Failed to render page", err, logging.Fields{
			"template": name,
		})
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
