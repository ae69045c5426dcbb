package handler

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dental-landing/internal/delivery/dto"
	"dental-landing/internal/service"
	"dental-landing/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// ViewCookie carries the visitor's view id between page requests.
const ViewCookie = "view_id"

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"stars": func(n int) string {
		if n < 0 {
			n = 0
		}
		return strings.Repeat("★", n)
	},
}).ParseFS(templateFS, "templates/page.html"))

type highlight struct {
	Title string
	Text  string
}

var highlights = []highlight{
	{Title: "Experiencia", Text: "Años de experiencia en odontología especializada"},
	{Title: "Tecnología", Text: "Equipos de última generación para mejores resultados"},
	{Title: "Atención Personalizada", Text: "Cada paciente recibe un tratamiento único"},
	{Title: "Horarios Flexibles", Text: "Nos adaptamos a tu disponibilidad"},
}

type pageData struct {
	View       *dto.ViewResponse
	Regions    []dto.RegionSummary
	Highlights []highlight
	Year       int
}

// PageHandler serves the server-rendered landing page. Every form action
// redirects back to the page.
type PageHandler struct {
	landingUsecase usecase.LandingUsecase
	log            *logrus.Logger
}

func NewPageHandler(landingUsecase usecase.LandingUsecase, log *logrus.Logger) *PageHandler {
	return &PageHandler{
		landingUsecase: landingUsecase,
		log:            log,
	}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	view, err := h.currentView(w, r)
	if err != nil {
		h.log.Errorf("Failed to resolve view: %+v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	regions, err := h.landingUsecase.ListRegions(r.Context())
	if err != nil {
		h.log.Errorf("Failed to list regions: %+v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, pageData{
		View:       view,
		Regions:    regions,
		Highlights: highlights,
		Year:       time.Now().Year(),
	}); err != nil {
		h.log.Errorf("Failed to render page: %+v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func (h *PageHandler) SelectRegion(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(viewID uuid.UUID) error {
		_, err := h.landingUsecase.SelectRegion(r.Context(), viewID, r.FormValue("region"))
		return err
	})
}

func (h *PageHandler) Move(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dir, ok := usecase.ParseDirection(vars["direction"])
	if !ok {
		http.NotFound(w, r)
		return
	}

	h.act(w, r, func(viewID uuid.UUID) error {
		var err error
		if vars["carousel"] == "testimonials" {
			_, err = h.landingUsecase.MoveTestimonials(r.Context(), viewID, dir)
		} else {
			_, err = h.landingUsecase.MoveServices(r.Context(), viewID, dir)
		}
		return err
	})
}

func (h *PageHandler) Jump(w http.ResponseWriter, r *http.Request) {
	carousel := mux.Vars(r)["carousel"]
	index, err := strconv.Atoi(r.FormValue("index"))
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.act(w, r, func(viewID uuid.UUID) error {
		var err error
		if carousel == "testimonials" {
			_, err = h.landingUsecase.JumpTestimonial(r.Context(), viewID, index)
		} else {
			_, err = h.landingUsecase.JumpService(r.Context(), viewID, index)
		}
		return err
	})
}

// Book opens the region's WhatsApp link. Without one it does nothing and
// sends the visitor back to the page.
func (h *PageHandler) Book(w http.ResponseWriter, r *http.Request) {
	links, ok := h.links(w, r)
	if !ok {
		return
	}
	if links.WhatsApp == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, links.WhatsApp, http.StatusFound)
}

func (h *PageHandler) Follow(w http.ResponseWriter, r *http.Request) {
	links, ok := h.links(w, r)
	if !ok {
		return
	}
	http.Redirect(w, r, links.Instagram, http.StatusFound)
}

func (h *PageHandler) links(w http.ResponseWriter, r *http.Request) (*dto.LinksResponse, bool) {
	view, err := h.currentView(w, r)
	if err != nil {
		h.log.Errorf("Failed to resolve view: %+v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return nil, false
	}

	links, err := h.landingUsecase.GetLinks(r.Context(), view.ID)
	if err != nil {
		h.log.Errorf("Failed to get links for view %s: %+v", view.ID, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return nil, false
	}
	return links, true
}

// act runs fn against the visitor's view and redirects back to the page.
// Invalid input is ignored; the page simply renders unchanged.
func (h *PageHandler) act(w http.ResponseWriter, r *http.Request, fn func(viewID uuid.UUID) error) {
	view, err := h.currentView(w, r)
	if err != nil {
		h.log.Errorf("Failed to resolve view: %+v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := fn(view.ID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRegion), errors.Is(err, usecase.ErrInvalidIndex):
			h.log.Debugf("Ignoring invalid page action for view %s: %v", view.ID, err)
		default:
			h.log.Errorf("Page action failed for view %s: %+v", view.ID, err)
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// currentView resolves the view named by the cookie, mounting a new one when
// the cookie is missing or stale.
func (h *PageHandler) currentView(w http.ResponseWriter, r *http.Request) (*dto.ViewResponse, error) {
	if cookie, err := r.Cookie(ViewCookie); err == nil {
		if viewID, err := uuid.Parse(cookie.Value); err == nil {
			view, err := h.landingUsecase.GetView(r.Context(), viewID)
			if err == nil {
				return view, nil
			}
			if !errors.Is(err, service.ErrViewNotFound) {
				return nil, err
			}
		}
	}

	view, err := h.landingUsecase.MountView(r.Context(), "")
	if err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ViewCookie,
		Value:    view.ID.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return view, nil
}
