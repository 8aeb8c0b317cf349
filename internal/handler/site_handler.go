package handler

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tripvista/travel-api/internal/service"
)

// staticPages are always present in the sitemap; category pages are
// appended from the live catalog.
var staticPages = []string{
	"/",
	"/packages",
	"/events",
	"/about",
	"/contact",
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type SiteHandler struct {
	svc     service.CatalogService
	baseURL string
}

func NewSiteHandler(svc service.CatalogService, baseURL string) *SiteHandler {
	return &SiteHandler{svc: svc, baseURL: baseURL}
}

func (h *SiteHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/sitemap.xml", h.Sitemap)
	e.GET("/robots.txt", h.Robots)
}

func (h *SiteHandler) Sitemap(c echo.Context) error {
	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range staticPages {
		set.URLs = append(set.URLs, sitemapURL{Loc: h.baseURL + p})
	}

	categories, err := h.svc.ListCategories(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	for _, cat := range categories {
		set.URLs = append(set.URLs, sitemapURL{Loc: h.baseURL + "/categories/" + cat.Slug})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, "application/xml", append([]byte(xml.Header), out...))
}

func (h *SiteHandler) Robots(c echo.Context) error {
	body := "User-agent: *\n" +
		"Disallow: /api/v1/admin/\n" +
		"Sitemap: " + h.baseURL + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}
