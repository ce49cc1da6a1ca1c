package handler

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mssas/portfolio/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// ShowHome renders the landing page with the markdown intro and CTA buttons.
func (a *API) ShowHome(c *gin.Context) {
	if _, ok := a.trackPageView(c, service.PageHome); !ok {
		return
	}

	var content template.HTML
	title := "Портфолио Матвея Спицына"
	if page, err := a.pages.GetBySlug("home"); err == nil {
		title = page.Title
		if rendered, renderErr := renderMarkdown(page.Content); renderErr == nil {
			content = rendered
		}
	} else {
		c.Error(err)
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"title":   title,
		"page":    service.PageHome,
		"content": content,
		"links":   a.links,
		"year":    time.Now().Year(),
	})
}

// ShowDashboards renders the embedded dashboards page.
func (a *API) ShowDashboards(c *gin.Context) {
	if _, ok := a.trackPageView(c, service.PageDashboards); !ok {
		return
	}

	c.HTML(http.StatusOK, "dashboards.html", gin.H{
		"title":    "Мои дашборды",
		"page":     service.PageDashboards,
		"embedURL": template.URL(a.links.DashboardEmbed),
		"fileURL":  a.links.DashboardFile,
		"year":     time.Now().Year(),
	})
}

// ShowABTests renders the A/B-test write-up from the markdown page.
func (a *API) ShowABTests(c *gin.Context) {
	if _, ok := a.trackPageView(c, service.PageABTests); !ok {
		return
	}

	var content template.HTML
	title := "A/B-тест новой механики оплаты"
	if page, err := a.pages.GetBySlug("ab-test"); err == nil {
		title = page.Title
		if rendered, renderErr := renderMarkdown(page.Content); renderErr == nil {
			content = rendered
		}
	} else {
		c.Error(err)
	}

	c.HTML(http.StatusOK, "abtests.html", gin.H{
		"title":   title,
		"page":    service.PageABTests,
		"content": content,
		"repoURL": a.links.ABTestRepo,
		"year":    time.Now().Year(),
	})
}

// ShowContacts renders the contact list.
func (a *API) ShowContacts(c *gin.Context) {
	if _, ok := a.trackPageView(c, service.PageContacts); !ok {
		return
	}

	contacts, err := a.profiles.ListContacts()
	if err != nil {
		c.Error(err)
		contacts = nil
	}

	c.HTML(http.StatusOK, "contacts.html", gin.H{
		"title":    "Свяжитесь со мной",
		"page":     service.PageContacts,
		"contacts": contacts,
		"year":     time.Now().Year(),
	})
}

func renderMarkdown(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	safe := sanitizer.SanitizeBytes(buf.Bytes())
	return template.HTML(safe), nil
}
