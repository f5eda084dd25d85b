package web

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/vrsandeep/freegames/internal/models"
)

// PageData is everything a full page render needs.
type PageData struct {
	Categories     []string
	ActiveCategory string
	Games          []models.GameSummary
	Detail         *models.GameDetail
	OverlayVisible bool
	Busy           bool
}

// PageFromRenderer fills a PageData from what r last painted.
func PageFromRenderer(r *Renderer, categories []string, active string, busy bool) PageData {
	games, detail, visible := r.Snapshot()
	return PageData{
		Categories:     categories,
		ActiveCategory: active,
		Games:          games,
		Detail:         detail,
		OverlayVisible: visible && detail != nil,
		Busy:           busy,
	}
}

// Page renders the full catalog page from data.
func Page(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Free Games</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body>
    <div id="loadingScreen" class="loading`)
		b.WriteString(hiddenClass(!data.Busy))
		b.WriteString(`"><span class="loader"></span></div>
`)
		writeHome(&b, data)
		writeDetails(&b, data)
		b.WriteString(busyScript)
		b.WriteString(`  </body>
</html>
`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeHome(b *strings.Builder, data PageData) {
	b.WriteString(`    <section id="home" class="home`)
	b.WriteString(hiddenClass(data.OverlayVisible))
	b.WriteString(`">
      <nav class="navbar">
        <ul class="navbar-nav">
`)
	for _, category := range data.Categories {
		b.WriteString(`          <li><form method="post" action="/category/`)
		b.WriteString(templ.EscapeString(url.PathEscape(category)))
		b.WriteString(`" data-cat="`)
		b.WriteString(templ.EscapeString(category))
		b.WriteString(`"><button type="submit" class="nav-link`)
		if category == data.ActiveCategory {
			b.WriteString(` active`)
		}
		b.WriteString(`">`)
		b.WriteString(templ.EscapeString(category))
		b.WriteString(`</button></form></li>
`)
	}
	b.WriteString(`        </ul>
      </nav>
      <div class="row">
`)
	for _, game := range data.Games {
		writeCard(b, game)
	}
	b.WriteString(`      </div>
    </section>
`)
}

func writeCard(b *strings.Builder, game models.GameSummary) {
	id := strconv.Itoa(game.ID)
	b.WriteString(`        <form class="card-item" method="post" action="/games/`)
	b.WriteString(id)
	b.WriteString(`" data-id="`)
	b.WriteString(id)
	b.WriteString(`">
          <button type="submit" class="card">
            <img class="card-img-top" src="`)
	b.WriteString(templ.EscapeString(game.Thumbnail))
	b.WriteString(`" alt=""/>
            <div class="card-heading">
              <h3 class="card-title">`)
	b.WriteString(templ.EscapeString(game.Title))
	b.WriteString(`</h3>
              <span class="badge badge-free">Free</span>
            </div>
            <p class="card-text">`)
	b.WriteString(templ.EscapeString(game.ShortDescription))
	b.WriteString(`</p>
            <footer class="card-footer">
              <span class="badge badge-genre">`)
	b.WriteString(templ.EscapeString(game.Genre))
	b.WriteString(`</span>
              <span class="badge badge-platform">`)
	b.WriteString(templ.EscapeString(game.Platform))
	b.WriteString(`</span>
            </footer>
          </button>
        </form>
`)
}

func writeDetails(b *strings.Builder, data PageData) {
	b.WriteString(`    <section class="details`)
	b.WriteString(hiddenClass(!data.OverlayVisible))
	b.WriteString(`">
`)
	if game := data.Detail; game != nil && data.OverlayVisible {
		b.WriteString(`      <header class="details-header">
        <h1>Details Game</h1>
        <form method="post" action="/close"><button type="submit" class="btn-close" id="btnClose" aria-label="Close"></button></form>
      </header>
      <div class="details-content" id="detailsContent" data-id="`)
		b.WriteString(strconv.Itoa(game.ID))
		b.WriteString(`">
        <div class="picture"><img src="`)
		b.WriteString(templ.EscapeString(game.Thumbnail))
		b.WriteString(`" alt=""/></div>
        <div class="content">
          <h4>Title: <span class="detail-title">`)
		b.WriteString(templ.EscapeString(game.Title))
		b.WriteString(`</span></h4>
          <p>Category: <span class="tag detail-genre">`)
		b.WriteString(templ.EscapeString(game.Genre))
		b.WriteString(`</span></p>
          <p>Platform: <span class="tag detail-platform">`)
		b.WriteString(templ.EscapeString(game.Platform))
		b.WriteString(`</span></p>
          <p>Status: <span class="tag detail-status">`)
		b.WriteString(templ.EscapeString(game.Status))
		b.WriteString(`</span></p>
          <p class="detail-description">`)
		b.WriteString(templ.EscapeString(game.Description))
		b.WriteString(`</p>
          <a class="btn-show" href="`)
		b.WriteString(templ.EscapeString(safeURL(game.ProfileURL)))
		b.WriteString(`" target="_blank" rel="noopener">Show Game</a>
        </div>
      </div>
`)
	}
	b.WriteString(`    </section>
`)
}

func hiddenClass(hidden bool) string {
	if hidden {
		return " d-none"
	}
	return ""
}

// safeURL only lets http(s) links through to an href.
func safeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "#"
	}
	return raw
}

const busyScript = `    <script>
      (function () {
        const loading = document.getElementById("loadingScreen");
        const proto = location.protocol === "https:" ? "wss://" : "ws://";
        const ws = new WebSocket(proto + location.host + "/ws/busy");
        ws.onmessage = function (event) {
          const data = JSON.parse(event.data);
          loading.classList.toggle("d-none", !data.busy);
        };
        document.querySelectorAll("form").forEach(function (form) {
          form.addEventListener("submit", function () {
            loading.classList.remove("d-none");
          });
        });
      })();
    </script>
`
