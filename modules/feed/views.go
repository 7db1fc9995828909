package feed

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	feedsvc "github.com/dmitrymomot/sourcefeed/svc/feed"
	"github.com/dmitrymomot/sourcefeed/svc/item"
	"github.com/dmitrymomot/sourcefeed/svc/linkpref"
	"github.com/dmitrymomot/sourcefeed/svc/session"
)

type FeedPageParams struct {
	Mode       feedsvc.Mode
	Items      []item.Item
	Session    *session.Session
	LinkTarget string
}

type WelcomePageParams struct {
	Session *session.Session
	// SyncURL opens the same session on another device.
	SyncURL string
}

type FeedbackPageParams struct{}

// Views renders the HTML pages of the module. Any nil field falls back to
// the built-in page.
type Views struct {
	FeedPage     func(FeedPageParams) templ.Component
	WelcomePage  func(WelcomePageParams) templ.Component
	FeedbackPage func(FeedbackPageParams) templ.Component
}

// DefaultViews returns minimal built-in pages.
func DefaultViews() *Views {
	return &Views{
		FeedPage:     feedPage,
		WelcomePage:  welcomePage,
		FeedbackPage: feedbackPage,
	}
}

func (v *Views) withDefaults() *Views {
	out := DefaultViews()
	if v == nil {
		return out
	}
	if v.FeedPage != nil {
		out.FeedPage = v.FeedPage
	}
	if v.WelcomePage != nil {
		out.WelcomePage = v.WelcomePage
	}
	if v.FeedbackPage != nil {
		out.FeedbackPage = v.FeedbackPage
	}
	return out
}

// page renders body inside the shared layout.
func page(title string, body func(sb *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<!doctype html><html lang="en"><head><meta charset="utf-8"><title>`)
		sb.WriteString(templ.EscapeString(title))
		sb.WriteString(`</title></head><body>`)
		sb.WriteString(`<nav><a href="/items">Feed</a> <a href="/items/all">All</a> <a href="/items/custom">Custom</a> <a href="/feedback">Feedback</a></nav>`)
		body(&sb)
		sb.WriteString(`</body></html>`)
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

func feedPage(p FeedPageParams) templ.Component {
	return page("sourcefeed", func(sb *strings.Builder) {
		target := ""
		if p.LinkTarget == linkpref.NewWindow {
			target = ` target="_blank" rel="noopener"`
		}

		fmt.Fprintf(sb, `<main id="feed" data-mode="%s">`, templ.EscapeString(string(p.Mode)))
		if p.Session != nil {
			fmt.Fprintf(sb, `<p class="session">Session <code>%s</code>`, templ.EscapeString(p.Session.Identifier))
			if p.Session.HasSources() {
				fmt.Fprintf(sb, ` following %s`, templ.EscapeString(strings.Join(p.Session.Sources, ", ")))
			}
			sb.WriteString(`</p>`)
		}
		if len(p.Items) == 0 {
			sb.WriteString(`<p class="empty">Nothing here yet.</p>`)
		} else {
			sb.WriteString(`<ul class="items">`)
			for _, it := range p.Items {
				fmt.Fprintf(sb, `<li data-source="%s"><a href="%s"%s>%s</a> <span class="source">%s</span></li>`,
					templ.EscapeString(it.Source),
					templ.EscapeString(string(templ.URL(it.URL))),
					target,
					templ.EscapeString(it.Title),
					templ.EscapeString(it.Source),
				)
			}
			sb.WriteString(`</ul>`)
		}
		sb.WriteString(`<p><a href="/link-behavior?choice=0">Open links here</a> <a href="/link-behavior?choice=1">Open links in a new tab</a></p>`)
		sb.WriteString(`</main>`)
	})
}

func welcomePage(p WelcomePageParams) templ.Component {
	return page("Welcome to sourcefeed", func(sb *strings.Builder) {
		sb.WriteString(`<main id="welcome"><h1>Welcome</h1>`)
		sb.WriteString(`<p>Your feed is tied to this browser by a session name.</p>`)
		if p.Session != nil {
			fmt.Fprintf(sb, `<p>Your session: <code>%s</code></p>`, templ.EscapeString(p.Session.Identifier))
		}
		if p.SyncURL != "" {
			fmt.Fprintf(sb, `<p>Open <a href="%s">this link</a> on another device to sync it.</p>`,
				templ.EscapeString(string(templ.URL(p.SyncURL))))
		}
		sb.WriteString(`<p><a href="/items">Continue to your feed</a></p></main>`)
	})
}

func feedbackPage(FeedbackPageParams) templ.Component {
	return page("Feedback", func(sb *strings.Builder) {
		sb.WriteString(`<main id="feedback"><h1>Feedback</h1>`)
		sb.WriteString(`<p>Missing a source or found a bug? Let us know.</p></main>`)
	})
}
