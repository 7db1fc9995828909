package handler

import (
	"net/http"

	"github.com/dmitrymomot/sourcefeed/pkg/cookie"
)

// Cookie is a name/value pair set on the response.
type Cookie struct {
	Name  string
	Value string
}

type cookieResponse struct {
	next    Response
	manager *cookie.Manager
	cookies []Cookie
}

func (c cookieResponse) Render(w http.ResponseWriter, r *http.Request) error {
	for _, ck := range c.cookies {
		c.manager.Set(w, ck.Name, ck.Value)
	}
	return c.next.Render(w, r)
}

// WithCookies sets cookies through m before next renders.
func WithCookies(next Response, m *cookie.Manager, cookies ...Cookie) Response {
	if len(cookies) == 0 {
		return next
	}
	return cookieResponse{next: next, manager: m, cookies: cookies}
}
