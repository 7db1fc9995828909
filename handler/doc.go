// Package handler adapts typed handlers to net/http.
//
// A HandlerFunc receives a Context and a request struct filled by binders,
// and returns a Response. Wrap runs the binders, decorators and error
// handler around it:
//
//	type feedRequest struct {
//		Sync     *string `query:"session"`
//		Welcomed *string `cookie:"welcomed"`
//	}
//
//	func (h *Handlers) items(ctx handler.Context, req feedRequest) handler.Response {
//		...
//		return handler.WithCookies(handler.JSON(items), h.cookies, cookies...)
//	}
//
// Responses cover JSON bodies (goccy/go-json), templ pages, and redirects.
// DataStar requests receive element patches and client-side redirects as
// server-sent events instead.
package handler
