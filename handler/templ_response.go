package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent matches templ.Component.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

type templResponse struct {
	component TemplComponent
	status    int
	options   []datastar.PatchElementOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.component, t.options...)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// Templ renders component as an HTML page, or as an element patch for
// DataStar requests.
func Templ(component TemplComponent, opts ...datastar.PatchElementOption) Response {
	return templResponse{component: component, options: opts}
}

// TemplWithStatus is Templ with an explicit status for plain HTML requests.
func TemplWithStatus(status int, component TemplComponent) Response {
	return templResponse{component: component, status: status}
}

// WithTarget selects the element replaced by a DataStar patch.
func WithTarget(selector string) datastar.PatchElementOption {
	return datastar.WithSelector(selector)
}
