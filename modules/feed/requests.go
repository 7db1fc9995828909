package feed

import (
	"strings"

	"github.com/dmitrymomot/sourcefeed/svc/visit"
)

// feedRequest is bound from the query, cookies and headers of feed and
// welcome requests.
type feedRequest struct {
	Sync       *string `query:"session"`
	Format     string  `query:"format"`
	Welcomed   *string `cookie:"welcomed"`
	Session    *string `cookie:"session"`
	LinkTarget *string `cookie:"link_target"`
	Accept     string  `header:"Accept"`
}

func (r feedRequest) visit() visit.Request {
	return visit.Request{
		SyncParam:      r.Sync,
		WelcomedCookie: r.Welcomed,
		SessionCookie:  r.Session,
	}
}

func (r feedRequest) wantsJSON() bool {
	return wantsJSON(r.Format, r.Accept)
}

func (r feedRequest) linkTarget() string {
	if r.LinkTarget == nil {
		return ""
	}
	return *r.LinkTarget
}

type linkBehaviorRequest struct {
	Choice   *string `query:"choice"`
	Existing *string `cookie:"link_target"`
	Referer  string  `header:"Referer"`
}

type sourcesRequest struct {
	Sources  []string `form:"sources"`
	Format   string   `query:"format"`
	Welcomed *string  `cookie:"welcomed"`
	Session  *string  `cookie:"session"`
	Accept   string   `header:"Accept"`
}

func wantsJSON(format, accept string) bool {
	if format != "" {
		return strings.EqualFold(format, "json")
	}
	return strings.Contains(accept, "application/json")
}
