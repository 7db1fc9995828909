package feed

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sourcefeed/handler"
	"github.com/dmitrymomot/sourcefeed/pkg/binder"
	"github.com/dmitrymomot/sourcefeed/pkg/cookie"
	"github.com/dmitrymomot/sourcefeed/pkg/logger"
	feedsvc "github.com/dmitrymomot/sourcefeed/svc/feed"
	"github.com/dmitrymomot/sourcefeed/svc/item"
	"github.com/dmitrymomot/sourcefeed/svc/linkpref"
	"github.com/dmitrymomot/sourcefeed/svc/session"
	"github.com/dmitrymomot/sourcefeed/svc/visit"
)

const (
	WelcomePath = "/welcome"
	CustomPath  = "/items/custom"
)

// Service serves the feed pages and the visitor preference endpoints.
type Service struct {
	sessions     session.Store
	gate         *visit.Gate
	feeds        *feedsvc.Resolver
	links        *linkpref.Store
	cookies      *cookie.Manager
	views        *Views
	metrics      *Metrics
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	resolverOpts []session.ResolverOption
}

type Option func(*Service)

func WithViews(v *Views) Option {
	return func(s *Service) { s.views = v }
}

func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithCookieManager(m *cookie.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.cookies = m
		}
	}
}

func WithLinkPreferences(l *linkpref.Store) Option {
	return func(s *Service) {
		if l != nil {
			s.links = l
		}
	}
}

// WithResolverOptions passes options to the session resolver.
func WithResolverOptions(opts ...session.ResolverOption) Option {
	return func(s *Service) { s.resolverOpts = append(s.resolverOpts, opts...) }
}

func NewService(sessions session.Store, items item.Store, opts ...Option) *Service {
	s := &Service{
		sessions: sessions,
		feeds:    feedsvc.NewResolver(items),
		links:    linkpref.New(),
		cookies:  cookie.New(),
		log:      logger.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.log = s.log.With(logger.Component("feed"))
	s.views = s.views.withDefaults()
	s.errorHandler = handler.NewErrorHandler[handler.Context](s.log)
	resolverOpts := append([]session.ResolverOption{session.WithLogger(s.log)}, s.resolverOpts...)
	s.gate = visit.NewGate(session.NewResolver(sessions, resolverOpts...))
	return s
}

// Handle returns the module router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	feedBinders := handler.WithBinders[handler.Context, feedRequest](binder.Query(), binder.Cookie(), binder.Header())
	feedErrors := handler.WithErrorHandler[handler.Context, feedRequest](s.errorHandler)

	r.Get("/", handler.Wrap(s.feed(feedsvc.Default), feedBinders, feedErrors))
	r.Get("/items", handler.Wrap(s.feed(feedsvc.Default), feedBinders, feedErrors))
	r.Get("/items/all", handler.Wrap(s.feed(feedsvc.All), feedBinders, feedErrors))
	r.Get(CustomPath, handler.Wrap(s.feed(feedsvc.Custom), feedBinders, feedErrors))
	r.Get(WelcomePath, handler.Wrap(s.welcome, feedBinders, feedErrors))

	r.Get("/feedback", handler.Wrap(s.feedback,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.Get("/link-behavior", handler.Wrap(s.linkBehavior,
		handler.WithBinders[handler.Context, linkBehaviorRequest](binder.Query(), binder.Cookie(), binder.Header()),
		handler.WithErrorHandler[handler.Context, linkBehaviorRequest](s.errorHandler),
	))

	r.Post("/session/sources", handler.Wrap(s.updateSources,
		handler.WithBinders[handler.Context, sourcesRequest](binder.Query(), binder.Form(), binder.Cookie(), binder.Header()),
		handler.WithErrorHandler[handler.Context, sourcesRequest](s.errorHandler),
	))

	return r
}

func (s *Service) feed(mode feedsvc.Mode) handler.HandlerFunc[handler.Context, feedRequest] {
	return func(ctx handler.Context, req feedRequest) handler.Response {
		asJSON := req.wantsJSON()

		vr := req.visit()
		vr.AllowAnonymous = asJSON && mode != feedsvc.Custom
		d, err := s.gate.Visit(ctx, vr)
		if err != nil {
			s.metrics.storeError("session")
			return handler.Error(handler.ErrServiceUnavailable.Wrap(err))
		}
		s.metrics.visit(d.State)

		if d.Redirect() {
			return handler.Redirect(WelcomePath)
		}

		items, err := s.feeds.Resolve(ctx, mode, d.Session)
		if err != nil {
			s.metrics.storeError("item")
			return handler.Error(handler.ErrServiceUnavailable.Wrap(err))
		}
		s.metrics.served(string(mode), len(items))

		attrs := []any{logger.FeedMode(string(mode)), logger.Count(len(items)), logger.Outcome(d.State.String())}
		if d.Session != nil {
			attrs = append(attrs, logger.SessionID(d.Session.Identifier))
		}
		s.log.DebugContext(ctx, "feed served", attrs...)

		var resp handler.Response
		if asJSON {
			resp = handler.JSON(items)
		} else {
			resp = handler.Templ(s.views.FeedPage(FeedPageParams{
				Mode:       mode,
				Items:      items,
				Session:    d.Session,
				LinkTarget: req.linkTarget(),
			}))
		}
		return handler.WithCookies(resp, s.cookies, toCookies(d.Cookies)...)
	}
}

func (s *Service) welcome(ctx handler.Context, req feedRequest) handler.Response {
	d, err := s.gate.Welcome(ctx, req.visit())
	if err != nil {
		s.metrics.storeError("session")
		return handler.Error(handler.ErrServiceUnavailable.Wrap(err))
	}
	s.metrics.visit(d.State)

	var resp handler.Response
	if req.wantsJSON() {
		resp = handler.JSON(d.Session)
	} else {
		resp = handler.Templ(s.views.WelcomePage(WelcomePageParams{
			Session: d.Session,
			SyncURL: syncURL(ctx.Request(), d.Session.Identifier),
		}))
	}
	return handler.WithCookies(resp, s.cookies, toCookies(d.Cookies)...)
}

func (s *Service) feedback(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.FeedbackPage(FeedbackPageParams{}))
}

func (s *Service) linkBehavior(ctx handler.Context, req linkBehaviorRequest) handler.Response {
	choice := req.Choice
	if choice == nil && ctx.Request().URL.Query().Has("choice") {
		// The binder treats empty values as absent; an empty choice is still a choice.
		choice = new(string)
	}
	value := s.links.SetChoice(choice, req.Existing)
	s.metrics.linkChoice(choice != nil)

	return handler.WithCookies(
		handler.Redirect(s.links.RedirectTarget(req.Referer)),
		s.cookies,
		handler.Cookie{Name: visit.CookieLinkTarget, Value: value},
	)
}

func (s *Service) updateSources(ctx handler.Context, req sourcesRequest) handler.Response {
	if !visit.IsWelcomed(req.Welcomed) {
		return handler.Redirect(WelcomePath)
	}

	sess, err := s.gate.Current(ctx, visit.Request{WelcomedCookie: req.Welcomed, SessionCookie: req.Session})
	if err != nil {
		s.metrics.storeError("session")
		return handler.Error(handler.ErrServiceUnavailable.Wrap(err))
	}
	if sess == nil {
		return handler.Error(handler.ErrNotFound)
	}

	sess.SetSources(req.Sources)
	if err := s.sessions.Update(ctx, sess); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return handler.Error(handler.ErrNotFound.Wrap(err))
		}
		s.metrics.storeError("session")
		return handler.Error(handler.ErrServiceUnavailable.Wrap(err))
	}
	s.log.DebugContext(ctx, "session sources updated",
		logger.SessionID(sess.Identifier), logger.Count(len(sess.Sources)))

	if wantsJSON(req.Format, req.Accept) {
		return handler.JSON(sess)
	}
	return handler.Redirect(CustomPath)
}

func toCookies(in []visit.Cookie) []handler.Cookie {
	out := make([]handler.Cookie, 0, len(in))
	for _, c := range in {
		out = append(out, handler.Cookie(c))
	}
	return out
}

func syncURL(r *http.Request, identifier string) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     "/items",
		RawQuery: url.Values{"session": {identifier}}.Encode(),
	}
	return u.String()
}
