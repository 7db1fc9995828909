// Package feed is the HTTP module serving session-scoped feeds.
//
// Routes:
//
//	GET  /, /items          default feed
//	GET  /items/all         all-sources feed
//	GET  /items/custom      feed filtered to the session's sources
//	GET  /welcome           welcome step, sets welcomed and session cookies
//	GET  /feedback          static feedback page
//	GET  /link-behavior     stores link_target and redirects back
//	POST /session/sources   replaces the session's sources
//
// Feed routes answer with HTML, or with a bare JSON array of items when
// format=json is given or the client accepts application/json.
//
//	svc := feed.NewService(sessionStore, itemStore,
//		feed.WithLogger(log),
//		feed.WithMetrics(feed.NewMetrics(prometheus.DefaultRegisterer)),
//	)
//	r.Mount("/", svc.Handle())
package feed
