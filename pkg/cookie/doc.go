// Package cookie provides a small HTTP cookie manager used to persist visitor
// state (welcome marker, session identifier, link preference) across requests.
//
// A Manager carries default cookie attributes (path, max-age, SameSite, ...)
// that every Set call inherits and may override with Option values.
//
//	man := cookie.New(cookie.WithSecure(true))
//
//	man.Set(w, "welcomed", "true")
//	if v := man.Value(r, "session"); v != nil {
//	    // cookie present
//	}
//
// Config can be populated from the environment (COOKIE_* variables) and
// passed to NewFromConfig.
package cookie
