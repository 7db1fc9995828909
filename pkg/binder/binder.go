package binder

import (
	"net/http"
	"net/textproto"
)

// Query binds URL query parameters into fields tagged `query:"name"`.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}

// Form binds url-encoded form values, body first then query, into fields
// tagged `form:"name"`.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := r.ParseForm(); err != nil {
			return bindError(ErrFailedToParseForm, err)
		}
		return bindToStruct(v, "form", r.Form, ErrFailedToParseForm)
	}
}

// Cookie binds request cookies into fields tagged `cookie:"name"`.
func Cookie() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values := make(map[string][]string)
		for _, c := range r.Cookies() {
			values[c.Name] = append(values[c.Name], c.Value)
		}
		return bindToStruct(v, "cookie", values, ErrFailedToParseCookie)
	}
}

// Header binds request headers into fields tagged `header:"Name"`.
// Tag names are canonicalized.
func Header() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values := make(map[string][]string, len(r.Header))
		for k, vs := range r.Header {
			values[textproto.CanonicalMIMEHeaderKey(k)] = vs
		}
		return bindToStruct(v, "header", values, ErrFailedToParseHeader, textproto.CanonicalMIMEHeaderKey)
	}
}
