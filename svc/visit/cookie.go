package visit

import "strconv"

// Cookie names shared with the HTTP layer.
const (
	CookieWelcomed   = "welcomed"
	CookieSession    = "session"
	CookieLinkTarget = "link_target"
)

// Cookie is an instruction to set a cookie on the response.
type Cookie struct {
	Name  string
	Value string
}

// IsWelcomed reports whether the welcomed cookie value is truthy.
// Absent, empty and unparsable values are falsy.
func IsWelcomed(welcomedCookie *string) bool {
	if welcomedCookie == nil {
		return false
	}
	ok, err := strconv.ParseBool(*welcomedCookie)
	return err == nil && ok
}

func welcomedCookie() Cookie {
	return Cookie{Name: CookieWelcomed, Value: "true"}
}

func sessionCookie(identifier string) Cookie {
	return Cookie{Name: CookieSession, Value: identifier}
}
