package cookie

import "net/http"

// Config is the attribute set applied to every cookie a Manager writes.
type Config struct {
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN"`
	MaxAge   int           `env:"COOKIE_MAX_AGE" envDefault:"31536000"`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 = Lax
}

func DefaultConfig() Config {
	return Config{
		Path:     "/",
		MaxAge:   DefaultMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Option overrides a single attribute, either for a Manager or for one Set call.
type Option func(*Config)

func WithPath(path string) Option {
	return func(c *Config) { c.Path = path }
}

func WithDomain(domain string) Option {
	return func(c *Config) { c.Domain = domain }
}

// WithMaxAge sets the lifetime in seconds. Zero makes it a browser-session cookie.
func WithMaxAge(seconds int) Option {
	return func(c *Config) { c.MaxAge = seconds }
}

func WithSecure(secure bool) Option {
	return func(c *Config) { c.Secure = secure }
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(c *Config) { c.HttpOnly = httpOnly }
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(c *Config) { c.SameSite = sameSite }
}

func (c Config) with(opts []Option) Config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
