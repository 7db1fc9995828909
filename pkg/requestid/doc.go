// Package requestid assigns every HTTP request an identifier carried in the
// X-Request-ID header and the request context, and exposes it to the logger.
package requestid
