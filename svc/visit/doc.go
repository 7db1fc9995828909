// Package visit implements the per-request state machine that gates feed
// access on the welcomed cookie and resolves the visitor's session.
//
// Cookie values enter as explicit Request fields and leave as Cookie
// instructions on the Decision. Nothing here touches http.Request or
// http.ResponseWriter.
package visit
