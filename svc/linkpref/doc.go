// Package linkpref stores the visitor's outbound link behaviour in the
// link_target cookie and chooses where to send the visitor afterwards.
package linkpref
