// Package feed selects the items shown to a session: every item for the
// default and all-sources feeds, and only the pinned sources for the custom
// feed. Sources are compared as opaque strings.
package feed
