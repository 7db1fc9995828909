// Package catalog holds the set of known source tags and generates fixture
// items and source selections from it. Feed resolution never depends on it.
package catalog
