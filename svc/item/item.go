package item

import "time"

// Item is a content entry published by exactly one source. Items are
// produced by an external ingestion process and never mutated here.
type Item struct {
	ID          string    `json:"id" bson:"_id"`
	Source      string    `json:"source" bson:"source"`
	Title       string    `json:"title" bson:"title"`
	URL         string    `json:"url" bson:"url"`
	Summary     string    `json:"summary,omitempty" bson:"summary,omitempty"`
	PublishedAt time.Time `json:"published_at" bson:"published_at"`
}
