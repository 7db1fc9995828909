// Package binder fills request structs from query parameters, form values,
// cookies and headers using struct tags:
//
//	type feedRequest struct {
//		Sync     *string  `query:"session"`
//		Format   string   `query:"format"`
//		Welcomed *string  `cookie:"welcomed"`
//		Referer  string   `header:"Referer"`
//		Sources  []string `form:"sources"` // repeated or comma separated
//	}
//
// Each binder only touches fields carrying its own tag. Empty values are
// treated as absent.
package binder
