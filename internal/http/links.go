package httpapi

import "fmt"

// Link is a hypermedia link descriptor. Purely presentational: clients that
// ignore the links field lose nothing.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// resourceLinks returns the static link set a single-entity response
// carries: self and delete point at the record, contents at the collection.
func resourceLinks(base string, id int64) []Link {
	return []Link{
		{Rel: "self", Href: fmt.Sprintf("%s/%d", base, id)},
		{Rel: "delete", Href: fmt.Sprintf("%s/%d", base, id)},
		{Rel: "contents", Href: base},
	}
}
