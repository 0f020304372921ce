package rest

import (
	"encoding/json"
	"fmt"
)

type Link struct {
	Href string `json:"href"`
}

type Links map[string]Link

// Resource wraps an entity with HAL-style hypermedia links. Marshalling
// flattens the entity's fields and adds a "_links" member alongside them.
type Resource struct {
	Entity any
	Links  Links
}

// NewResource builds a resource with the conventional self and collection
// links.
func NewResource(entity any, self, collection string) Resource {
	return Resource{
		Entity: entity,
		Links: Links{
			"self":       {Href: self},
			"collection": {Href: collection},
		},
	}
}

func (r Resource) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(r.Entity)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("hal resource entity must be an object: %w", err)
	}

	links, err := json.Marshal(r.Links)
	if err != nil {
		return nil, err
	}
	fields["_links"] = links

	return json.Marshal(fields)
}
