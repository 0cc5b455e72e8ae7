// Package mason builds response documents following the Mason hypermedia
// convention: JSON objects with the reserved keys @namespaces, @controls and
// @error advertising the legal next actions on a resource.
package mason

import "encoding/json"

// Control is one entry under @controls: a named action with its target URI,
// HTTP method and, for POST/PUT actions, the request schema.
type Control struct {
	Href           string      `json:"href"`
	Method         string      `json:"method,omitempty"`
	Title          string      `json:"title,omitempty"`
	Encoding       string      `json:"encoding,omitempty"`
	Schema         interface{} `json:"schema,omitempty"`
	IsHrefTemplate bool        `json:"isHrefTemplate,omitempty"`
}

// Document is a Mason document under construction. It owns its mapping; the
// zero value is not usable, use New.
type Document struct {
	data map[string]interface{}
}

// New returns an empty document.
func New() Document {
	return Document{data: make(map[string]interface{})}
}

// Set assigns a plain attribute of the document, e.g. a resource field or the
// items array of a collection.
func (d Document) Set(key string, value interface{}) {
	d.data[key] = value
}

// AddNamespace registers a link relation prefix with the URI documenting it.
func (d Document) AddNamespace(prefix, uri string) {
	ns, ok := d.data["@namespaces"].(map[string]interface{})
	if !ok {
		ns = make(map[string]interface{})
		d.data["@namespaces"] = ns
	}
	ns[prefix] = map[string]string{"name": uri}
}

// AddControl adds a named control to the document.
func (d Document) AddControl(name string, ctrl Control) {
	controls, ok := d.data["@controls"].(map[string]Control)
	if !ok {
		controls = make(map[string]Control)
		d.data["@controls"] = controls
	}
	controls[name] = ctrl
}

// AddError attaches an @error element. Only used on root documents in error
// scenarios. Mason allows several messages; one is enough here.
func (d Document) AddError(title, details string) {
	d.data["@error"] = map[string]interface{}{
		"@message":  title,
		"@messages": []string{details},
	}
}

// MarshalJSON emits the canonical JSON form of the document.
func (d Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.data)
}
