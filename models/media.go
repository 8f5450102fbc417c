package models

// MediaUpload describes a stored object.
type MediaUpload struct {
	Section  string `json:"section"`
	EntityID string `json:"entityId"`
	Path     string `json:"path"`
	URL      string `json:"url"`
}
