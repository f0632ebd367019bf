package models

// Project is one portfolio catalog entry. Ids are dense integers
// assigned by the storage layer (max existing id + 1); they never
// change after creation.
type Project struct {
	ID    int      `json:"id"`
	Title string   `json:"title"`
	Desc  string   `json:"desc"`
	Tech  []string `json:"tech"`
	Links LinkMap  `json:"links"`
}

// SiteConfig is a single key/value pair in the site-wide settings
// store. The resume lives under the "resume_pdf" key as a base64
// (optionally data-URI-prefixed) blob.
type SiteConfig struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
