package repo

import (
	"encoding/base64"
	"strings"

	"github.com/AtharvaZ/Portfolio-website/internal/apperr"
	"github.com/AtharvaZ/Portfolio-website/internal/store"
)

// ResumeKey is the site-config key the resume document lives under.
const ResumeKey = "resume_pdf"

// dataURIMarker splits a data URI from its base64 payload, e.g.
// "data:application/pdf;base64,JVBERi0x".
const dataURIMarker = "base64,"

// Config is the site-settings repository, specialized to the resume
// entry.
type Config struct {
	store store.Store
}

func NewConfig(s store.Store) *Config {
	return &Config{store: s}
}

// GetResume returns the stored resume text exactly as uploaded;
// apperr.ErrNotFound when no resume was ever uploaded.
func (r *Config) GetResume() (string, error) {
	return r.store.GetConfig(ResumeKey)
}

// SetResume upserts the resume; an empty value is rejected with
// apperr.ErrValidation.
func (r *Config) SetResume(value string) error {
	if value == "" {
		return apperr.Wrapf(apperr.ErrValidation, "resume data must not be empty")
	}
	return r.store.SetConfig(ResumeKey, value)
}

// ResumePDF decodes the stored resume into raw document bytes. A data
// URI prefix is stripped first. An absent resume stays
// apperr.ErrNotFound; a present but malformed payload is
// apperr.ErrDecode — callers must tell "never uploaded" and "corrupt"
// apart.
func (r *Config) ResumePDF() ([]byte, error) {
	stored, err := r.GetResume()
	if err != nil {
		return nil, err
	}
	payload := stored
	if i := strings.Index(stored, dataURIMarker); i >= 0 {
		payload = stored[i+len(dataURIMarker):]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrDecode, err)
	}
	return raw, nil
}
