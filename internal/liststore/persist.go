package liststore

import (
	"fyne.io/fyne/v2"
)

// Persister stores one JSON document per list key.
type Persister interface {
	Load(key string) (string, error)
	Save(key string, value string) error
}

// PrefsPersister keeps list documents in Fyne preferences, which the toolkit
// writes through to the per-app config file.
type PrefsPersister struct {
	prefs fyne.Preferences
}

// NewPrefsPersister creates a persister backed by the given preferences
func NewPrefsPersister(prefs fyne.Preferences) *PrefsPersister {
	return &PrefsPersister{prefs: prefs}
}

// Load returns the stored document for the key, empty when never saved
func (p *PrefsPersister) Load(key string) (string, error) {
	return p.prefs.String(key), nil
}

// Save writes the document for the key
func (p *PrefsPersister) Save(key string, value string) error {
	p.prefs.SetString(key, value)
	return nil
}
