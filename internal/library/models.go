package library

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"montage/internal/timeline"
)

// Composition is one stored composition row.
type Composition struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Layers    int       `json:"layers"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot decodes the stored document back into a composition.
func (c *Composition) Snapshot() (*timeline.Snapshot, error) {
	return timeline.Unmarshal([]byte(c.Document))
}

// DeriveName produces a display name from a file path: the extension is
// dropped, separator runs collapse to single spaces, and words are
// title-cased.
func DeriveName(path string) string {
	if path == "" {
		return "Untitled"
	}
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	name := strings.TrimSpace(cleaned.String())
	if name == "" {
		return "Untitled"
	}
	return cases.Title(language.Und).String(name)
}
