package knowledge

import (
	"io"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-agent/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID       string    `yaml:"id"`
	Type     string    `yaml:"type"`
	Title    string    `yaml:"title"`
	Author   []CSLName `yaml:"author,omitempty"`
	Abstract string    `yaml:"abstract,omitempty"`
	Issued   *CSLDate  `yaml:"issued,omitempty"`
	URL      string    `yaml:"URL,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes retrieved entries as a CSL-YAML list to w.
func FormatCSL(rs types.ResultSet, w io.Writer) error {
	items := make([]CSLItem, len(rs.Entries))
	for i, e := range rs.Entries {
		items[i] = toCSLItem(e)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts an Entry to a CSLItem.
func toCSLItem(e types.Entry) CSLItem {
	item := CSLItem{
		ID:       arxivID(e.Link),
		Type:     "article",
		Title:    e.Title,
		Abstract: e.Summary,
		URL:      e.Link,
	}
	if item.ID == "" {
		item.ID = e.Link
	}

	for _, a := range e.Authors {
		item.Author = append(item.Author, parseAuthorName(a))
	}

	if len(e.Published) >= 10 {
		if t, err := time.Parse("2006-01-02", e.Published[:10]); err == nil {
			item.Issued = &CSLDate{
				DateParts: [][]int{{t.Year(), int(t.Month()), t.Day()}},
			}
		}
	}

	return item
}

// parseAuthorName splits a full name string into CSL family/given parts.
// It splits on the last space: everything before is given, the last token
// is family. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
