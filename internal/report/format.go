// Package report renders ranked Blossom results.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/verte-zerg/blossom/internal/model"
)

// Output formats.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Options controls rendering.
type Options struct {
	Color bool
}

// Document is the serialized form of a result.
type Document struct {
	Petals    string        `json:"petals" msgpack:"petals"`
	Center    string        `json:"center" msgpack:"center"`
	Bonus     string        `json:"bonus" msgpack:"bonus"`
	Outcome   string        `json:"outcome" msgpack:"outcome"`
	Total     int           `json:"total" msgpack:"total"`
	Displayed int           `json:"displayed" msgpack:"displayed"`
	Entries   []model.Entry `json:"entries" msgpack:"entries"`
}

// NewDocument converts a result for serialization.
func NewDocument(res model.Result) Document {
	entries := res.Entries
	if entries == nil {
		entries = []model.Entry{}
	}
	return Document{
		Petals:    res.Query.Petals,
		Center:    string(res.Query.Center),
		Bonus:     string(res.Query.Bonus),
		Outcome:   res.Outcome.String(),
		Total:     res.Total,
		Displayed: res.Displayed,
		Entries:   entries,
	}
}

// ValidFormat reports whether name is a supported format.
func ValidFormat(name string) bool {
	switch strings.ToLower(name) {
	case FormatText, FormatJSON, FormatMsgpack:
		return true
	default:
		return false
	}
}

// Write renders res to w in the named format.
func Write(w io.Writer, res model.Result, format string, opts Options) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		return WriteText(w, res, opts)
	case FormatJSON:
		return WriteJSON(w, res)
	case FormatMsgpack:
		return WriteMsgpack(w, res)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteJSON writes res as an indented JSON document.
func WriteJSON(w io.Writer, res model.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(res)); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

// WriteMsgpack writes res as a single msgpack value.
func WriteMsgpack(w io.Writer, res model.Result) error {
	if err := msgpack.NewEncoder(w).Encode(NewDocument(res)); err != nil {
		return fmt.Errorf("failed to encode msgpack: %w", err)
	}
	return nil
}
