package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/verte-zerg/blossom/internal/model"
)

func sampleResult() model.Result {
	return model.Result{
		Query:     model.Query{Petals: "tleb", Center: 'o', Bonus: 't', Limit: 2},
		Total:     5,
		Displayed: 2,
		Outcome:   model.OutcomeSolutions,
		Entries: []model.Entry{
			{Word: "bottle", Score: 23, Panagram: true},
			{Word: "boot", Score: 2, Alternate: &model.Alternate{Letters: "bt", Score: 7}},
		},
	}
}

func TestTextLines(t *testing.T) {
	got := TextLines(sampleResult())
	want := []string{
		"Showing 2/5 solutions:",
		"Word    Points  Alternate  Panagram",
		"bottle" + strings.Repeat(" ", 6) + "23" + strings.Repeat(" ", 13) + "Panagram",
		"boot" + strings.Repeat(" ", 9) + "2" + strings.Repeat(" ", 2) + "BT:7",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected lines (-want +got):\n%s", diff)
	}
}

func TestTextLinesOutcomes(t *testing.T) {
	res := model.Result{Outcome: model.OutcomeNoCandidates}
	if got := TextLines(res); len(got) != 1 || got[0] != "No solutions" {
		t.Fatalf("unexpected no-candidates output: %v", got)
	}
	res = model.Result{Outcome: model.OutcomeNoneDisplayed, Total: 4}
	if got := TextLines(res); len(got) != 1 || got[0] != "No solutions displayed (4 found)" {
		t.Fatalf("unexpected none-displayed output: %v", got)
	}
}

func TestWriteTextWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResult(), FormatText, Options{}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	want := strings.Join(TextLines(sampleResult()), "\n") + "\n"
	if buf.String() != want {
		t.Fatalf("unexpected text output:\n%s", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResult(), FormatJSON, Options{}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if doc.Center != "o" || doc.Bonus != "t" || doc.Outcome != "solutions" || doc.Total != 5 {
		t.Fatalf("unexpected document header: %+v", doc)
	}
	if diff := cmp.Diff(sampleResult().Entries, doc.Entries); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestWriteJSONEmptyEntries(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, model.Result{Outcome: model.OutcomeNoCandidates}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"entries": []`) {
		t.Fatalf("expected empty entries array, got %s", buf.String())
	}
}

func TestWriteMsgpack(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResult(), FormatMsgpack, Options{}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	var doc Document
	if err := msgpack.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode msgpack: %v", err)
	}
	if doc.Displayed != 2 || len(doc.Entries) != 2 || doc.Entries[1].Alternate == nil {
		t.Fatalf("unexpected document: %+v", doc)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, sampleResult(), "yaml", Options{})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if ValidFormat("yaml") || !ValidFormat("JSON") {
		t.Fatalf("unexpected ValidFormat results")
	}
}

func TestShouldUseColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	if ShouldUseColor(&bytes.Buffer{}, false) {
		t.Fatalf("buffers should not get color")
	}
	if !ShouldUseColor(&bytes.Buffer{}, true) {
		t.Fatalf("forced color should win")
	}
	t.Setenv("NO_COLOR", "1")
	if ShouldUseColor(&bytes.Buffer{}, true) {
		t.Fatalf("NO_COLOR should disable color")
	}
}
