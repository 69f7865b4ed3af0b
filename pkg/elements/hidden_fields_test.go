package elements_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-kbs-elements/pkg/elements"
)

func TestMergeAndSortHiddenFields(t *testing.T) {
	base := map[string]string{
		" existing ": "keep",
		"":           "ignored",
	}

	merged := elements.MergeHiddenFields(base,
		elements.Nonce("kbs_ticket_nonce", "token123"),
		elements.TicketField("", 42),
		elements.HiddenValue("  ", "skip"),
	)

	wantMerged := map[string]string{
		"existing":         "keep",
		"kbs_ticket_nonce": "token123",
		"ticket_id":        "42",
	}
	if diff := cmp.Diff(wantMerged, merged); diff != "" {
		t.Fatalf("merged hidden fields mismatch (-want +got):\n%s", diff)
	}

	sorted := elements.SortedHiddenFields(merged)
	wantSorted := []elements.HiddenField{
		{Name: "existing", Value: "keep"},
		{Name: "kbs_ticket_nonce", Value: "token123"},
		{Name: "ticket_id", Value: "42"},
	}
	if diff := cmp.Diff(wantSorted, sorted); diff != "" {
		t.Fatalf("sorted hidden fields mismatch (-want +got):\n%s", diff)
	}
}

func TestHiddenFields_Render(t *testing.T) {
	e := elements.New()
	out, err := e.HiddenFields(map[string]string{"b": `"q"`, "a": "1"}, elements.HiddenValue("a", 2))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<input type="hidden" name="a" id="a" value="2" />` +
		`<input type="hidden" name="b" id="b" value="&#34;q&#34;" />`
	if out != want {
		t.Fatalf("unexpected markup:\n got %s\nwant %s", out, want)
	}
}

func TestHiddenFields_Empty(t *testing.T) {
	out, err := elements.New().HiddenFields(nil)
	if err != nil || out != "" {
		t.Fatalf("expected empty output, got %q, %v", out, err)
	}
}
