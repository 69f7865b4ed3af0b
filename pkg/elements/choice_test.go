package elements_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-kbs-elements/pkg/elements"
	"github.com/goliatone/go-kbs-elements/pkg/testsupport"
)

func TestCheckbox_CheckedOnlyForOne(t *testing.T) {
	e := elements.New()
	cases := []struct {
		current any
		checked bool
	}{
		{current: 1, checked: true},
		{current: "1", checked: true},
		{current: true, checked: true},
		{current: 0, checked: false},
		{current: nil, checked: false},
		{current: "yes", checked: false},
	}
	for _, tc := range cases {
		out, err := e.Checkbox(elements.CheckboxConfig{Name: "kbs_notify", Current: tc.current})
		if err != nil {
			t.Fatalf("checkbox: %v", err)
		}
		input := testsupport.Filter(testsupport.ParseFragment(t, out), "input")[0]
		if input.Has("checked") != tc.checked {
			t.Fatalf("current %#v: checked=%v, want %v\n%s", tc.current, input.Has("checked"), tc.checked, out)
		}
	}
}

func TestCheckbox_Golden(t *testing.T) {
	out, err := elements.New().Checkbox(elements.CheckboxConfig{
		Name:     "kbs-notify",
		Current:  1,
		Disabled: true,
		Readonly: true,
	})
	if err != nil {
		t.Fatalf("checkbox: %v", err)
	}
	want := `<input type="checkbox" disabled="disabled" name="kbs-notify" id="kbs_notify" class="kbs-checkbox kbs-notify" value="1" checked="checked" />`
	if out != want {
		t.Fatalf("checkbox mismatch\nwant: %s\n got: %s", want, out)
	}
}

func TestCheckbox_ReadonlyWithoutDisabled(t *testing.T) {
	out, err := elements.New().Checkbox(elements.CheckboxConfig{Name: "flag", Readonly: true})
	if err != nil {
		t.Fatalf("checkbox: %v", err)
	}
	if !strings.Contains(out, ` readonly="readonly"`) || strings.Contains(out, "disabled") {
		t.Fatalf("expected readonly only, got %s", out)
	}
}

func TestCheckboxList_Golden(t *testing.T) {
	out, err := elements.New().CheckboxList(elements.CheckboxListConfig{
		Name:    "kbs_agents",
		Options: elements.NewOptions("3", "Ada", "7", "Grace <admin>"),
		Current: elements.Select(7),
	})
	if err != nil {
		t.Fatalf("checkbox list: %v", err)
	}
	want := `<label for="kbs_agents-3">Ada</label>&nbsp;` +
		`<input type="checkbox" name="kbs_agents[]" id="kbs_agents-3" class="kbs-checkbox kbs_agents" value="3" />` +
		`<br />` +
		`<label for="kbs_agents-7">Grace &lt;admin&gt;</label>&nbsp;` +
		`<input type="checkbox" name="kbs_agents[]" id="kbs_agents-7" class="kbs-checkbox kbs_agents" value="7" checked="checked" />`
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("checkbox list mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckboxList_SeparatorsBetweenItemsOnly(t *testing.T) {
	e := elements.New()
	for _, n := range []int{0, 1, 2, 5} {
		options := make(elements.Options, 0, n)
		for i := 0; i < n; i++ {
			key := string(rune('a' + i))
			options = options.Add(key, key)
		}
		out, err := e.CheckboxList(elements.CheckboxListConfig{Name: "l", Options: options})
		if err != nil {
			t.Fatalf("checkbox list: %v", err)
		}
		wantBreaks := n - 1
		if wantBreaks < 0 {
			wantBreaks = 0
		}
		if got := strings.Count(out, "<br />"); got != wantBreaks {
			t.Fatalf("%d items: got %d separators, want %d", n, got, wantBreaks)
		}
		if strings.HasSuffix(out, "<br />") {
			t.Fatalf("%d items: trailing separator in %s", n, out)
		}
		if got := len(testsupport.Filter(testsupport.ParseFragment(t, out), "input")); got != n {
			t.Fatalf("expected %d inputs, got %d", n, got)
		}
	}
}

func TestChoiceGroups_ItemIDsAreUnique(t *testing.T) {
	options := elements.NewOptions("A", "upper", "a", "lower", "a b", "spaced", "ab", "joined", "é", "accent", "1", "one")
	wantIDs := []string{"tags-a", "tags-a-1", "tags-ab", "tags-ab-3", "tags-4", "tags-1"}

	e := elements.New()
	render := map[string]func() (string, error){
		"checkbox list": func() (string, error) {
			return e.CheckboxList(elements.CheckboxListConfig{Name: "tags", Options: options})
		},
		"radio": func() (string, error) {
			return e.Radio(elements.RadioConfig{Name: "tags", Options: options})
		},
	}
	for kind, fn := range render {
		t.Run(kind, func(t *testing.T) {
			out, err := fn()
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			parsed := testsupport.ParseFragment(t, out)

			var ids []string
			for _, input := range testsupport.Filter(parsed, "input") {
				ids = append(ids, input.Attrs["id"])
			}
			if diff := cmp.Diff(wantIDs, ids); diff != "" {
				t.Fatalf("item ids mismatch (-want +got):\n%s", diff)
			}

			var fors []string
			for _, label := range testsupport.Filter(parsed, "label") {
				fors = append(fors, label.Attrs["for"])
			}
			if diff := cmp.Diff(wantIDs, fors); diff != "" {
				t.Fatalf("label targets mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckboxList_LabelAfter(t *testing.T) {
	out, err := elements.New().CheckboxList(elements.CheckboxListConfig{
		Name:     "l",
		LabelPos: elements.LabelAfter,
		Options:  elements.NewOptions("x", "Ex"),
	})
	if err != nil {
		t.Fatalf("checkbox list: %v", err)
	}
	if !strings.HasPrefix(out, "<input") || !strings.HasSuffix(out, `&nbsp;<label for="l-x">Ex</label>`) {
		t.Fatalf("expected label after input, got %s", out)
	}
}

func TestRadio_SharesNameAndChecksCurrent(t *testing.T) {
	out, err := elements.New().Radio(elements.RadioConfig{
		Name:    "kbs_priority",
		Current: 2,
		Options: elements.NewOptions("1", "Low", "2", "Normal", "3", "High"),
	})
	if err != nil {
		t.Fatalf("radio: %v", err)
	}
	inputs := testsupport.Filter(testsupport.ParseFragment(t, out), "input")
	if len(inputs) != 3 {
		t.Fatalf("expected 3 radios, got %d", len(inputs))
	}
	var checked []string
	for i, input := range inputs {
		if input.Attrs["type"] != "radio" || input.Attrs["name"] != "kbs_priority" {
			t.Fatalf("radio %d has unexpected attrs %#v", i, input.Attrs)
		}
		if input.Has("checked") {
			checked = append(checked, input.Attrs["value"])
		}
	}
	if diff := cmp.Diff([]string{"2"}, checked); diff != "" {
		t.Fatalf("checked mismatch (-want +got):\n%s", diff)
	}
	if strings.Count(out, "<br />") != 2 {
		t.Fatalf("expected separators between radios, got %s", out)
	}
}

func TestRadio_NoCurrentChecksNothing(t *testing.T) {
	out, err := elements.New().Radio(elements.RadioConfig{
		Name:    "r",
		Options: elements.NewOptions("", "Blank", "a", "A"),
	})
	if err != nil {
		t.Fatalf("radio: %v", err)
	}
	if strings.Contains(out, "checked") {
		t.Fatalf("expected nothing checked, got %s", out)
	}
}
