package controls

import (
	"errors"
	"sort"

	"github.com/goliatone/go-kbs-elements/pkg/elements"
)

// ErrUnknownKind reports a control kind the renderer does not know.
var ErrUnknownKind = errors.New("controls: unknown control kind")

// Kind names a control renderer.
type Kind string

const (
	KindSelect            Kind = "select"
	KindCheckbox          Kind = "checkbox"
	KindCheckboxList      Kind = "checkbox_list"
	KindRadio             Kind = "radio"
	KindText              Kind = "text"
	KindDate              Kind = "date"
	KindNumber            Kind = "number"
	KindHidden            Kind = "hidden"
	KindTextarea          Kind = "textarea"
	KindUserSearch        Kind = "user_search"
	KindStatusDropdown    Kind = "status_dropdown"
	KindTicketCategories  Kind = "ticket_categories"
	KindArticleCategories Kind = "article_categories"
	KindYear              Kind = "year"
	KindMonth             Kind = "month"
)

// Kinds lists every supported kind.
func Kinds() []Kind {
	return []Kind{
		KindSelect, KindCheckbox, KindCheckboxList, KindRadio, KindText,
		KindDate, KindNumber, KindHidden, KindTextarea, KindUserSearch,
		KindStatusDropdown, KindTicketCategories, KindArticleCategories,
		KindYear, KindMonth,
	}
}

func (k Kind) valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Store keeps the parsed screens. It is safe for concurrent readers when
// treated as immutable after construction.
type Store struct {
	screens map[string]Screen
}

// Screen is an ordered list of controls with an optional layout template.
type Screen struct {
	ID       string            `json:"-" yaml:"-"`
	Source   string            `json:"-" yaml:"-"`
	Title    string            `json:"title" yaml:"title"`
	Layout   string            `json:"layout,omitempty" yaml:"layout,omitempty"`
	Controls []Control         `json:"controls" yaml:"controls"`
	Hidden   map[string]string `json:"hidden,omitempty" yaml:"hidden,omitempty"`
}

// Control is one entry of a screen. Fields a kind does not use are ignored.
//
// ShowAll and ShowNone follow the select flag rules: absent keeps the
// default, an empty string hides the option and any other value is its
// label.
type Control struct {
	Kind            Kind              `json:"kind" yaml:"kind"`
	Name            string            `json:"name" yaml:"name"`
	ID              string            `json:"id,omitempty" yaml:"id,omitempty"`
	Label           string            `json:"label,omitempty" yaml:"label,omitempty"`
	Description     string            `json:"desc,omitempty" yaml:"desc,omitempty"`
	DescriptionHTML string            `json:"desc_html,omitempty" yaml:"desc_html,omitempty"`
	Class           string            `json:"class,omitempty" yaml:"class,omitempty"`
	Value           any               `json:"value,omitempty" yaml:"value,omitempty"`
	Selected        any               `json:"selected,omitempty" yaml:"selected,omitempty"`
	Options         elements.Options  `json:"options,omitempty" yaml:"options,omitempty"`
	Placeholder     string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Chosen          bool              `json:"chosen,omitempty" yaml:"chosen,omitempty"`
	Multiple        bool              `json:"multiple,omitempty" yaml:"multiple,omitempty"`
	ShowAll         *string           `json:"show_all,omitempty" yaml:"show_all,omitempty"`
	ShowNone        *string           `json:"show_none,omitempty" yaml:"show_none,omitempty"`
	LabelPos        string            `json:"label_pos,omitempty" yaml:"label_pos,omitempty"`
	Disabled        bool              `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Readonly        bool              `json:"readonly,omitempty" yaml:"readonly,omitempty"`
	Autocomplete    string            `json:"autocomplete,omitempty" yaml:"autocomplete,omitempty"`
	Min             *int              `json:"min,omitempty" yaml:"min,omitempty"`
	Max             *int              `json:"max,omitempty" yaml:"max,omitempty"`
	YearsBefore     *int              `json:"years_before,omitempty" yaml:"years_before,omitempty"`
	YearsAfter      int               `json:"years_after,omitempty" yaml:"years_after,omitempty"`
	Data            map[string]string `json:"data,omitempty" yaml:"data,omitempty"`
}

// Screen returns the screen with the given id.
func (s *Store) Screen(id string) (Screen, bool) {
	if s == nil {
		return Screen{}, false
	}
	screen, ok := s.screens[id]
	return screen, ok
}

// IDs lists the screen ids in sorted order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.screens))
	for id := range s.screens {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any screens.
func (s *Store) Empty() bool {
	return s == nil || len(s.screens) == 0
}
