package elements

// Label positions for checkbox lists and radio groups.
const (
	LabelBefore = "before"
	LabelAfter  = "after"
)

// Sentinel option values injected ahead of the real options.
const (
	OptionAllValue    = "all"
	OptionAllSentinel = "0"
	OptionNoneValue   = "-1"
)

// Base class tokens the client-side scripts attach to.
const (
	ClassSelect         = "kbs-select"
	ClassSelectChosen   = "kbs-select-chosen"
	ClassLabel          = "kbs-label"
	ClassDescription    = "kbs-description"
	ClassDatepicker     = "kbs_datepicker"
	ClassUserSearch     = "kbs-ajax-user-search"
	ClassUserSearchWrap = "kbs_user_search_wrap"
)

// SelectConfig describes a <select> control.
type SelectConfig struct {
	Name        string
	ID          string
	Class       string
	Options     Options
	Selected    Selection
	Chosen      bool
	Placeholder string
	Multiple    bool
	ShowAll     Flag
	ShowNone    Flag
	Data        Data
}

// CheckboxConfig describes a single checkbox. It is checked when Current
// compares equal to "1".
type CheckboxConfig struct {
	Name     string
	ID       string
	Class    string
	Current  any
	Disabled bool
	Readonly bool
	Data     Data
}

// CheckboxListConfig describes a group of checkboxes submitted as name[].
type CheckboxListConfig struct {
	Name     string
	ID       string
	Class    string
	LabelPos string
	Options  Options
	Current  Selection
	Disabled bool
}

// RadioConfig describes a radio group sharing one name.
type RadioConfig struct {
	Name     string
	ID       string
	Class    string
	LabelPos string
	Options  Options
	Current  any
	Disabled bool
}

// TextConfig describes a text input with optional label and description.
// DescriptionHTML, when set, replaces Description and is sanitised to a small
// inline subset instead of being escaped.
type TextConfig struct {
	Name            string
	ID              string
	Value           string
	Label           string
	Description     string
	DescriptionHTML string
	Placeholder     string
	Class           string
	Disabled        bool
	Autocomplete    string
	Data            Data
}

// NumberConfig describes a number input. Min and Max are optional.
type NumberConfig struct {
	Name            string
	ID              string
	Value           string
	Label           string
	Description     string
	DescriptionHTML string
	Placeholder     string
	Class           string
	Min             *int
	Max             *int
	Disabled        bool
	Autocomplete    string
	Data            Data
}

// HiddenConfig describes a hidden input.
type HiddenConfig struct {
	Name  string
	ID    string
	Value string
}

// TextareaConfig describes a textarea with optional label and description.
type TextareaConfig struct {
	Name            string
	ID              string
	Value           string
	Label           string
	Description     string
	DescriptionHTML string
	Placeholder     string
	Class           string
	Disabled        bool
}

// UserSearchConfig describes the ajax user search composite field.
type UserSearchConfig struct {
	Name         string
	ID           string
	Value        string
	Label        string
	Description  string
	Placeholder  string
	Class        string
	Disabled     bool
	Autocomplete string
	Data         Data
}

// Int returns a pointer to v, for optional numeric settings.
func Int(v int) *int { return &v }

// Default configurations. Their static labels are source-language strings and
// are translated when rendered.
var (
	DefaultSelectConfig = SelectConfig{
		Selected: Select(0),
		ShowAll:  ShowAs("All"),
		ShowNone: ShowAs("None"),
	}
	DefaultCheckboxConfig = CheckboxConfig{
		Class: "kbs-checkbox",
	}
	DefaultCheckboxListConfig = CheckboxListConfig{
		Class:    "kbs-checkbox",
		LabelPos: LabelBefore,
	}
	DefaultRadioConfig = RadioConfig{
		Class:    "kbs-radio",
		LabelPos: LabelBefore,
	}
	DefaultTextConfig = TextConfig{
		Name:  "text",
		Class: "regular-text",
	}
	DefaultNumberConfig = NumberConfig{
		Name:  "text",
		Class: "small-text",
	}
	DefaultHiddenConfig = HiddenConfig{
		Name: "hidden",
	}
	DefaultTextareaConfig = TextareaConfig{
		Name:  "textarea",
		Class: "large-text",
	}
	DefaultUserSearchConfig = UserSearchConfig{
		Name:         "user_id",
		Placeholder:  "Enter username",
		Autocomplete: "off",
	}
)

// The merge helpers take configs by value, so the caller's struct is never
// touched. Zero-valued fields pick up the default; slices are cloned.

func mergeSelect(cfg, def SelectConfig) SelectConfig {
	cfg.Name = pick(cfg.Name, def.Name)
	cfg.ID = pick(cfg.ID, def.ID)
	cfg.Class = pick(cfg.Class, def.Class)
	cfg.Placeholder = pick(cfg.Placeholder, def.Placeholder)
	if cfg.Options == nil {
		cfg.Options = def.Options
	}
	cfg.Options = append(Options(nil), cfg.Options...)
	cfg.Chosen = cfg.Chosen || def.Chosen
	cfg.Multiple = cfg.Multiple || def.Multiple
	// The "0" default only applies to single selects; a multi-select without a
	// selection selects nothing.
	if !cfg.Selected.IsSet() && !cfg.Multiple {
		cfg.Selected = def.Selected
	}
	if !cfg.ShowAll.IsSet() {
		cfg.ShowAll = def.ShowAll
	}
	if !cfg.ShowNone.IsSet() {
		cfg.ShowNone = def.ShowNone
	}
	cfg.Data = mergeData(cfg.Data, def.Data)
	return cfg
}

func mergeCheckbox(cfg, def CheckboxConfig) CheckboxConfig {
	cfg.Name = pick(cfg.Name, def.Name)
	cfg.ID = pick(cfg.ID, def.ID)
	cfg.Class = pick(cfg.Class, def.Class)
	if cfg.Current == nil {
		cfg.Current = def.Current
	}
	cfg.Disabled = cfg.Disabled || def.Disabled
	cfg.Readonly = cfg.Readonly || def.Readonly
	cfg.Data = mergeData(cfg.Data, def.Data)
	return cfg
}

func mergeCheckboxList(cfg, def CheckboxListConfig) CheckboxListConfig {
	cfg.Name = pick(cfg.Name, def.Name)
	cfg.ID = pick(cfg.ID, def.ID)
	cfg.Class = pick(cfg.Class, def.Class)
	cfg.LabelPos = pick(cfg.LabelPos, def.LabelPos)
	if cfg.Options == nil {
		cfg.Options = def.Options
	}
	cfg.Options = append(Options(nil), cfg.Options...)
	if !cfg.Current.IsSet() {
		cfg.Current = def.Current
	}
	cfg.Disabled = cfg.Disabled || def.Disabled
	return cfg
}

func mergeRadio(cfg, def RadioConfig) RadioConfig {
	cfg.Name = pick(cfg.Name, def.Name)
	cfg.ID = pick(cfg.ID, def.ID)
	cfg.Class = pick(cfg.Class, def.Class)
	cfg.LabelPos = pick(cfg.LabelPos, def.LabelPos)
	if cfg.Options == nil {
		cfg.Options = def.Options
	}
	cfg.Options = append(Options(nil), cfg.Options...)
	if cfg.Current == nil {
		cfg.Current = def.Current
	}
	cfg.Disabled = cfg.Disabled || def.Disabled
	return cfg
}

func mergeText(cfg, def TextConfig) TextConfig {
	cfg.Name = pick(cfg.Name, def.Name)
	cfg.ID = pick(cfg.ID, def.ID)
	cfg.Value = pick(cfg.Value, def.Value)
	cfg.Label = pick(cfg.Label, def.Label)
	cfg.Description = pick(cfg.Description, def.Description)
	cfg.DescriptionHTML = pick(cfg.DescriptionHTML, def.DescriptionHTML)
	cfg.Placeholder = pick(cfg.Placeholder, def.Placeholder)
	cfg.Class = pick(cfg.Class, def.Class)
	cfg.Autocomplete = pick(cfg.Autocomplete, def.Autocomplete)
	cfg.Disabled = cfg.Disabled || def.Disabled
	cfg.Data = mergeData(cfg.Data, def.Data)
	return cfg
}

func mergeNumber(cfg, def NumberConfig) NumberConfig {
	cfg.Name = pick(cfg.Name, def.Name)
	cfg.ID = pick(cfg.ID, def.ID)
	cfg.Value = pick(cfg.Value, def.Value)
	cfg.Label = pick(cfg.Label, def.Label)
	cfg.Description = pick(cfg.Description, def.Description)
	cfg.DescriptionHTML = pick(cfg.DescriptionHTML, def.DescriptionHTML)
	cfg.Placeholder = pick(cfg.Placeholder, def.Placeholder)
	cfg.Class = pick(cfg.Class, def.Class)
	cfg.Autocomplete = pick(cfg.Autocomplete, def.Autocomplete)
	if cfg.Min == nil {
		cfg.Min = def.Min
	}
	if cfg.Max == nil {
		cfg.Max = def.Max
	}
	cfg.Disabled = cfg.Disabled || def.Disabled
	cfg.Data = mergeData(cfg.Data, def.Data)
	return cfg
}

func mergeHidden(cfg, def HiddenConfig) HiddenConfig {
	cfg.Name = pick(cfg.Name, def.Name)
	cfg.ID = pick(cfg.ID, def.ID)
	cfg.Value = pick(cfg.Value, def.Value)
	return cfg
}

func mergeTextarea(cfg, def TextareaConfig) TextareaConfig {
	cfg.Name = pick(cfg.Name, def.Name)
	cfg.ID = pick(cfg.ID, def.ID)
	cfg.Value = pick(cfg.Value, def.Value)
	cfg.Label = pick(cfg.Label, def.Label)
	cfg.Description = pick(cfg.Description, def.Description)
	cfg.DescriptionHTML = pick(cfg.DescriptionHTML, def.DescriptionHTML)
	cfg.Placeholder = pick(cfg.Placeholder, def.Placeholder)
	cfg.Class = pick(cfg.Class, def.Class)
	cfg.Disabled = cfg.Disabled || def.Disabled
	return cfg
}

func mergeUserSearch(cfg, def UserSearchConfig) UserSearchConfig {
	cfg.Name = pick(cfg.Name, def.Name)
	cfg.ID = pick(cfg.ID, def.ID)
	cfg.Value = pick(cfg.Value, def.Value)
	cfg.Label = pick(cfg.Label, def.Label)
	cfg.Description = pick(cfg.Description, def.Description)
	cfg.Placeholder = pick(cfg.Placeholder, def.Placeholder)
	cfg.Class = pick(cfg.Class, def.Class)
	cfg.Autocomplete = pick(cfg.Autocomplete, def.Autocomplete)
	cfg.Disabled = cfg.Disabled || def.Disabled
	cfg.Data = mergeData(cfg.Data, def.Data)
	return cfg
}

func pick(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

// mergeData keeps every caller attribute and appends defaults whose key the
// caller did not set.
func mergeData(data, def Data) Data {
	if len(data) == 0 && len(def) == 0 {
		return nil
	}
	out := make(Data, 0, len(data)+len(def))
	seen := make(map[string]struct{}, len(data))
	for _, attr := range data {
		seen[attr.Key] = struct{}{}
		out = append(out, attr)
	}
	for _, attr := range def {
		if _, ok := seen[attr.Key]; ok {
			continue
		}
		out = append(out, attr)
	}
	return out
}
