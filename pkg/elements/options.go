package elements

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Choice is a single entry of an options mapping. Key becomes the value
// attribute and drives selection; Label is the display text.
type Choice struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
}

// Options is an ordered key to label mapping. Rendering preserves its order.
type Options []Choice

// NewOptions builds Options from alternating key, label arguments. A trailing
// key without label uses the key as its label.
func NewOptions(pairs ...string) Options {
	out := make(Options, 0, (len(pairs)+1)/2)
	for i := 0; i < len(pairs); i += 2 {
		key := pairs[i]
		label := key
		if i+1 < len(pairs) {
			label = pairs[i+1]
		}
		out = append(out, Choice{Key: key, Label: label})
	}
	return out
}

// OptionsFromMap converts an unordered map into Options. Go maps carry no
// order, so entries are sorted by key (numerically when both keys are
// integers) unless less is supplied.
func OptionsFromMap(values map[string]string, less func(a, b Choice) bool) Options {
	out := make(Options, 0, len(values))
	for key, label := range values {
		out = append(out, Choice{Key: key, Label: label})
	}
	if less == nil {
		less = naturalKeyLess
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Add appends an entry and returns the extended Options.
func (o Options) Add(key, label string) Options {
	return append(o, Choice{Key: key, Label: label})
}

// Keys lists the option keys in order.
func (o Options) Keys() []string {
	keys := make([]string, len(o))
	for i, choice := range o {
		keys[i] = choice.Key
	}
	return keys
}

// Len reports the number of entries.
func (o Options) Len() int { return len(o) }

func naturalKeyLess(a, b Choice) bool {
	ai, aErr := strconv.Atoi(a.Key)
	bi, bErr := strconv.Atoi(b.Key)
	if aErr == nil && bErr == nil {
		return ai < bi
	}
	return a.Key < b.Key
}

// Selection is the set of currently selected keys. The zero value means "not
// configured" and lets the control default apply; Select() with no values is
// an explicit empty selection.
type Selection struct {
	set  bool
	keys []string
}

// Select builds a Selection from scalar values. Values compare by their string
// form, so 2, int64(2) and "2" select the same option.
func Select(values ...any) Selection {
	s := Selection{set: true}
	for _, value := range values {
		switch v := value.(type) {
		case []string:
			for _, item := range v {
				s.keys = appendUnique(s.keys, item)
			}
		case []int:
			for _, item := range v {
				s.keys = appendUnique(s.keys, strconv.Itoa(item))
			}
		case []any:
			for _, item := range v {
				s.keys = appendUnique(s.keys, keyString(item))
			}
		case Selection:
			for _, item := range v.keys {
				s.keys = appendUnique(s.keys, item)
			}
		default:
			s.keys = appendUnique(s.keys, keyString(value))
		}
	}
	return s
}

// IsSet reports whether the selection was configured.
func (s Selection) IsSet() bool { return s.set }

// Has reports whether key is part of the selection.
func (s Selection) Has(key string) bool {
	for _, candidate := range s.keys {
		if candidate == key {
			return true
		}
	}
	return false
}

// First returns the first selected key, used by single-value controls.
func (s Selection) First() string {
	if len(s.keys) == 0 {
		return ""
	}
	return s.keys[0]
}

// Keys returns a copy of the selected keys.
func (s Selection) Keys() []string {
	return append([]string(nil), s.keys...)
}

func appendUnique(keys []string, key string) []string {
	for _, existing := range keys {
		if existing == key {
			return keys
		}
	}
	return append(keys, key)
}

// keyString gives the comparison form of a scalar: integers and floats in
// their shortest decimal form, true as "1", false and nil as "".
func keyString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "1"
		}
		return ""
	case fmt.Stringer:
		if rv := reflect.ValueOf(v); isNumericKind(rv.Kind()) {
			return numericString(rv)
		}
		return v.String()
	default:
		if rv := reflect.ValueOf(v); isNumericKind(rv.Kind()) {
			return numericString(rv)
		}
		return fmt.Sprint(v)
	}
}

func isNumericKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func numericString(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	default:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	}
}

// isEmptyValue mirrors the "empty" test used for defaulted selections: nil,
// "", "0", 0 and false count as empty.
func isEmptyValue(value any) bool {
	key := strings.TrimSpace(keyString(value))
	return key == "" || key == "0"
}

// Flag configures an injected sentinel option. The zero value defers to the
// control default; Hide turns it off and ShowAs supplies the label.
type Flag struct {
	set   bool
	label string
}

// Hide disables the sentinel option.
func Hide() Flag { return Flag{set: true} }

// ShowAs enables the sentinel option with label. An empty label hides it.
func ShowAs(label string) Flag { return Flag{set: true, label: label} }

// Enabled reports whether the sentinel should be rendered.
func (f Flag) Enabled() bool { return f.label != "" }

// Label returns the sentinel label.
func (f Flag) Label() string { return f.label }

// IsSet reports whether the flag was configured.
func (f Flag) IsSet() bool { return f.set }

// DataAttr is a single data-* attribute.
type DataAttr struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Data is an ordered list of data-* attributes.
type Data []DataAttr

// DataFromMap converts a map into Data sorted by key for stable output.
func DataFromMap(values map[string]string) Data {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make(Data, 0, len(keys))
	for _, key := range keys {
		out = append(out, DataAttr{Key: key, Value: values[key]})
	}
	return out
}

// FormatValue renders a scalar the way selections compare it. Callers feeding
// decoded JSON or YAML values into string fields use it so 3, 3.0 and "3"
// agree.
func FormatValue(value any) string {
	return keyString(value)
}
