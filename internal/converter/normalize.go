package converter

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/goccy/go-json"

	"github.com/voyagen/tvm3u/internal/models"
)

// fieldSpec lists the record keys tried for one channel field, in order,
// and the value used when none of them holds a truthy value.
type fieldSpec struct {
	keys     []string
	fallback string
}

var (
	nameField  = fieldSpec{keys: []string{"name", "channelName", "title"}, fallback: models.DefaultName}
	urlField   = fieldSpec{keys: []string{"url", "urls", "streamUrl", "source"}}
	groupField = fieldSpec{keys: []string{"group", "category", "type"}, fallback: models.DefaultGroup}
	logoField  = fieldSpec{keys: []string{"logo", "icon", "image"}}
)

func (f fieldSpec) lookup(rec map[string]any) any {
	for _, key := range f.keys {
		if v, ok := rec[key]; ok && truthy(v) {
			return v
		}
	}
	return f.fallback
}

// Normalize builds a channel from a loosely typed record. The result may be
// invalid; check Channel.Valid before emitting it.
func Normalize(rec map[string]any) models.Channel {
	return models.Channel{
		Name:  Sanitize(text(nameField.lookup(rec))),
		URL:   streamURL(urlField.lookup(rec)),
		Group: Sanitize(text(groupField.lookup(rec))),
		Logo:  text(logoField.lookup(rec)),
	}
}

// streamURL takes the first element of a URL list. Anything that is not a
// string afterwards yields "", which never passes the scheme check.
func streamURL(v any) string {
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return ""
		}
		v = list[0]
	}
	s, _ := v.(string)
	return s
}

// Sanitize drops every rune that is not a letter, number, underscore,
// whitespace or hyphen.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '_' || r == '-':
			return r
		case unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r):
			return r
		case r >= 0x1c && r <= 0x1f:
			// Information separators count as whitespace.
			return r
		}
		return -1
	}, s)
}

// truthy mirrors the usual "has a value" test: null, "", 0, false and empty
// containers are all absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return true
}

// text renders a field value for output. Numbers follow numberText and
// containers are written back as compact JSON.
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return numberText(t)
	case bool:
		if t {
			return "True"
		}
		return "False"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// numberText renders integers as written and everything else in shortest
// round-trip float form: 1.50 is "1.5", 1e3 is "1000.0", 1e16 is "1e+16".
func numberText(n json.Number) string {
	lit := n.String()
	if !strings.ContainsAny(lit, ".eE") {
		if lit == "-0" {
			return "0"
		}
		return lit
	}
	f, err := strconv.ParseFloat(lit, 64)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case err != nil:
		return lit
	}
	if abs := math.Abs(f); f == 0 || (abs >= 1e-4 && abs < 1e16) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	return strconv.FormatFloat(f, 'e', -1, 64)
}
