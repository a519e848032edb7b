package shell

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// InputKind selects the editor used for a field.
type InputKind string

const (
	InputText     InputKind = "text"
	InputNumber   InputKind = "number"
	InputTextarea InputKind = "textarea"
)

// longTextThreshold is the string length above which a textarea is used.
const longTextThreshold = 100

// Annotation classes.
const (
	ClassRedacted  = "redacted"
	ClassUncertain = "uncertain"
)

// FormatFieldName turns a field name into a label: underscores become
// spaces and each word starts with a capital letter.
func FormatFieldName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	wordStart := true
	for _, r := range strings.ReplaceAll(name, "_", " ") {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r)
		if isWord && wordStart {
			r = unicode.ToUpper(r)
		}
		wordStart = !isWord
		b.WriteRune(r)
	}
	return b.String()
}

// DisplayValue renders a field value as editor text. Null is empty and
// objects or arrays are compact JSON.
func DisplayValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case map[string]any, []any:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	default:
		return fmt.Sprint(x)
	}
}

// InputKindFor picks the editor for a value.
func InputKindFor(v any) InputKind {
	switch x := v.(type) {
	case float64:
		return InputNumber
	case string:
		if utf8.RuneCountInString(x) > longTextThreshold {
			return InputTextarea
		}
	}
	return InputText
}

// Annotation is a note rendered under a field.
type Annotation struct {
	Text  string `json:"text"`
	Class string `json:"class,omitempty"`
}

// annotations builds the note, status and confidence annotations of a
// field from its sidecar values.
func annotations(note, status, confidence string) []Annotation {
	var out []Annotation
	if note != "" {
		class := ""
		switch {
		case strings.Contains(strings.ToLower(note), "redact"):
			class = ClassRedacted
		case confidence == "low" || confidence == "uncertain":
			class = ClassUncertain
		}
		out = append(out, Annotation{Text: note, Class: class})
	}
	if status != "" && status != "present" {
		class := ""
		if status == "redacted" {
			class = ClassRedacted
		}
		out = append(out, Annotation{Text: "Status: " + status, Class: class})
	}
	if confidence != "" && confidence != "high" {
		out = append(out, Annotation{Text: "Confidence: " + confidence, Class: ClassUncertain})
	}
	return out
}

// EditIndicator returns "N record(s) modified", or "" when nothing changed.
func EditIndicator(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%d record(s) modified", n)
}
