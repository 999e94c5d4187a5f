package models

import (
	"fmt"
	"strings"
)

// TransformKind identifies a text transform.
type TransformKind int

const (
	TransformUpper TransformKind = iota + 1
	TransformLower
	TransformTitle
	TransformSentence
	TransformCamel
	TransformInvert
	TransformTrimSpaces       // whitespace normalization
	TransformRemoveLineBreaks // newline runs -> single space
)

var transformNames = map[TransformKind]string{
	TransformUpper:            "upper",
	TransformLower:            "lower",
	TransformTitle:            "title",
	TransformSentence:         "sentence",
	TransformCamel:            "camel",
	TransformInvert:           "invert",
	TransformTrimSpaces:       "trim-spaces",
	TransformRemoveLineBreaks: "remove-line-breaks",
}

// aliases accepted by ParseTransformKind in addition to the canonical names.
var transformAliases = map[string]TransformKind{
	"uppercase":        TransformUpper,
	"lowercase":        TransformLower,
	"titlecase":        TransformTitle,
	"sentencecase":     TransformSentence,
	"camelcase":        TransformCamel,
	"inverse":          TransformInvert,
	"normalize":        TransformTrimSpaces,
	"normalize-spaces": TransformTrimSpaces,
	"single-line":      TransformRemoveLineBreaks,
}

func (k TransformKind) String() string {
	if name, ok := transformNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TransformKind(%d)", int(k))
}

// AllTransformKinds returns every known kind in declaration order.
func AllTransformKinds() []TransformKind {
	return []TransformKind{
		TransformUpper,
		TransformLower,
		TransformTitle,
		TransformSentence,
		TransformCamel,
		TransformInvert,
		TransformTrimSpaces,
		TransformRemoveLineBreaks,
	}
}

// ParseTransformKind resolves a kind from its name (case-insensitive).
func ParseTransformKind(name string) (TransformKind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for kind, canonical := range transformNames {
		if canonical == n {
			return kind, nil
		}
	}
	if kind, ok := transformAliases[n]; ok {
		return kind, nil
	}
	return 0, fmt.Errorf("unknown transform kind %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k TransformKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *TransformKind) UnmarshalText(b []byte) error {
	kind, err := ParseTransformKind(string(b))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
