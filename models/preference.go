// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
)

// PreferenceKind tags the type of value held by a [PreferenceValue].
type PreferenceKind int

const (
	PreferenceString PreferenceKind = iota + 1
	PreferenceInt
	PreferenceBool
	PreferenceFloat
)

// String returns the name stored in the kind column.
func (k PreferenceKind) String() string {
	switch k {
	case PreferenceString:
		return "string"
	case PreferenceInt:
		return "int"
	case PreferenceBool:
		return "bool"
	case PreferenceFloat:
		return "float"
	default:
		return "unknown"
	}
}

// ParsePreferenceKind is the inverse of [PreferenceKind.String].
func ParsePreferenceKind(s string) (PreferenceKind, error) {
	switch s {
	case "string":
		return PreferenceString, nil
	case "int":
		return PreferenceInt, nil
	case "bool":
		return PreferenceBool, nil
	case "float":
		return PreferenceFloat, nil
	default:
		return 0, fmt.Errorf("unknown preference kind %q", s)
	}
}

// PreferenceValue is a tagged variant for a named local setting. Only the
// field matching Kind is meaningful.
type PreferenceValue struct {
	Kind   PreferenceKind
	String string
	Int    int64
	Bool   bool
	Float  float64
}

func StringPreference(v string) PreferenceValue { return PreferenceValue{Kind: PreferenceString, String: v} }
func IntPreference(v int64) PreferenceValue     { return PreferenceValue{Kind: PreferenceInt, Int: v} }
func BoolPreference(v bool) PreferenceValue     { return PreferenceValue{Kind: PreferenceBool, Bool: v} }
func FloatPreference(v float64) PreferenceValue { return PreferenceValue{Kind: PreferenceFloat, Float: v} }

// Encode renders the active field as text for storage.
func (p PreferenceValue) Encode() (string, error) {
	switch p.Kind {
	case PreferenceString:
		return p.String, nil
	case PreferenceInt:
		return strconv.FormatInt(p.Int, 10), nil
	case PreferenceBool:
		return strconv.FormatBool(p.Bool), nil
	case PreferenceFloat:
		return strconv.FormatFloat(p.Float, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("cannot encode preference of kind %s", p.Kind)
	}
}

// DecodePreference builds a [PreferenceValue] of the given kind from its
// stored text form.
func DecodePreference(kind PreferenceKind, raw string) (PreferenceValue, error) {
	switch kind {
	case PreferenceString:
		return StringPreference(raw), nil
	case PreferenceInt:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return PreferenceValue{}, fmt.Errorf("decode int preference: %w", err)
		}
		return IntPreference(v), nil
	case PreferenceBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return PreferenceValue{}, fmt.Errorf("decode bool preference: %w", err)
		}
		return BoolPreference(v), nil
	case PreferenceFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return PreferenceValue{}, fmt.Errorf("decode float preference: %w", err)
		}
		return FloatPreference(v), nil
	default:
		return PreferenceValue{}, fmt.Errorf("cannot decode preference of kind %s", kind)
	}
}
