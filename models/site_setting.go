package models

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// SettingKind discriminates the shapes a setting value can take. The store
// keeps the value as opaque JSON; the tagged union keeps the upsert path
// type-safe on this side.
type SettingKind string

const (
	SettingString     SettingKind = "string"
	SettingNumber     SettingKind = "number"
	SettingBool       SettingKind = "bool"
	SettingStringList SettingKind = "string_list"
)

// SettingValue is a tagged union over the value shapes actually used by the
// site settings: string, number, boolean and list-of-string.
type SettingValue struct {
	Kind SettingKind
	Str  string
	Num  float64
	Bool bool
	List []string
}

func StringValue(s string) SettingValue     { return SettingValue{Kind: SettingString, Str: s} }
func NumberValue(n float64) SettingValue    { return SettingValue{Kind: SettingNumber, Num: n} }
func BoolValue(b bool) SettingValue         { return SettingValue{Kind: SettingBool, Bool: b} }
func StringListValue(l []string) SettingValue {
	return SettingValue{Kind: SettingStringList, List: l}
}

// MarshalJSON encodes the union as the bare JSON value of its active arm.
func (v SettingValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case SettingString:
		return json.Marshal(v.Str)
	case SettingNumber:
		return json.Marshal(v.Num)
	case SettingBool:
		return json.Marshal(v.Bool)
	case SettingStringList:
		if v.List == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.List)
	default:
		return nil, fmt.Errorf("unknown setting kind %q", v.Kind)
	}
}

// UnmarshalJSON infers the arm from the JSON shape. Shapes outside the
// union (objects, mixed arrays, null) are rejected.
func (v *SettingValue) UnmarshalJSON(data []byte) error {
	// json.Unmarshal treats null as a no-op for every target type, so it
	// has to be rejected up front.
	if string(data) == "null" {
		return fmt.Errorf("unsupported setting value shape: null")
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = StringValue(s)
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = BoolValue(b)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberValue(n)
		return nil
	}
	var l []string
	if err := json.Unmarshal(data, &l); err == nil && l != nil {
		*v = StringListValue(l)
		return nil
	}
	return fmt.Errorf("unsupported setting value shape: %s", string(data))
}

// SiteSetting is a keyed site-wide configuration value. Keys are unique and
// writes go through a per-key upsert.
type SiteSetting struct {
	Key         string         `json:"key" db:"key" gorm:"type:text;primaryKey;not null"`
	Value       datatypes.JSON `json:"value" db:"value" gorm:"type:jsonb;not null;default:'null'"`
	Description string         `json:"description" db:"description" gorm:"type:text"`
}

// DecodeValue interprets the stored JSON column as a SettingValue.
func (s SiteSetting) DecodeValue() (SettingValue, error) {
	var v SettingValue
	if err := json.Unmarshal(s.Value, &v); err != nil {
		return SettingValue{}, err
	}
	return v, nil
}

// SetValue encodes v into the stored JSON column.
func (s *SiteSetting) SetValue(v SettingValue) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.Value = datatypes.JSON(data)
	return nil
}
