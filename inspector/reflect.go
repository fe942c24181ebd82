// Package inspector shows the components of a selected entity using
// `inspect` struct tags.
package inspector

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Kind selects how a field is drawn.
type Kind int

const (
	KindValue Kind = iota // a single number
	KindVec               // consecutive fields shown as one (x, y) row
	KindAxis              // signed value drawn as a bar growing from the centre
	KindFlag              // on/off contact or facing flag
)

// Tag is a parsed `inspect` struct tag.
//
//	`inspect:"vec,fmt:%.1f"`
//	`inspect:"axis,max:600,unit:px/s"`
//	`inspect:"flag"`
//	`inspect:"skip"`
type Tag struct {
	Kind   Kind
	Skip   bool
	Max    float32
	Format string
	Unit   string
}

// ParseTag parses an inspect tag. Unknown kinds fall back to KindValue and
// unknown options are ignored.
func ParseTag(s string) Tag {
	tag := Tag{Max: 1, Format: "%.2f"}
	parts := strings.Split(s, ",")
	switch strings.TrimSpace(parts[0]) {
	case "vec":
		tag.Kind = KindVec
	case "axis":
		tag.Kind = KindAxis
	case "flag":
		tag.Kind = KindFlag
	case "skip":
		tag.Skip = true
	}

	for _, part := range parts[1:] {
		key, val, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			continue
		}
		switch key {
		case "max":
			if m, err := strconv.ParseFloat(val, 32); err == nil && m > 0 {
				tag.Max = float32(m)
			}
		case "fmt":
			tag.Format = val
		case "unit":
			tag.Unit = val
		}
	}
	return tag
}

// Field is one row of the inspector panel.
type Field struct {
	Name   string
	Tag    Tag
	Values []float32 // two entries for KindVec
	On     bool      // KindFlag
}

// ExtractFields reads the exported, numeric or bool fields of a component
// struct. Adjacent vec fields sharing a tag are merged into one row.
func ExtractFields(component any) []Field {
	v := reflect.Indirect(reflect.ValueOf(component))
	if v.Kind() != reflect.Struct {
		return nil
	}
	t := v.Type()

	var fields []Field
	var prevTag string
	for i := 0; i < v.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		raw := sf.Tag.Get("inspect")
		tag := ParseTag(raw)
		if tag.Skip {
			continue
		}

		fv := v.Field(i)
		if fv.Kind() == reflect.Bool {
			tag.Kind = KindFlag
			fields = append(fields, Field{Name: sf.Name, Tag: tag, On: fv.Bool()})
			prevTag = ""
			continue
		}
		val, ok := number(fv)
		if !ok {
			continue
		}
		if tag.Kind == KindFlag {
			tag.Kind = KindValue
		}

		if n := len(fields); tag.Kind == KindVec && n > 0 && raw == prevTag && len(fields[n-1].Values) == 1 {
			last := &fields[n-1]
			last.Name += "," + sf.Name
			last.Values = append(last.Values, val)
			prevTag = ""
			continue
		}
		fields = append(fields, Field{Name: sf.Name, Tag: tag, Values: []float32{val}})
		prevTag = raw
	}
	return fields
}

func number(v reflect.Value) (float32, bool) {
	switch {
	case v.CanFloat():
		return float32(v.Float()), true
	case v.CanInt():
		return float32(v.Int()), true
	case v.CanUint():
		return float32(v.Uint()), true
	}
	return 0, false
}

// Text is the field's value as shown next to its name.
func (f Field) Text() string {
	if f.Tag.Kind == KindFlag {
		if f.On {
			return "yes"
		}
		return "no"
	}
	parts := make([]string, len(f.Values))
	for i, v := range f.Values {
		parts[i] = fmt.Sprintf(f.Tag.Format, v)
	}
	s := strings.Join(parts, ", ")
	if len(parts) > 1 {
		s = "(" + s + ")"
	}
	if f.Tag.Unit != "" {
		s += " " + f.Tag.Unit
	}
	return s
}

// AxisFill is the bar fill for an axis field: |value|/max clamped to 1, and
// whether the value points in the negative direction.
func (f Field) AxisFill() (float32, bool) {
	if len(f.Values) == 0 {
		return 0, false
	}
	v := f.Values[0]
	neg := v < 0
	if neg {
		v = -v
	}
	return min(v/f.Tag.Max, 1), neg
}
