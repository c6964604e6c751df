package theme

import (
	"fmt"
	"image/color"
	"io"
	"reflect"
	"strings"

	"github.com/example/scribble/internal/rc"
	"github.com/example/scribble/internal/render"
)

var rgbaType = reflect.TypeOf(color.RGBA{})

// Parse reads a theme definition. Each line is "Key: colour" where colour
// is anything render.ParseColor accepts. Keys that are not theme fields
// are ignored.
func Parse(r io.Reader) (*Theme, error) {
	t := Default()
	err := rc.Scan(r, nil, func(e rc.Entry) error {
		return SetField(t, e.Key, e.Value)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// SetField assigns value to the field named key, ignoring case.
func SetField(t *Theme, key, value string) error {
	if strings.EqualFold(key, "Name") {
		t.Name = value
		return nil
	}

	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !strings.EqualFold(f.Name, key) || f.Type != rgbaType {
			continue
		}
		col, err := render.ParseColor(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		val.Field(i).Set(reflect.ValueOf(col))
		return nil
	}
	return nil
}

// Fields returns the colour fields of t as name and hex pairs in
// declaration order.
func Fields(t *Theme) [][2]string {
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	var out [][2]string
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.Type != rgbaType {
			continue
		}
		out = append(out, [2]string{f.Name, render.Hex(val.Field(i).Interface().(color.RGBA))})
	}
	return out
}
