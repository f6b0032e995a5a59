package v1

import (
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Option is one choice of a select or checkbox group.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Sources holds the dynamic options of a form keyed by the field's source tag.
type Sources map[string][]Option

// Field is a form field ready to render.
type Field struct {
	Name     string
	Label    string
	Input    string
	Value    string
	Checked  bool
	Options  []Option
	Required bool
	Error    string
}

var fileHeaderType = reflect.TypeOf((*multipart.FileHeader)(nil))

type fieldInfo struct {
	path  string
	index []int
	sf    reflect.StructField
}

// walk lists the bindable fields of t in declaration order, flattening embedded structs.
func walk(t reflect.Type, prefix string, index []int) []fieldInfo {
	var out []fieldInfo
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		idx := append(slices.Clone(index), i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			out = append(out, walk(sf.Type, prefix+sf.Name+".", idx)...)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if name := sf.Tag.Get("form"); name == "" || name == "-" {
			continue
		}
		out = append(out, fieldInfo{path: prefix + sf.Name, index: idx, sf: sf})
	}
	return out
}

func indirectType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// formNameOf maps a struct field path such as "ImageInput.URL" to its form name.
func formNameOf(t reflect.Type, path string) string {
	for _, f := range walk(t, "", nil) {
		if f.path == path {
			return f.sf.Tag.Get("form")
		}
	}
	return path
}

// Describe returns every field of form. With paths given only those fields are returned.
func Describe(form any, errs FieldErrors, sources Sources, paths ...string) []Field {
	v := reflect.Indirect(reflect.ValueOf(form))
	var out []Field
	for _, f := range walk(v.Type(), "", nil) {
		if len(paths) > 0 && !slices.Contains(paths, f.path) {
			continue
		}
		out = append(out, describe(f.sf, v.FieldByIndex(f.index), errs, sources))
	}
	return out
}

func describe(sf reflect.StructField, v reflect.Value, errs FieldErrors, sources Sources) Field {
	name := sf.Tag.Get("form")
	input := sf.Tag.Get("input")
	if input == "" {
		input = "text"
	}
	binding := sf.Tag.Get("binding")
	f := Field{
		Name:     name,
		Label:    sf.Tag.Get("label"),
		Input:    input,
		Required: slices.Contains(strings.Split(binding, ","), "required"),
		Error:    errs[name],
	}

	var selected []string
	switch {
	case sf.Type == fileHeaderType:
	case v.Kind() == reflect.Bool:
		f.Checked = v.Bool()
		f.Value = "true"
	case v.Kind() == reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			selected = append(selected, scalar(v.Index(i)))
		}
	case input == "password":
	default:
		f.Value = scalar(v)
		selected = []string{f.Value}
	}

	if opts := sf.Tag.Get("options"); opts != "" {
		for _, o := range strings.Split(opts, ",") {
			f.Options = append(f.Options, Option{Value: o, Label: Humanize(o), Selected: slices.Contains(selected, o)})
		}
	}
	if src := sf.Tag.Get("source"); src != "" {
		for _, o := range sources[src] {
			o.Selected = slices.Contains(selected, o.Value)
			f.Options = append(f.Options, o)
		}
	}
	return f
}

// scalar renders a value for an input; zero numbers render empty so placeholders show.
func scalar(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int64, reflect.Int32:
		if v.Int() == 0 {
			return ""
		}
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Float64, reflect.Float32:
		if v.Float() == 0 {
			return ""
		}
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	}
	return ""
}

// Humanize turns an enum value such as "clinic_admin" into "Clinic admin".
func Humanize(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
