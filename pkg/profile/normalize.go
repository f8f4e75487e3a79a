package profile

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// DocumentError reports a parsed document that does not describe a profile.
type DocumentError struct {
	Path   string
	Reason string
}

func (e *DocumentError) Error() string {
	if e.Path == "" {
		return "invalid profile: " + e.Reason
	}
	return fmt.Sprintf("invalid profile %s: %s", e.Path, e.Reason)
}

// Raw shapes mirror the recognized document keys. Anything else in the
// document is dropped by the decoder.
type rawProfile struct {
	Sessions []rawSession `mapstructure:"sessions"`
}

type rawSession struct {
	Name    string      `mapstructure:"name"`
	Dir     string      `mapstructure:"dir"`
	Attach  bool        `mapstructure:"attach"`
	Windows []rawWindow `mapstructure:"windows"`
}

type rawWindow struct {
	Name  string    `mapstructure:"name"`
	Dir   string    `mapstructure:"dir"`
	Cmd   []string  `mapstructure:"cmd"`
	Send  []string  `mapstructure:"send"`
	Panes []rawPane `mapstructure:"panes"`
}

type rawPane struct {
	Dir   string   `mapstructure:"dir"`
	Split string   `mapstructure:"split"`
	Size  string   `mapstructure:"size"`
	Cmd   []string `mapstructure:"cmd"`
	Send  []string `mapstructure:"send"`
}

var stringSliceType = reflect.TypeOf([]string(nil))

// stringOrList lets cmd and send be written as a single string.
func stringOrList(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != stringSliceType || data == nil {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Slice, reflect.Array:
		return data, nil
	case reflect.Map, reflect.Struct:
		return nil, fmt.Errorf("expected string or list of strings, got %s", from.Kind())
	}
	return []any{data}, nil
}

// Normalize converts a generic document tree into a Profile. The root must
// be a mapping with a "sessions" sequence. path is used in error messages
// only and may be empty.
func Normalize(tree any, path string) (Profile, error) {
	if tree == nil {
		return Profile{}, &DocumentError{Path: path, Reason: "document is empty"}
	}
	rootVal := reflect.ValueOf(tree)
	if rootVal.Kind() != reflect.Map {
		return Profile{}, &DocumentError{Path: path, Reason: fmt.Sprintf("root must be a mapping, got %T", tree)}
	}
	if k := rootVal.Type().Key().Kind(); k != reflect.String && k != reflect.Interface {
		return Profile{}, &DocumentError{Path: path, Reason: "root mapping keys must be strings"}
	}
	sessions := rootVal.MapIndex(reflect.ValueOf("sessions"))
	if !sessions.IsValid() {
		return Profile{}, &DocumentError{Path: path, Reason: `missing "sessions"`}
	}
	if k := reflect.ValueOf(sessions.Interface()).Kind(); k != reflect.Slice && k != reflect.Array {
		return Profile{}, &DocumentError{Path: path, Reason: `"sessions" must be a sequence`}
	}

	var raw rawProfile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       stringOrList,
		WeaklyTypedInput: true,
		Result:           &raw,
	})
	if err != nil {
		return Profile{}, err
	}
	if err := decoder.Decode(tree); err != nil {
		return Profile{}, &DocumentError{Path: path, Reason: err.Error()}
	}
	return raw.profile(), nil
}

func (r rawProfile) profile() Profile {
	p := Profile{Sessions: make([]Session, 0, len(r.Sessions))}
	for _, rs := range r.Sessions {
		s := Session{
			Name:   rs.Name,
			Dir:    rs.Dir,
			Attach: rs.Attach,
		}
		for _, rw := range rs.Windows {
			w := Window{
				Name: rw.Name,
				Dir:  rw.Dir,
				Cmd:  rw.Cmd,
				Send: rw.Send,
			}
			for _, rp := range rw.Panes {
				w.Panes = append(w.Panes, Pane{
					Dir:   rp.Dir,
					Split: parseSplit(rp.Split),
					Size:  rp.Size,
					Cmd:   rp.Cmd,
					Send:  rp.Send,
				})
			}
			s.Windows = append(s.Windows, w)
		}
		p.Sessions = append(p.Sessions, s)
	}
	return p
}

// parseSplit looks at the first letter only, so "v", "vert" and "vertical"
// all select a vertical split.
func parseSplit(s string) Split {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "v") {
		return SplitVertical
	}
	return SplitHorizontal
}
