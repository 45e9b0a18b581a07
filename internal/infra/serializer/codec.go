package serializer

import (
	"encoding/json"
	"encoding/xml"
	"path/filepath"
	"reflect"
	"strings"
	"unicode/utf8"

	"hotel-guest-manager/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// Codec turns a record.Document into bytes and back. FileSerializer owns the file handling.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type XMLCodec struct{}

func (XMLCodec) Name() string { return "xml" }

// Marshal refuses text that XML 1.0 cannot carry instead of letting encoding/xml
// substitute U+FFFD, which would change the data on the next load.
func (XMLCodec) Marshal(v any) ([]byte, error) {
	if err := checkXMLText(reflect.ValueOf(v), ""); err != nil {
		return nil, err
	}
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}

func (XMLCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

func checkXMLText(v reflect.Value, path string) error {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return checkXMLText(v.Elem(), path)
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			if err := checkXMLText(v.Field(i), path+"."+t.Field(i).Name); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := checkXMLText(v.Index(i), path); err != nil {
				return err
			}
		}
	case reflect.String:
		if r, ok := firstInvalidXMLRune(v.String()); !ok {
			return errs.Wrapf(errs.ErrUnencodableText, "%s contains %U", strings.TrimPrefix(path, "."), r)
		}
	}
	return nil
}

// firstInvalidXMLRune reports the first rune outside the XML 1.0 Char production.
// Malformed UTF-8 is reported as utf8.RuneError.
func firstInvalidXMLRune(s string) (rune, bool) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return r, false
		}
		if !isXMLChar(r) {
			return r, false
		}
		i += size
	}
	return 0, true
}

func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(v any) ([]byte, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(body, '\n'), nil
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

type YAMLCodec struct{}

func (YAMLCodec) Name() string { return "yaml" }

func (YAMLCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAMLCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// CodecFor resolves the codec by explicit format name, falling back to the file extension.
func CodecFor(format, path string) (Codec, error) {
	name := strings.ToLower(strings.TrimSpace(format))
	if name == "" {
		name = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}

	switch name {
	case "xml":
		return XMLCodec{}, nil
	case "json":
		return JSONCodec{}, nil
	case "yaml", "yml":
		return YAMLCodec{}, nil
	default:
		return nil, errs.Wrapf(errs.ErrUnknownFormat, "format %q (file %s)", name, path)
	}
}
