// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decoder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"net/url"
	"strings"

	"github.com/MKhiriev/http-contracts/models"
)

const (
	mediaTypeForm = "application/x-www-form-urlencoded"
	mediaTypeJSON = "application/json"
	jsonSuffix    = "+json"
)

// DetectEncoding maps a Content-Type header value to an [models.Encoding].
// Parameters such as charset are ignored. A malformed value is reported as
// [models.EncodingUnknown].
func DetectEncoding(contentType string) models.Encoding {
	if strings.TrimSpace(contentType) == "" {
		return models.EncodingNone
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return models.EncodingUnknown
	}

	switch {
	case mediaType == mediaTypeForm:
		return models.EncodingForm
	case mediaType == mediaTypeJSON, strings.HasSuffix(mediaType, jsonSuffix):
		return models.EncodingJSON
	default:
		return models.EncodingUnknown
	}
}

// Decode produces a FieldMap from raw according to enc.
//
// An empty body, or an encoding other than form or JSON, yields an empty map
// and no error. The returned map is never nil. On a JSON error it is empty;
// a form body with a malformed escape still yields every pair it holds.
func Decode(raw []byte, enc models.Encoding) (models.FieldMap, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return models.FieldMap{}, nil
	}

	switch enc {
	case models.EncodingForm:
		return decodeForm(raw)
	case models.EncodingJSON:
		return decodeJSON(raw)
	default:
		return models.FieldMap{}, nil
	}
}

// decodeForm parses key=value pairs joined by '&'. When a key repeats, the
// last occurrence wins. A pair without '=' is a key with an empty value, and
// ';' has no special meaning. A malformed percent escape is kept as literal
// text; the pair is still decoded and the returned error wraps
// [ErrInvalidBody].
func decodeForm(raw []byte) (models.FieldMap, error) {
	fields := models.FieldMap{}

	var malformed []string
	for _, pair := range strings.Split(string(raw), "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")

		key, keyErr := unescapeForm(rawKey)
		value, valueErr := unescapeForm(rawValue)
		if keyErr != nil || valueErr != nil {
			malformed = append(malformed, pair)
		}
		if key == "" {
			continue
		}
		fields[key] = value
	}

	if len(malformed) > 0 {
		return fields, fmt.Errorf("%w: malformed escape in %q", ErrInvalidBody, malformed)
	}
	return fields, nil
}

// unescapeForm decodes a form component. When the component holds an
// invalid escape it is returned with '+' turned into a space and every valid
// %XX sequence decoded, the rest left as-is.
func unescapeForm(s string) (string, error) {
	decoded, err := url.QueryUnescape(s)
	if err == nil {
		return decoded, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), err
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// decodeJSON parses a JSON object whose values are scalars. Strings are kept
// as-is, numbers keep their literal text, booleans become "true"/"false" and
// null leaves the key out.
func decodeJSON(raw []byte) (models.FieldMap, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var object map[string]any
	if err := dec.Decode(&object); err != nil {
		return models.FieldMap{}, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if object == nil {
		return models.FieldMap{}, fmt.Errorf("%w: top-level value must be an object", ErrInvalidBody)
	}
	if dec.More() {
		return models.FieldMap{}, fmt.Errorf("%w: trailing data after object", ErrInvalidBody)
	}

	fields := make(models.FieldMap, len(object))
	for key, value := range object {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			fields[key] = v
		case json.Number:
			fields[key] = v.String()
		case bool:
			fields[key] = fmt.Sprint(v)
		default:
			return models.FieldMap{}, fmt.Errorf("%w: field %q", ErrNestedValue, key)
		}
	}
	return fields, nil
}
