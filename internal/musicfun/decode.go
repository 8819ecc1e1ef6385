package musicfun

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"musicfun/internal/catalog"
)

// ErrMalformedPayload is returned when the tracks payload is not an array of objects.
var ErrMalformedPayload = errors.New("malformed tracks payload")

// DecodeTracks parses the upstream tracks payload. The payload must be a JSON
// array of objects; inside each object every field is optional and a null is
// treated like a missing field.
func DecodeTracks(body []byte) ([]catalog.RawTrack, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedPayload)
	}

	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: expected an array, got %s", ErrMalformedPayload, root.Type)
	}

	raws := make([]catalog.RawTrack, 0, len(root.Array()))
	var decodeErr error
	root.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			decodeErr = fmt.Errorf("%w: element %d is %s, not an object", ErrMalformedPayload, len(raws), item.Type)
			return false
		}
		raws = append(raws, catalog.RawTrack{
			ID:    stringifyID(item.Get("id")),
			Title: optionalString(item.Get("title")),
			URL:   optionalString(item.Get("url")),
		})
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}

	return raws, nil
}

// stringifyID renders an upstream id the way it would print as a JSON scalar:
// numbers in their shortest form, strings verbatim.
func stringifyID(v gjson.Result) string {
	switch v.Type {
	case gjson.Number:
		return formatNumber(v.Num)
	case gjson.String:
		return v.Str
	case gjson.True, gjson.False:
		return v.Raw
	default:
		return ""
	}
}

// formatNumber uses plain digits for magnitudes in [1e-6, 1e21) and exponent
// notation with an unpadded exponent outside that range, so 1e21 renders as
// "1e+21" and 1e-7 as "1e-7".
func formatNumber(n float64) string {
	if n == 0 {
		return "0"
	}
	abs := math.Abs(n)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(n, 'e', -1, 64), "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}

func optionalString(v gjson.Result) *string {
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	s := v.String()
	return &s
}
