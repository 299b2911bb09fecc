package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// maxSafeInteger is the largest integer exactly representable in a JSON
// number.
const maxSafeInteger = 1<<53 - 1

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// problemFields flattens validator errors into failing field names, kept in
// struct declaration order. At most one entry per field.
func problemFields(err error) ([]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields, true
}

func checkInputsError(fields []string) error {
	return fmt.Errorf("please check this following inputs: %s", strings.Join(fields, ","))
}

// parseSafeInt reads a raw JSON value as an exactly representable whole
// number. Absent, null, wrong-typed, fractional, and out-of-range values
// all report not ok.
func parseSafeInt(raw json.RawMessage) (int64, bool) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	if f != math.Trunc(f) || math.Abs(f) > maxSafeInteger {
		return 0, false
	}
	return int64(f), true
}
