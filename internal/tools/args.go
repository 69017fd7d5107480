package tools

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Decode copies args into target using weak typing. Unknown keys are ignored;
// numeric fields that receive unparseable text are left unset.
func (a Args) Decode(target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook:       lenientNumberHook,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(map[string]any(a)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return nil
}

// lenientNumberHook maps numeric strings ("3", "3.0", "1e20") and floats to
// ints for *int targets, saturating at the int32 range. Anything else becomes nil.
func lenientNumberHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Ptr || to.Elem().Kind() != reflect.Int {
		return data, nil
	}
	switch from.Kind() {
	case reflect.String:
		raw := strings.TrimSpace(reflect.ValueOf(data).String())
		if n, err := strconv.ParseInt(raw, 10, 32); err == nil {
			return int(n), nil
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil || errors.Is(err, strconv.ErrRange) {
			return saturate(f), nil
		}
		return nil, nil
	case reflect.Float32, reflect.Float64:
		return saturate(reflect.ValueOf(data).Float()), nil
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
		return saturate(reflect.ValueOf(data).Convert(reflect.TypeOf(float64(0))).Float()), nil
	case reflect.Bool, reflect.Map, reflect.Slice:
		return nil, nil
	}
	return data, nil
}

func saturate(f float64) any {
	switch {
	case math.IsNaN(f):
		return nil
	case f >= math.MaxInt32:
		return int(math.MaxInt32)
	case f <= math.MinInt32:
		return int(math.MinInt32)
	}
	return int(f)
}

// toRecords converts typed rows into plain mappings keyed by their JSON names.
func toRecords(rows any) ([]map[string]any, error) {
	raw, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	records := []map[string]any{}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	if records == nil {
		records = []map[string]any{}
	}
	return records, nil
}
