package attachments

import (
	"encoding/json"
	"reflect"
)

// Override is an attachment property override. It either holds a value or is unset, in which
// case the current property value is kept
type Override struct {
	value interface{}
	set   bool
}

// Overrides maps attachment property names to their override
type Overrides map[string]Override

// Unset returns an override keeping the current value
func Unset() Override {
	return Override{}
}

// Value returns an override with value v. Maps in v may hold Override values themselves to
// leave some of their keys untouched
func Value(v interface{}) Override {
	return Override{value: v, set: true}
}

// IsSet returns true if the override holds a value
func (o Override) IsSet() bool {
	return o.set
}

// Get returns the value of the override and whether it is set
func (o Override) Get() (v interface{}, ok bool) {
	return o.value, o.set
}

// Merge returns a copy of record with overrides deep merged over it. For each key:
//   - two maps are merged recursively
//   - two sequences are unioned: elements from both, in first-seen order, without duplicates
//   - an unset override keeps the current value and never creates the key
//   - any other override value replaces the current value
//
// The record isn't modified
func Merge(record map[string]interface{}, overrides Overrides) (merged map[string]interface{}) {
	merged = make(map[string]interface{}, len(record)+len(overrides))
	for k, v := range record {
		merged[k] = v
	}

	for k, o := range overrides {
		v, ok := o.Get()
		if !ok {
			continue
		}

		if current, exists := merged[k]; exists {
			merged[k] = mergeValues(current, v)
		} else {
			merged[k] = resolve(v)
		}
	}

	return merged
}

func mergeValues(current interface{}, override interface{}) interface{} {
	if o, isOverride := override.(Override); isOverride {
		v, ok := o.Get()
		if !ok {
			return current
		}

		override = v
	}

	c := normalize(current)
	ov := normalize(override)

	if cm, ok := c.(map[string]interface{}); ok {
		if om, ok := ov.(map[string]interface{}); ok {
			merged := make(map[string]interface{}, len(cm)+len(om))
			for k, v := range cm {
				merged[k] = v
			}

			for k, v := range om {
				if o, isOverride := v.(Override); isOverride && !o.IsSet() {
					continue
				}

				if existing, exists := merged[k]; exists {
					merged[k] = mergeValues(existing, v)
				} else {
					merged[k] = resolve(v)
				}
			}

			return merged
		}
	}

	if cs, ok := c.([]interface{}); ok {
		if ovs, ok := ov.([]interface{}); ok {
			return union(resolve(cs).([]interface{}), resolve(ovs).([]interface{}))
		}
	}

	return resolve(ov)
}

// resolve normalizes v and unwraps the Override values it holds. Unset overrides are dropped
func resolve(v interface{}) interface{} {
	if o, isOverride := v.(Override); isOverride {
		v, _ = o.Get()
	}

	switch n := normalize(v).(type) {
	case map[string]interface{}:
		resolved := make(map[string]interface{}, len(n))
		for k, e := range n {
			if o, isOverride := e.(Override); isOverride && !o.IsSet() {
				continue
			}

			resolved[k] = resolve(e)
		}

		return resolved
	case []interface{}:
		resolved := make([]interface{}, 0, len(n))
		for _, e := range n {
			if o, isOverride := e.(Override); isOverride && !o.IsSet() {
				continue
			}

			resolved = append(resolved, resolve(e))
		}

		return resolved
	default:
		return n
	}
}

// union returns the elements of a followed by the elements of b, skipping any element equal
// to one already added
func union(a []interface{}, b []interface{}) []interface{} {
	u := make([]interface{}, 0, len(a)+len(b))
	for _, s := range [][]interface{}{a, b} {
		for _, e := range s {
			if !contains(u, e) {
				u = append(u, e)
			}
		}
	}

	return u
}

func contains(s []interface{}, e interface{}) bool {
	for _, v := range s {
		if reflect.DeepEqual(v, e) {
			return true
		}
	}

	return false
}

// normalize converts string-keyed maps to map[string]interface{}, slices and arrays to
// []interface{} and structs to their JSON object representation so that values of
// different static types can be merged and compared. Elements aren't normalized
func normalize(v interface{}) interface{} {
	switch v.(type) {
	case nil, map[string]interface{}, []interface{}, Override:
		return v
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return v
		}

		if rv.Elem().Kind() != reflect.Struct {
			return v
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}

		m := make(map[string]interface{}, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}

		return m
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}

		s := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s[i] = rv.Index(i).Interface()
		}

		return s
	case reflect.Struct:
		return structToMap(rv.Interface())
	}

	return v
}

// structToMap returns the JSON object form of a struct or the struct itself if it doesn't
// encode to an object
func structToMap(v interface{}) interface{} {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}

	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return v
	}

	return m
}
