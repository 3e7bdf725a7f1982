package env

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// pull adopts the store's value for the cell when it is compatible with the
// declared type, coercing the few mismatches that are known to happen in
// practice. Anything else is logged and discarded.
func (e *Env) pull(ctx context.Context) error {
	e.store.Lock()
	defer e.store.Unlock()

	values, err := e.store.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreRead, err)
	}

	raw, ok := values[e.name]
	if !ok || raw == nil {
		return nil
	}

	fileValue, ok := FromAny(raw)
	if !ok {
		e.logger.Warn().
			Any("value", raw).
			Stringer("expected", e.def.Kind()).
			Msg("got value of unsupported type from file - discarding")
		return nil
	}

	if v, ok := e.adopt(fileValue); ok {
		e.value = v
	}
	return nil
}

// adopt maps a value read from the store onto the declared type. The second
// result is false when the value has to be discarded.
func (e *Env) adopt(fileValue Value) (Value, bool) {
	def := e.def

	if def.IsNull() || def.Kind() == fileValue.Kind() {
		if !fileValue.IsList() {
			return fileValue, true
		}
		if e.IsBool() {
			return mapBools(fileValue), true
		}
		if def.IsList() && !itemsMatch(def, fileValue) {
			e.discard(fileValue)
			return Value{}, false
		}
		return widenList(def, fileValue), true
	}

	switch def.Kind() {
	case KindBool:
		v := Bool(isTrue(fileValue))
		e.converted(fileValue, v)
		return v, true

	case KindList:
		if def.Len() == 0 || fileValue.IsNull() {
			break
		}
		elem := def.items[0].Kind()
		switch {
		case elem == fileValue.Kind():
			v := List(fileValue)
			e.converted(fileValue, v)
			return v, true
		case elem == KindFloat && fileValue.Kind() == KindInt:
			v := List(Float(float64(fileValue.n)))
			e.converted(fileValue, v)
			return v, true
		case elem == KindBool && isBoolString(fileValue):
			v := List(Bool(isTrue(fileValue)))
			e.converted(fileValue, v)
			return v, true
		}

	case KindFloat:
		if fileValue.Kind() == KindInt {
			v := Float(float64(fileValue.n))
			e.converted(fileValue, v)
			return v, true
		}

	case KindInt:
		if s, ok := fileValue.Str(); ok {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err == nil {
				v := Int(n)
				e.converted(fileValue, v)
				return v, true
			}
			e.logger.Warn().Err(err).Str("value", s).Msg("cannot convert value from file to int")
		}
	}

	e.discard(fileValue)
	return Value{}, false
}

// itemsMatch reports whether every item of list carries the element type of
// def[0]. Ints are accepted in a float list and nulls anywhere, since both
// come out of padding and JSON round trips.
func itemsMatch(def, list Value) bool {
	if def.Len() == 0 {
		return true
	}
	elem := def.items[0].Kind()
	for _, item := range list.items {
		switch {
		case item.Kind() == elem, item.IsNull():
		case elem == KindFloat && item.Kind() == KindInt:
		default:
			return false
		}
	}
	return true
}

func (e *Env) converted(from, to Value) {
	e.logger.Warn().
		Str("value", from.String()).
		Stringer("from", from.Kind()).
		Stringer("to", to.Kind()).
		Msgf("converting %s to %s", e.name, to)
}

func (e *Env) discard(fileValue Value) {
	e.logger.Warn().
		Str("value", fileValue.String()).
		Stringer("kind", fileValue.Kind()).
		Stringer("expected", e.def.Kind()).
		Msgf("got value from file - discarding as type of %s should be %s", e.name, e.def.Kind())
}

// push writes v under the cell's name unless the store already holds an
// equal value. Null and the literal "None" are stored as the empty string.
// The store lock is held across the read and the write.
func (e *Env) push(ctx context.Context, v Value) error {
	if s, ok := v.Str(); v.IsNull() || (ok && s == "None") {
		v = String("")
	}

	e.store.Lock()
	defer e.store.Unlock()

	values, err := e.store.ReadAll(ctx)
	if err != nil {
		e.logger.Err(err).Msg("error reading store before write")
		return fmt.Errorf("%w: %w", ErrStoreRead, err)
	}
	if values == nil {
		values = make(map[string]any)
	}

	if current, ok := values[e.name]; ok {
		if cv, ok := FromAny(current); ok && Equal(cv, v) {
			return nil
		}
	}

	values[e.name] = v.Clone()
	if err = e.store.WriteAll(ctx, values, fmt.Sprintf("%s = %s", e.name, v)); err != nil {
		e.logger.Err(err).Msg("error writing store")
		return fmt.Errorf("%w: %w", ErrStoreWrite, err)
	}
	return nil
}
