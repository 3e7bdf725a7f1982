// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package env

import (
	"context"
	"fmt"
	"sort"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/store"
)

// TagIsEnabled marks a cell as boolean-coercing: the setter accepts
// True/False, 1/0, On/Off and yes and always stores a boolean.
const TagIsEnabled = "is_enabled"

// Outcome reports what a mutation did to the in-memory value.
type Outcome int

const (
	// Unchanged means the new value equalled the current one.
	Unchanged Outcome = iota
	// Updated means the in-memory value changed and was pushed to the store.
	Updated
	// Rejected means the input could not be used and nothing changed.
	Rejected
)

// String returns a lowercase name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Updated:
		return "updated"
	case Rejected:
		return "rejected"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Env is a named, typed configuration cell kept in sync with a [store.Store].
//
// A cell pulls its value from the store once, when it is created, and pushes
// it back after every change. Its declared type comes from the default. All
// methods are safe for concurrent use: the cell serializes its own state and
// holds the store lock around every read-then-write of the store.
type Env struct {
	name          string
	def           Value
	mandatory     bool
	valueProvider func() any
	tags          mapset.Set[string]

	store  store.Store
	logger *logger.Logger

	mu    sync.Mutex
	value Value
}

// New creates the cell called name and immediately reconciles it with s: a
// stored value of a compatible type wins over both the default and an
// explicit [WithValue]. The returned error is non-nil only when s cannot be
// read.
func New(ctx context.Context, s store.Store, name string, opts ...Option) (*Env, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger
	if log == nil {
		log = logger.Nop()
	}

	e := &Env{
		name:          name,
		mandatory:     o.mandatory,
		valueProvider: o.valueProvider,
		tags:          mapset.NewThreadUnsafeSet[string](),
		store:         s,
		logger:        &logger.Logger{Logger: log.With().Str("setting", name).Logger()},
	}
	for _, tag := range o.tags {
		if tag != "" {
			e.tags.Add(tag)
		}
	}

	rawDefault := o.def
	if o.defaultProvider != nil {
		rawDefault = o.defaultProvider()
	}
	def, ok := FromAny(rawDefault)
	if !ok {
		e.logger.Error().Any("default", rawDefault).Msg("unsupported default type, using null")
	}
	if def.IsList() && def.Len() != 1 {
		e.logger.Error().Int("len", def.Len()).Msg("default list len should be 1")
	}
	e.def = def

	e.value = e.seed()
	if o.hasValue {
		v, ok := FromAny(o.value)
		if ok {
			e.value = v
		} else {
			e.logger.Warn().Any("value", o.value).Msg("unsupported initial value type, keeping default")
		}
	}

	if err := e.pull(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// seed is the value a cell starts from: the default, or a one-element list
// holding the per-element default.
func (e *Env) seed() Value {
	if !e.def.IsList() {
		return e.def
	}
	if e.def.Len() == 0 {
		return List()
	}
	return List(e.def.items[0])
}

// Name returns the store key of the cell.
func (e *Env) Name() string { return e.name }

// Default returns a copy of the declared default.
func (e *Env) Default() Value { return e.def.Clone() }

// IsMandatory reports whether the cell was declared [Mandatory].
func (e *Env) IsMandatory() bool { return e.mandatory }

// IsBool reports whether the cell carries [TagIsEnabled].
func (e *Env) IsBool() bool { return e.tags.Contains(TagIsEnabled) }

// IsList reports whether the declared default is a list.
func (e *Env) IsList() bool { return e.def.IsList() }

// IsComputed reports whether reads are served by a value provider.
func (e *Env) IsComputed() bool { return e.valueProvider != nil }

// Tags returns the cell's tags in sorted order. It never returns nil.
func (e *Env) Tags() []string {
	tags := e.tags.ToSlice()
	sort.Strings(tags)
	if tags == nil {
		return []string{}
	}
	return tags
}

// HasTag reports whether the cell carries tag.
func (e *Env) HasTag(tag string) bool { return e.tags.Contains(tag) }

// String implements [fmt.Stringer].
func (e *Env) String() string {
	return fmt.Sprintf("Env(%s, %s)", e.name, e.Value())
}

// Value returns the current value. Computed cells call their provider on
// every read. Otherwise the stored value is returned, falling back to the
// default and finally to the empty string. Lists are returned as copies.
func (e *Env) Value() Value {
	if e.valueProvider != nil {
		raw := e.valueProvider()
		v, ok := FromAny(raw)
		if !ok {
			e.logger.Warn().Any("value", raw).Msg("value provider returned an unsupported type")
			return String("")
		}
		return v
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current()
}

func (e *Env) current() Value {
	if !e.value.IsNull() {
		return e.value.Clone()
	}
	if !e.def.IsNull() {
		return e.seed()
	}
	return String("")
}

// ValueAsString returns the value formatted as a string.
func (e *Env) ValueAsString() string {
	v := e.Value()
	if v.Kind() != KindString {
		e.traceMismatch(v, KindString)
	}
	return v.String()
}

// ValueAsInt returns the value converted to an int; unparsable values give 0.
func (e *Env) ValueAsInt() int {
	v := e.Value()
	if v.Kind() != KindInt {
		e.traceMismatch(v, KindInt)
	}
	n, ok := toInt(v)
	if !ok {
		e.logger.Warn().Str("value", v.String()).Msg("cannot convert value to int, using 0")
	}
	return n
}

// ValueAsFloat returns the value converted to a float64; unparsable values
// give 0.
func (e *Env) ValueAsFloat() float64 {
	v := e.Value()
	if v.Kind() != KindFloat {
		e.traceMismatch(v, KindFloat)
	}
	f, ok := toFloat(v)
	if !ok {
		e.logger.Warn().Str("value", v.String()).Msg("cannot convert value to float, using 0")
		return 0
	}
	n, _ := f.FloatValue()
	return n
}

// ValueAsBool returns the value read through [IsTrue].
func (e *Env) ValueAsBool() bool {
	v := e.Value()
	if v.Kind() != KindBool {
		e.traceMismatch(v, KindBool)
	}
	return isTrue(v)
}

func (e *Env) traceMismatch(v Value, want Kind) {
	e.logger.Trace().
		Caller(2).
		Str("value", v.String()).
		Stringer("kind", v.Kind()).
		Stringer("expected", want).
		Msgf("%s is not a %s", e.name, want)
}

// Set assigns raw to the cell and pushes it to the store when it differs
// from the current value.
//
// Boolean cells store [IsTrue] of the input and float cells parse it,
// rejecting anything that is not a number. List cells never take a whole
// value through Set: a scalar is written to item 0 and a list is rejected.
func (e *Env) Set(ctx context.Context, raw any) (Outcome, error) {
	v, ok := FromAny(raw)
	if !ok {
		e.logger.Warn().Any("value", raw).Msg("can't set to a value of unsupported type")
		return Rejected, nil
	}
	if e.IsBool() {
		v = Bool(isTrue(v))
	}
	if e.def.Kind() == KindFloat {
		f, ok := toFloat(v)
		if !ok {
			e.logger.Warn().Str("value", v.String()).Msg("can't set to non-float value")
			return Rejected, nil
		}
		v = f
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.value.IsList() {
		if v.IsList() {
			e.logger.Warn().Str("value", v.String()).Msg("list settings are changed item by item")
			return Rejected, nil
		}
		e.logger.Trace().Caller(1).Str("value", v.String()).Msg("scalar setter used on a list, setting item 0")
		return e.listSet(ctx, 0, v)
	}

	if identical(v, e.value) {
		return Unchanged, nil
	}
	e.value = v
	return Updated, e.push(ctx, v)
}
