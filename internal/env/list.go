package env

import (
	"context"
	"slices"
)

// wrap turns a scalar into a one-element list. Null becomes an empty list.
func wrap(v Value) Value {
	if v.IsNull() {
		return List()
	}
	return List(v)
}

// listPad makes sure the list holds at least idx+1 items, appending the
// per-element default. The caller holds e.mu, and e.value must already be a
// list: listSet promotes a scalar value to a one-item list before padding, and
// ListMove rejects a scalar value before padding. It does not reconcile.
func (e *Env) listPad(idx int) {
	if idx < e.value.Len() {
		return
	}

	pad := Null()
	switch {
	case !e.def.IsList():
		e.logger.Error().Stringer("default_kind", e.def.Kind()).Msg("default type should be list, using null as default")
	case e.def.Len() == 0:
		e.logger.Error().Int("len", e.def.Len()).Msg("default list len should be 1")
	default:
		pad = e.def.items[0]
	}

	for e.value.Len() <= idx {
		e.value.items = append(e.value.items, pad)
	}
}

// ListSet assigns raw to item idx, padding the list with the per-element
// default when it is too short. A scalar cell value is first promoted to a
// one-element list.
func (e *Env) ListSet(ctx context.Context, idx int, raw any) (Outcome, error) {
	v, ok := FromAny(raw)
	if !ok {
		e.logger.Warn().Any("value", raw).Int("idx", idx).Msg("can't set item to a value of unsupported type")
		return Rejected, nil
	}
	if e.IsBool() {
		v = Bool(isTrue(v))
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.listSet(ctx, idx, v)
}

func (e *Env) listSet(ctx context.Context, idx int, v Value) (Outcome, error) {
	if idx < 0 {
		e.logger.Warn().Int("idx", idx).Msg("negative list index")
		return Rejected, nil
	}
	if v.IsList() {
		e.logger.Warn().Str("value", v.String()).Int("idx", idx).Msg("list items must be scalars")
		return Rejected, nil
	}

	if !e.value.IsList() {
		e.logger.Trace().Caller(2).Str("value", e.value.String()).Msg("not a list, converting")
		e.value = wrap(e.value)
	}

	if idx < e.value.Len() && identical(e.value.items[idx], v) {
		return Unchanged, nil
	}
	e.listPad(idx)

	e.logger.Debug().Int("idx", idx).Str("value", v.String()).Msg("list_set")
	e.value.items[idx] = v
	return Updated, e.push(ctx, e.value)
}

// ListGet returns item idx. A scalar cell value is first promoted to a
// one-element list. When idx is past the end and the cell has a per-element
// default, the list is padded up to idx and pushed; without one the empty
// string is returned.
func (e *Env) ListGet(ctx context.Context, idx int) (Value, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if idx < 0 {
		e.logger.Warn().Int("idx", idx).Msg("negative list index")
		return String(""), nil
	}
	if !e.value.IsList() {
		e.logger.Trace().Caller(1).Str("value", e.value.String()).Msg("not a list, converting")
		e.value = wrap(e.value)
	}
	if idx < e.value.Len() {
		return e.value.items[idx].Clone(), nil
	}

	if e.def.IsList() && e.def.Len() == 1 {
		for e.value.Len() <= idx {
			e.value.items = append(e.value.items, e.def.items[0])
		}
		err := e.push(ctx, e.value)
		return e.value.items[idx].Clone(), err
	}

	if !e.def.IsList() {
		e.logger.Error().Stringer("default_kind", e.def.Kind()).Msg("default type should be list")
	} else {
		e.logger.Error().Int("len", e.def.Len()).Msg("default list len should be 1")
	}
	e.logger.Trace().
		Caller(1).
		Int("len", e.value.Len()).
		Int("idx", idx).
		Msg("index past the end and no default to pad with")
	return String(""), nil
}

// ListRemove truncates the list so that item idx and everything after it is
// gone: [a b c d] with idx 1 becomes [a].
func (e *Env) ListRemove(ctx context.Context, idx int) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.value.IsList() {
		e.logger.Error().Str("value", e.value.String()).Msg("not a list, giving up")
		return Rejected, nil
	}
	if idx < 0 {
		e.logger.Warn().Int("idx", idx).Msg("negative list index")
		return Rejected, nil
	}
	return e.truncate(ctx, idx)
}

// ListRemoveLast drops the last item of the list.
func (e *Env) ListRemoveLast(ctx context.Context) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.value.IsList() {
		e.logger.Error().Str("value", e.value.String()).Msg("not a list, giving up")
		return Rejected, nil
	}
	if e.value.Len() == 0 {
		return Unchanged, nil
	}
	return e.truncate(ctx, e.value.Len()-1)
}

func (e *Env) truncate(ctx context.Context, idx int) (Outcome, error) {
	outcome := Unchanged
	if idx < e.value.Len() {
		e.value.items = slices.Clip(e.value.items[:idx])
		outcome = Updated
	}
	return outcome, e.push(ctx, e.value)
}

// ListMove moves item from to position to, keeping the order of the other
// items: [a b c d] moving 0 to 2 becomes [b c a d]. The list is padded first
// so both indices exist.
func (e *Env) ListMove(ctx context.Context, from, to int) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.value.IsList() {
		e.logger.Error().Str("value", e.value.String()).Msg("not a list, giving up")
		return Rejected, nil
	}
	if from < 0 || to < 0 {
		e.logger.Warn().Int("from", from).Int("to", to).Msg("negative list index")
		return Rejected, nil
	}

	before := e.value.Len()
	e.listPad(max(from, to))

	outcome := Unchanged
	if from != to {
		item := e.value.items[from]
		items := slices.Delete(e.value.items, from, from+1)
		e.value.items = slices.Insert(items, to, item)
		outcome = Updated
	} else if e.value.Len() != before {
		outcome = Updated
	}
	return outcome, e.push(ctx, e.value)
}
