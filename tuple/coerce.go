package tuple

// coerce converts a dynamically-typed decoded item into the statically
// requested type T. A direct type assertion is tried first; failing that,
// numeric items are widened/narrowed across Go's numeric kinds so that, for
// example, an item decoded as int64 can still be read out as an int32 via
// Get[int32]. Narrowing is not range-checked: a value outside T's range is
// truncated as by a Go conversion.
func coerce[T any](v any) (T, bool) {
	if out, ok := v.(T); ok {
		return out, true
	}

	var zero T
	switch any(zero).(type) {
	case int:
		if n, ok := toInt64(v); ok {
			return any(int(n)).(T), true
		}
	case int8:
		if n, ok := toInt64(v); ok {
			return any(int8(n)).(T), true
		}
	case int16:
		if n, ok := toInt64(v); ok {
			return any(int16(n)).(T), true
		}
	case int32:
		if n, ok := toInt64(v); ok {
			return any(int32(n)).(T), true
		}
	case int64:
		if n, ok := toInt64(v); ok {
			return any(n).(T), true
		}
	case uint:
		if n, ok := toUint64(v); ok {
			return any(uint(n)).(T), true
		}
	case uint8:
		if n, ok := toUint64(v); ok {
			return any(uint8(n)).(T), true
		}
	case uint16:
		if n, ok := toUint64(v); ok {
			return any(uint16(n)).(T), true
		}
	case uint32:
		if n, ok := toUint64(v); ok {
			return any(uint32(n)).(T), true
		}
	case uint64:
		if n, ok := toUint64(v); ok {
			return any(n).(T), true
		}
	case float32:
		if f, ok := toFloat64(v); ok {
			return any(float32(f)).(T), true
		}
	case float64:
		if f, ok := toFloat64(v); ok {
			return any(f).(T), true
		}
	case Timestamp:
		if n, ok := toInt64(v); ok {
			return any(Timestamp(n)).(T), true
		}
	case Interval:
		if n, ok := toInt64(v); ok {
			return any(Interval(n)).(T), true
		}
	case bool:
		if n, ok := toInt64(v); ok {
			return any(n != 0).(T), true
		}
	}
	return zero, false
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case uint64:
		return int64(x), true
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case Timestamp:
		return int64(x), true
	case Interval:
		return int64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func toUint64(v any) (uint64, bool) {
	switch x := v.(type) {
	case uint64:
		return x, true
	case int64:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	case int:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	case uint, uint8, uint16, uint32:
		n, _ := toInt64(x)
		return uint64(n), true
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	if n, ok := toInt64(v); ok {
		return float64(n), true
	}
	return 0, false
}
