package tuple

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// String renders t using an informational debug-print format: nil, true,
// "hello", 123, 123.4, {uuid}, and (a, b, c,) for a tuple (note the
// trailing comma, including for a singleton). This is not a wire format
// and carries no compatibility guarantee.
func String(t Tuple) string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < t.Count(); i++ {
		v, _ := t.Get(i)
		b.WriteString(ItemString(v))
		b.WriteString(", ")
	}
	s := b.String()
	return strings.TrimSuffix(s, " ") + ")"
}

// ItemString renders a single dynamically-typed item using the same debug
// format as String.
func ItemString(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case string:
		return strconv.Quote(x)
	case []byte:
		return fmt.Sprintf("%x", x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case Timestamp:
		return fmt.Sprintf("@%d", int64(x))
	case Interval:
		return fmt.Sprintf("%dticks", int64(x))
	case Alias:
		return x.String()
	case uuid.UUID:
		return "{" + x.String() + "}"
	case UUID64:
		return fmt.Sprintf("{%x}", [8]byte(x))
	case Tuple:
		return String(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
