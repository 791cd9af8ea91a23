package manager

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/snmpctl/internal/protocol"
)

const ticksPerSecond = 100

// FormatTimeTicks renders a hundredths-of-a-second count with a
// human-readable breakdown, e.g. "360000 (1 hours)".
func FormatTimeTicks(ticks uint32) string {
	totalSeconds := float64(ticks) / ticksPerSecond
	days := int(totalSeconds) / 86400
	hours := (int(totalSeconds) % 86400) / 3600
	minutes := (int(totalSeconds) % 3600) / 60
	seconds := totalSeconds - float64(int(totalSeconds)/60*60)

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d days", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hours", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minutes", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%.2f seconds", seconds))
	}
	return fmt.Sprintf("%d (%s)", ticks, strings.Join(parts, ", "))
}

// FormatValue renders one typed value for display.
func FormatValue(v protocol.Value) string {
	switch v.Type {
	case protocol.TypeTimeTicks:
		return FormatTimeTicks(v.Uint)
	case protocol.TypeCounter:
		return groupThousands(strconv.FormatUint(uint64(v.Uint), 10))
	case protocol.TypeInteger:
		return strconv.FormatInt(int64(v.Int), 10)
	case protocol.TypeString:
		return v.Str
	default:
		return fmt.Sprintf("unknown type 0x%02x", byte(v.Type))
	}
}

// FormatErrorCode names the semantic result codes.
func FormatErrorCode(code protocol.ErrorCode) string {
	switch code {
	case protocol.NoError:
		return "success"
	case protocol.NoSuchName:
		return "no such OID exists"
	case protocol.BadValue:
		return "bad value for OID type"
	case protocol.NotWritable:
		return "OID is read-only"
	default:
		return fmt.Sprintf("unknown error (%d)", byte(code))
	}
}

// TypeName is the display name of one value type.
func TypeName(t protocol.ValueType) string {
	switch t {
	case protocol.TypeInteger:
		return "INTEGER"
	case protocol.TypeString:
		return "STRING"
	case protocol.TypeCounter:
		return "COUNTER"
	case protocol.TypeTimeTicks:
		return "TIMETICKS"
	default:
		return fmt.Sprintf("0x%02x", byte(t))
	}
}

// ParseValue converts command-line type and value text into a typed value.
// Accepted type names: integer, string, counter, timeticks.
func ParseValue(typeName, text string) (protocol.Value, error) {
	switch strings.ToLower(strings.TrimSpace(typeName)) {
	case "integer", "int":
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return protocol.Value{}, fmt.Errorf("%w: %q is not a 32-bit integer", protocol.ErrBadValueText, text)
		}
		return protocol.IntegerValue(int32(n)), nil
	case "string", "str":
		return protocol.StringValue(text), nil
	case "counter":
		n, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return protocol.Value{}, fmt.Errorf("%w: %q is not a 32-bit counter", protocol.ErrBadValueText, text)
		}
		return protocol.CounterValue(uint32(n)), nil
	case "timeticks", "ticks":
		n, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return protocol.Value{}, fmt.Errorf("%w: %q is not a timeticks count", protocol.ErrBadValueText, text)
		}
		return protocol.TimeTicksValue(uint32(n)), nil
	default:
		return protocol.Value{}, fmt.Errorf("%w: unknown value type %q (integer, string, counter, timeticks)",
			protocol.ErrBadValueText, typeName)
	}
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
