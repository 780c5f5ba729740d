package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// 不同驱动返回的类型不一样：sqlite 和 pgx 返回 int64、bool、time.Time，
// mysql 在未开启 parseTime 时返回字符串

func toInt64(v any) (int64, error) {
	switch val := v.(type) {
	case int64:
		return val, nil
	case int32:
		return int64(val), nil
	case int:
		return int64(val), nil
	case uint32:
		return int64(val), nil
	case float64:
		// JSON 解码出来的数字是 float64，只接受整数值
		if val != math.Trunc(val) || val < math.MinInt64 || val >= math.MaxInt64 {
			return 0, fmt.Errorf("models: %v is not an integer", val)
		}
		return int64(val), nil
	case string:
		return strconv.ParseInt(val, 10, 64)
	case []byte:
		return strconv.ParseInt(string(val), 10, 64)
	default:
		return 0, fmt.Errorf("models: cannot use %T as integer", v)
	}
}

func toBool(v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case int64:
		return val != 0, nil
	case int:
		return val != 0, nil
	case string:
		return parseBool(val)
	case []byte:
		return parseBool(string(val))
	default:
		return false, fmt.Errorf("models: cannot use %T as boolean", v)
	}
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "t", "true", "1", "y", "yes":
		return true, nil
	case "f", "false", "0", "n", "no":
		return false, nil
	}
	return false, fmt.Errorf("models: cannot parse %q as boolean", s)
}

func toString(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case []byte:
		return string(val), nil
	default:
		return "", fmt.Errorf("models: cannot use %T as string", v)
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// toTimePtr accepts nil for NULL timestamps.
func toTimePtr(v any) (*time.Time, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &val, nil
	case *time.Time:
		if val == nil {
			return nil, nil
		}
		t := *val
		return &t, nil
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, val); err == nil {
				return &t, nil
			}
		}
		return nil, fmt.Errorf("models: cannot parse %q as timestamp", val)
	case []byte:
		return toTimePtr(string(val))
	default:
		return nil, fmt.Errorf("models: cannot use %T as timestamp", v)
	}
}

func timeValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
