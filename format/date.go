package format

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/hasbyte1/cronies/data"
)

// DefaultDayNames are the short weekday names, Monday first.
var DefaultDayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DateFormatter renders dates with letter-token patterns such as
// "YYYY/MM/dd HH:mm".
//
// A token is a maximal run of the letters Y, M, D, H, A, I, S, W, K, E and F
// (either case); any other text is copied verbatim. Supported tokens:
//
//	YYYY  year                     2016
//	MM    month, 2 digits          07
//	dd    day of month, 2 digits   09
//	DD    day of year              191
//	HH    hour 0-23                14
//	hh    hour 1-12                2
//	hhaa  hour 1-12 with marker    2pm
//	mm    minute, 2 digits         05
//	ss    second, 2 digits         09
//	SS    millisecond              978
//	ww    week of year             28
//	WW    week of month            2
//	FF    day-of-week in month     2
//	aa    am/pm marker             pm
//	EE    day name                 Sat
//
// Unrecognized tokens are logged at error level and produce no output.
//
// The zero value is ready to use: English day names, local time and no
// logging.
type DateFormatter struct {
	// DayNames, Monday first. Empty entries fall back to DefaultDayNames.
	DayNames [7]string
	// Location used for timestamps and calendar arithmetic. Nil means
	// time.Local.
	Location *time.Location
	// Logger receives unrecognized-token diagnostics. Nil disables them.
	Logger *zap.Logger
}

func isTokenLetter(r rune) bool {
	switch unicode.ToUpper(r) {
	case 'Y', 'M', 'D', 'H', 'A', 'I', 'S', 'W', 'K', 'E', 'F':
		return true
	}
	return false
}

type segment struct {
	text  string
	token bool
}

func tokenize(pattern string) []segment {
	var (
		out []segment
		buf strings.Builder
		tok bool
	)
	flush := func() {
		if buf.Len() > 0 {
			out = append(out, segment{text: buf.String(), token: tok})
			buf.Reset()
		}
	}
	for _, r := range pattern {
		if isTokenLetter(r) != tok {
			flush()
			tok = !tok
		}
		buf.WriteRune(r)
	}
	flush()
	return out
}

// Format renders t according to pattern.
func (f DateFormatter) Format(t time.Time, pattern string) string {
	if f.Location != nil {
		t = t.In(f.Location)
	}
	var sb strings.Builder
	for _, seg := range tokenize(pattern) {
		if !seg.token {
			sb.WriteString(seg.text)
			continue
		}
		s, ok := f.token(t, seg.text)
		if !ok {
			f.logger().Error("unrecognized date format token",
				zap.String("token", seg.text),
				zap.String("pattern", pattern))
			continue
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// FormatValue renders v when it is a time.Time or a millisecond Unix
// timestamp. It reports false for any other value.
func (f DateFormatter) FormatValue(v any, pattern string) (string, bool) {
	if t, ok := v.(time.Time); ok {
		return f.Format(t, pattern), true
	}
	if ms, ok := data.ToFloat(v); ok {
		return f.Format(time.UnixMilli(int64(ms)).In(f.location()), pattern), true
	}
	return "", false
}

func (f DateFormatter) logger() *zap.Logger {
	if f.Logger == nil {
		return zap.NewNop()
	}
	return f.Logger
}

func (f DateFormatter) location() *time.Location {
	if f.Location == nil {
		return time.Local
	}
	return f.Location
}

func (f DateFormatter) dayName(wd time.Weekday) string {
	i := (int(wd) + 6) % 7
	if f.DayNames[i] != "" {
		return f.DayNames[i]
	}
	return DefaultDayNames[i]
}

func twelveHour(h int) int {
	if h%12 == 0 {
		return 12
	}
	return h % 12
}

func marker(h int) string {
	if h < 12 {
		return "am"
	}
	return "pm"
}

func (f DateFormatter) token(t time.Time, tok string) (string, bool) {
	switch tok {
	case "YYYY":
		return strconv.Itoa(t.Year()), true
	case "MM":
		return AddLeading(int(t.Month()), ""), true
	case "dd":
		return AddLeading(t.Day(), ""), true
	case "DD":
		lastOfPrevYear := time.Date(t.Year(), time.January, 0, 0, 0, 0, 0, t.Location())
		return strconv.Itoa(int(math.Floor(DateDifference(lastOfPrevYear, t, Day)))), true
	case "HH":
		return strconv.Itoa(t.Hour()), true
	case "hh":
		return strconv.Itoa(twelveHour(t.Hour())), true
	case "hhaa":
		return strconv.Itoa(twelveHour(t.Hour())) + marker(t.Hour()), true
	case "mm":
		return AddLeading(t.Minute(), ""), true
	case "ss":
		return AddLeading(t.Second(), ""), true
	case "SS":
		return strconv.Itoa(t.Nanosecond() / int(time.Millisecond)), true
	case "ww":
		firstOfYear := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
		return strconv.Itoa(int(math.Ceil(DateDifference(firstOfYear, t, Day) / 7))), true
	case "WW":
		return strconv.Itoa(t.Day()/7 + 1), true
	case "FF":
		firstWeekday := int(time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).Weekday())
		return strconv.Itoa(int(math.Ceil(float64(t.Day()+firstWeekday) / 7))), true
	case "aa":
		return marker(t.Hour()), true
	case "EE":
		return f.dayName(t.Weekday()), true
	}
	return "", false
}

// Units accepted by DateDifference.
const (
	Day    = 24 * time.Hour
	Hour   = time.Hour
	Minute = time.Minute
)

// DateDifference returns (to - from) measured in unit, including the
// fractional part.
func DateDifference(from, to time.Time, unit time.Duration) float64 {
	return float64(to.Sub(from)) / float64(unit)
}
