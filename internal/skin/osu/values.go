package osu

import (
	"fmt"
	"strconv"
	"strings"

	"skinbridge/internal/skinerr"
)

func parseBool(v string) bool { return v == "1" }

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseInt(section, key, v string) (int, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, skinerr.Wrap(skinerr.ErrParse, "skin.ini", section, fmt.Sprintf("%s: %q is not a number", key, v), err)
	}
	return int(f), nil
}

func parseFloat(section, key, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, skinerr.Wrap(skinerr.ErrParse, "skin.ini", section, fmt.Sprintf("%s: %q is not a number", key, v), err)
	}
	return f, nil
}

func parseIntOr(v string, fallback int) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func parseFloatOr(v string, fallback float64) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func parseIntList(v string) []int {
	parts := strings.Split(v, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		out[i] = parseIntOr(strings.TrimSpace(p), 0)
	}
	return out
}

func parseFloatList(v string) []float64 {
	parts := strings.Split(v, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		out[i] = parseFloatOr(strings.TrimSpace(p), 0)
	}
	return out
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatFloatList(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, ",")
}

func formatIntList(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ToUnixPath converts a skin.ini path to the store key form.
func ToUnixPath(p string) string { return strings.ReplaceAll(p, `\`, "/") }

// ToWindowsPath converts a store key to the skin.ini path form.
func ToWindowsPath(p string) string { return strings.ReplaceAll(p, "/", `\`) }

// indexOf extracts the column index from keys such as KeyImage3D. It returns
// false when key does not have the prefix and suffix or the middle is not a
// decimal number. Matching ignores case.
func indexOf(key, prefix, suffix string) (int, bool) {
	key, prefix, suffix = strings.ToLower(key), strings.ToLower(prefix), strings.ToLower(suffix)
	rest, ok := strings.CutPrefix(key, prefix)
	if !ok {
		return 0, false
	}
	rest, ok = strings.CutSuffix(rest, suffix)
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// writer accumulates "Key: value" lines.
type writer struct {
	b strings.Builder
}

func (w *writer) kv(key, value string) {
	w.b.WriteString(key)
	w.b.WriteString(": ")
	w.b.WriteString(value)
	w.b.WriteByte('\n')
}

func (w *writer) kvIf(cond bool, key, value string) {
	if cond && value != "" {
		w.kv(key, value)
	}
}

func (w *writer) section(name string, keys int, body func(*writer)) {
	var sec writer
	body(&sec)
	if sec.b.Len() == 0 {
		return
	}
	fmt.Fprintf(&w.b, "// --= %s | %dk =--\n", name, keys)
	w.b.WriteString(sec.b.String())
	w.b.WriteByte('\n')
}

func (w *writer) String() string { return w.b.String() }
