package clifmt

import (
	"fmt"
	"os"
)

var colorEnabled = os.Getenv("NO_COLOR") == ""

func style(code, s string) string {
	if !colorEnabled {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

func Headerf(format string, args ...any) string {
	return style("1", fmt.Sprintf(format, args...))
}

func Key(s string) string     { return style("36", s) }
func Dim(s string) string     { return style("2", s) }
func Success(s string) string { return style("32", s) }
func Warn(s string) string    { return style("33", s) }
