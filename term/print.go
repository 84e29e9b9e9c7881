package term

import (
	"fmt"
	"io"
	"os"
)

const (
	RED     = "\033[91m"
	GREEN   = "\033[32m"
	YELLOW  = "\033[93m"
	BLUE    = "\033[94m"
	MAGENTA = "\033[95m"
	CYAN    = "\033[96m"
	NOCOLOR = "\033[0m"
)

const (
	warn    = YELLOW + "[WAR]" + NOCOLOR + " "
	err     = RED + "[ERR]" + NOCOLOR + " "
	info    = CYAN + "[INF]" + NOCOLOR + " "
	success = GREEN + "[SUC]" + NOCOLOR + " "
)

var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Colorize wraps s in color and resets the terminal afterwards.
func Colorize(color, s string) string {
	return color + s + NOCOLOR
}

func printf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}

func Info(format string, args ...any) {
	printf(Stdout, info+format, args...)
}

func Suc(format string, args ...any) {
	printf(Stdout, success+format, args...)
}

func Warn(format string, args ...any) {
	printf(Stderr, warn+format, args...)
}

func Error(format string, args ...any) {
	printf(Stderr, err+format, args...)
}

func Cyan(format string, args ...any) {
	printf(Stdout, CYAN+format+NOCOLOR, args...)
}

func Green(format string, args ...any) {
	printf(Stdout, GREEN+format+NOCOLOR, args...)
}

func Yellow(format string, args ...any) {
	printf(Stdout, YELLOW+format+NOCOLOR, args...)
}

func Red(format string, args ...any) {
	printf(Stdout, RED+format+NOCOLOR, args...)
}
