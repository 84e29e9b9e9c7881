package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/lollipopkit/kale/consts"
)

var (
	// Output is where debug lines go. Tests may swap it.
	Output io.Writer = os.Stderr
)

func log(level, fm string, a ...any) {
	if !consts.Debug {
		return
	}
	s := fmt.Sprintf("[%s] %s\n", level, fm)
	fmt.Fprintf(Output, s, a...)
}

func I(fm string, a ...any) {
	log("INFO", fm, a...)
}

func E(fm string, a ...any) {
	log("ERROR", fm, a...)
}

func W(fm string, a ...any) {
	log("WARN", fm, a...)
}
