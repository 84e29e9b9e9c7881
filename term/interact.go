package term

import (
	"os"
	"regexp"

	"atomicgo.dev/cursor"
	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
)

var (
	doubleByteCharacterRegexp = regexp.MustCompile(`[^\x00-\xff]`)
)

const (
	_prompt = "ready> "
)

type KeyListenFunc func(
	key keys.Key,
	rs *[]rune,
	rIdx *int,
	lIdx *int,
) (
	stop bool,
	reset bool,
	err error,
)

type ReadLineConfig struct {
	// History is the history of lines, oldest first.
	History []string
	// Prompt is the prompt to show.
	Prompt string
	// KeyFunc handles keys the editor does not know about.
	// rs is the current line runes.
	// rIdx is the current rune index.
	// lIdx is the current history index.
	KeyFunc KeyListenFunc
}

// editor is the state of the line being typed.
type editor struct {
	prompt  string
	history []string
	rs      []rune
	rIdx    int
	lIdx    int
}

func newEditor(config ReadLineConfig) *editor {
	if len(config.Prompt) == 0 {
		config.Prompt = _prompt
	}
	return &editor{
		prompt:  config.Prompt,
		history: config.History,
		lIdx:    len(config.History),
	}
}

func (e *editor) insert(runes ...rune) {
	rs := make([]rune, 0, len(e.rs)+len(runes))
	rs = append(rs, e.rs[:e.rIdx]...)
	rs = append(rs, runes...)
	e.rs = append(rs, e.rs[e.rIdx:]...)
	e.rIdx += len(runes)
}

func (e *editor) backspace() bool {
	if e.rIdx == 0 {
		return false
	}
	e.rs = append(e.rs[:e.rIdx-1], e.rs[e.rIdx:]...)
	e.rIdx--
	return true
}

func (e *editor) delete() bool {
	if e.rIdx >= len(e.rs) {
		return false
	}
	e.rs = append(e.rs[:e.rIdx], e.rs[e.rIdx+1:]...)
	return true
}

func (e *editor) left() {
	if e.rIdx > 0 {
		e.rIdx--
	}
}

func (e *editor) right() {
	if e.rIdx < len(e.rs) {
		e.rIdx++
	}
}

// up recalls the previous history line.
func (e *editor) up() bool {
	if e.lIdx == 0 {
		return false
	}
	e.lIdx--
	e.setLine(e.history[e.lIdx])
	return true
}

// down recalls the next history line, or clears the line past the newest one.
func (e *editor) down() bool {
	switch {
	case e.lIdx < len(e.history)-1:
		e.lIdx++
		e.setLine(e.history[e.lIdx])
	case e.lIdx == len(e.history)-1:
		e.lIdx++
		e.setLine("")
	default:
		return false
	}
	return true
}

func (e *editor) setLine(s string) {
	e.rs = []rune(s)
	e.rIdx = len(e.rs)
}

// column is where the cursor sits on screen, counting wide runes twice.
func (e *editor) column() int {
	pRunes := []rune(e.prompt)
	return calcIdx(pRunes, len(pRunes)) + calcIdx(e.rs, e.rIdx)
}

func (e *editor) redraw() {
	cursor.ClearLine()
	cursor.StartOfLine()
	os.Stdout.WriteString(e.prompt + string(e.rs))
}

// ReadLine reads one line from the keyboard with basic editing and history.
// Ctrl+C exits the process.
func ReadLine(config ReadLineConfig) string {
	e := newEditor(config)
	os.Stdout.WriteString(e.prompt)

	keyboard.Listen(func(key keys.Key) (stop bool, err error) {
		redraw := false
		switch key.Code {
		default:
			if config.KeyFunc != nil {
				stop, reset, err := config.KeyFunc(key, &e.rs, &e.rIdx, &e.lIdx)
				if reset {
					e.redraw()
				}
				if stop || err != nil {
					return stop, err
				}
			}
		case keys.CtrlC:
			os.Stdout.WriteString("\n")
			os.Exit(0)
		case keys.Enter:
			os.Stdout.WriteString("\n")
			return true, nil
		case keys.RuneKey:
			e.insert(key.Runes...)
			redraw = true
		case keys.Space:
			e.insert(' ')
			redraw = true
		case keys.Tab:
			e.insert(' ', ' ')
			redraw = true
		case keys.Backspace:
			redraw = e.backspace()
		case keys.Delete:
			redraw = e.delete()
		case keys.Left:
			e.left()
		case keys.Right:
			e.right()
		case keys.Up:
			redraw = e.up()
		case keys.Down:
			redraw = e.down()
		}

		if redraw {
			e.redraw()
		}
		cursor.HorizontalAbsolute(e.column())
		return false, nil
	})
	return string(e.rs)
}

func calcIdx(rs []rune, runeIdx int) int {
	idx := 0
	for rIdx, r := range rs {
		if rIdx >= runeIdx {
			break
		}
		if isHan(r) {
			idx += 2
		} else {
			idx++
		}
	}
	return idx
}

func isHan(r rune) bool {
	return doubleByteCharacterRegexp.MatchString(string(r))
}
