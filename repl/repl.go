package repl

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"atomicgo.dev/keyboard/keys"
	"github.com/lollipopkit/kale/compiler"
	"github.com/lollipopkit/kale/compiler/ast"
	"github.com/lollipopkit/kale/compiler/parser"
	"github.com/lollipopkit/kale/config"
	"github.com/lollipopkit/kale/consts"
	. "github.com/lollipopkit/kale/json"
	"github.com/lollipopkit/kale/term"
	"github.com/lollipopkit/kale/utils"
)

const (
	chunkName  = "stdin"
	prompt     = "ready> "
	morePrompt = "  ...> "
)

var (
	linesHistory = []string{}
	helpMsgs     = []string{
		"`Esc`: Exit REPL",
		"`Tab`: Add 2 spaces",
		"`Ctrl + a`: Clear REPL history",
		"An empty line submits an unfinished form as is.",
		"",
		"`:load FILE`: Parse a file",
		"`:ops`: Show binary operators",
		"`:quit`: Exit REPL",
	}
	historyPath = config.Default().History
	prec        = parser.DefaultPrecedence()
	blockLines  = []string{}
)

func Repl(cfg *config.Config) {
	historyPath = cfg.History
	prec = cfg.Precedence()

	fmt.Printf(
		"kale (v%s) - %s for help\n",
		term.CYAN+consts.VERSION+term.NOCOLOR,
		term.GREEN+"`:help`"+term.NOCOLOR,
	)

	loadHistory()

	for {
		p := prompt
		if len(blockLines) > 0 {
			p = morePrompt
		}
		line := term.ReadLine(term.ReadLineConfig{
			History: linesHistory,
			Prompt:  p,
			KeyFunc: handleKeyboard,
		})

		if strings.TrimSpace(line) == "" {
			if len(blockLines) > 0 {
				eval(term.Stdout, true)
			}
			continue
		}
		if len(blockLines) == 0 && strings.HasPrefix(line, ":") {
			if !runCommand(term.Stdout, line) {
				return
			}
			updateHistory(line)
			continue
		}

		blockLines = append(blockLines, line)
		eval(term.Stdout, false)
	}
}

// Stream parses r without prompting and reports every form. It is used when
// stdin is not a terminal.
func Stream(r io.Reader, w io.Writer, prec *parser.Precedence) error {
	return compiler.NewSession(r, chunkName, prec).Run(func(form ast.TopLevel, err error) {
		report(w, form, err)
	})
}

// Report prints the forms of a parsed unit, then its errors.
func Report(w io.Writer, unit *compiler.Unit) {
	for _, form := range unit.Forms {
		report(w, form, nil)
	}
	for _, err := range unit.Errs {
		report(w, nil, err)
	}
}

func report(w io.Writer, form ast.TopLevel, err error) {
	if err != nil {
		fmt.Fprintf(w, "%s %v\n", term.Colorize(term.RED, "Error:"), err)
		return
	}

	var msg string
	switch form.(type) {
	case *ast.FuncDef:
		msg = "Parsed a function definition."
	case *ast.Extern:
		msg = "Parsed an extern"
	case *ast.TopLevelExp:
		msg = "Parsed a top-level expr"
	}
	fmt.Fprintf(w, "%s %s\n", term.Colorize(term.GREEN, msg), ast.String(form))
}

type result struct {
	form ast.TopLevel
	err  error
}

// eval parses the pending block. Unless force is set, a block that stops in
// the middle of a form waits for more lines.
func eval(w io.Writer, force bool) {
	block := strings.Join(blockLines, "\n")

	var results []result
	compiler.NewSession(strings.NewReader(block), chunkName, prec).Run(func(form ast.TopLevel, err error) {
		results = append(results, result{form, err})
	})
	if !force && len(results) > 0 && parser.IsIncomplete(results[len(results)-1].err) {
		return
	}

	for _, r := range results {
		report(w, r.form, r.err)
	}
	updateHistory(block)
	blockLines = []string{}
}

// runCommand handles a `:cmd` line. It returns false when the REPL should quit.
func runCommand(w io.Writer, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":help":
		fmt.Fprintln(w, strings.Join(helpMsgs, "\n"))
	case ":ops":
		fmt.Fprintln(w, prec.String())
	case ":quit", ":q":
		return false
	case ":load":
		if len(fields) != 2 {
			fmt.Fprintln(w, term.Colorize(term.YELLOW, "usage: :load FILE"))
			break
		}
		unit, err := compiler.ParseFile(fields[1], prec)
		if err != nil {
			report(w, nil, err)
			break
		}
		Report(w, unit)
	default:
		fmt.Fprintln(w, term.Colorize(term.YELLOW, "unknown command "+fields[0]+", try :help"))
	}
	return true
}

func handleKeyboard(key keys.Key, rs *[]rune, rIdx *int, lIdx *int) (bool, bool, error) {
	switch key.Code {
	case keys.Esc:
		os.Exit(0)
	case keys.CtrlA:
		linesHistory = []string{}
		*lIdx = 0
		writeHistory()
	}
	return false, false, nil
}

func _updateHistory(str string) {
	idx := slices.Index(linesHistory, str)
	if idx != -1 {
		linesHistory = slices.Delete(linesHistory, idx, idx+1)
	}
	linesHistory = append(linesHistory, str)
}

func updateHistory(str string) {
	str = strings.Trim(str, "\n")
	strs := strings.Split(str, "\n")
	for idx := range strs {
		_updateHistory(strs[idx])
	}
	writeHistory()
}

func writeHistory() {
	data, err := Json.MarshalIndent(linesHistory, "", "  ")
	if err != nil {
		term.Warn("[REPL] marshal history failed: %v", err)
		return
	}
	if err := os.WriteFile(historyPath, data, 0644); err != nil {
		term.Warn("[REPL] write history failed: %v", err)
	}
}

func loadHistory() {
	if !utils.Exist(historyPath) {
		writeHistory()
		return
	}
	data, err := os.ReadFile(historyPath)
	if err != nil {
		term.Warn("[REPL] read history failed: %v", err)
		return
	}
	if err := Json.Unmarshal(data, &linesHistory); err != nil {
		term.Warn("[REPL] unmarshal history failed: %v", err)
	}
}
