package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/peterh/liner"

	racket "github.com/ZibingZhang/racket-interpreter"
)

const (
	appName     = "racket"
	historyFile = ".racket_history"
	promptMain  = "> "
	promptCont  = "  "
)

var banner = fmt.Sprintf("Racket student-language interpreter %s\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", racket.Version)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "test":
		os.Exit(cmdTest(os.Args[2:]))
	case "version":
		fmt.Println(racket.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Racket student-language interpreter %s (built %s)

Usage:
  %s run [--watch] <file.rkt>   Run a program (with --watch, rerun on change).
  %s repl                       Start the interactive prompt.
  %s test <suite.yaml>          Run a conformance suite.
  %s version                    Print the version.

`, racket.Version, racket.BuildDate, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	watch := fs.Bool("watch", false, "rerun the program whenever the file changes")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run [--watch] <file.rkt>\n", appName)
		return 2
	}
	file := fs.Arg(0)

	if !*watch {
		return runFile(file)
	}

	code := runFile(file)
	if err := watchAndRerun(file); err != nil {
		fmt.Fprintln(os.Stderr, red(fmt.Sprintf("%s: %v", appName, err)))
		return 1
	}
	return code
}

func runFile(file string) int {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	res := racket.Interpret(string(src))
	printOutputs(res, false)
	if res.Err != nil {
		fmt.Fprintln(os.Stderr, red(racket.WrapErrorWithName(res.Err, file, string(src)).Error()))
		return 1
	}
	if n := res.TestsPassed + res.TestsFailed; n > 0 {
		if res.TestsFailed == 0 {
			fmt.Println(green(fmt.Sprintf("All %d tests passed.", n)))
		} else {
			fmt.Println(red(fmt.Sprintf("%d of %d tests failed.", res.TestsFailed, n)))
			return 1
		}
	}
	return 0
}

func printOutputs(res racket.Result, colorValues bool) {
	for _, o := range res.Outputs {
		if o.Kind == racket.OutTest {
			line := o.Test.String()
			if o.Test.Passed {
				fmt.Println(green(line))
			} else {
				fmt.Println(red(line))
			}
			continue
		}
		if colorValues {
			fmt.Println(blue(o.Text))
		} else {
			fmt.Println(o.Text)
		}
	}
}

// watchAndRerun blocks, rerunning the file after each write to it. It watches
// the parent directory because editors often replace the file on save.
func watchAndRerun(file string) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	fmt.Printf("watching %s\n", file)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Name != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Printf("\n-- %s changed --\n", file)
			runFile(file)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := racket.NewInterpreter()

	for {
		code, ok := readCompleteForm(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(code)
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return 0
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}
		if trimmed == "" {
			continue
		}

		res := ip.Run(code)
		printOutputs(res, true)
		if res.Err != nil {
			fmt.Fprintln(os.Stderr, red(racket.WrapErrorWithSource(res.Err, code).Error()))
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

// readCompleteForm keeps prompting for continuation lines while the input so
// far ends inside an unclosed form.
func readCompleteForm(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		_, perr := racket.Parse(src)
		if perr == nil {
			return src, true
		}
		if racket.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}

// -----------------------------------------------------------------------------
// test
// -----------------------------------------------------------------------------

func cmdTest(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s test <suite.yaml>\n", appName)
		return 2
	}

	suite, err := racket.LoadSuite(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}

	failed := 0
	for _, r := range suite.Run() {
		if r.Passed {
			fmt.Println(green("ok   " + r.Name))
			continue
		}
		failed++
		fmt.Println(red("FAIL " + r.Name))
		fmt.Println(red("     " + r.Detail))
	}
	fmt.Printf("%s: %d case(s), %d failed\n", suite.Name, len(suite.Cases), failed)
	if failed > 0 {
		return 1
	}
	return 0
}
