package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/WJQSERVER/clex"

	"github.com/fsnotify/fsnotify"
)

const usage = `lex: tokenize C-family source files.

Usage:
  lex [flags] <input-file>

The input file may be - to read from standard input.

Flags:
  -count   print the number of tokens instead of the tokens themselves
  -json    print the tokens as a JSON array
  -watch   re-scan and re-print whenever the input file changes
`

func main() {
	countFlag := flag.Bool("count", false, "Print the token count instead of the tokens")
	jsonFlag := flag.Bool("json", false, "Print the tokens in JSON format")
	watchFlag := flag.Bool("watch", false, "Re-scan the file whenever it changes")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	path := flag.Arg(0)

	if *watchFlag {
		if path == "-" {
			fmt.Fprintln(os.Stderr, "Error: -watch cannot be combined with standard input.")
			os.Exit(1)
		}
		if err := watch(path, *countFlag, *jsonFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(path, *countFlag, *jsonFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run performs one full scan of the input and writes the result to
// standard output.
func run(path string, count, jsonOut bool) error {
	var src clex.TokenSource
	if path == "-" {
		src = clex.NewStreamLexer(os.Stdin)
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		src = clex.NewLexer(data)
	}

	switch {
	case count:
		n, err := clex.Count(src)
		if err != nil {
			return err
		}
		fmt.Println(n)
		return nil
	case jsonOut:
		return clex.NewEncoder(os.Stdout, clex.WithStyle(clex.StyleJSON)).Encode(src)
	default:
		return clex.NewEncoder(os.Stdout).Encode(src)
	}
}

// watch re-runs the scan on every change to the input file. Lex errors
// are reported but do not end the watch; only watcher failures do.
func watch(path string, count, jsonOut bool) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory rather than the file itself so that editors
	// replacing the file via rename do not drop the watch.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}

	rescan := func() {
		if err := run(path, count, jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	rescan()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			evAbs, err := filepath.Abs(ev.Name)
			if err != nil || evAbs != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				rescan()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
