package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Prompt reports interactively on the terminal. Fatal errors pause for Enter
// before exiting so the message stays visible when the program was launched
// outside a shell.
type Prompt struct {
	in   *bufio.Reader
	out  io.Writer
	exit func(int)
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		in:   bufio.NewReader(in),
		out:  out,
		exit: os.Exit,
	}
}

func (p *Prompt) Warningf(format string, args ...any) {
	fmt.Fprintf(p.out, "WARNING: "+format+"\n", args...)
}

func (p *Prompt) Errorf(format string, args ...any) {
	fmt.Fprintf(p.out, "ERROR: "+format+"\n", args...)
}

func (p *Prompt) Fatalf(format string, args ...any) {
	p.Errorf(format, args...)
	fmt.Fprint(p.out, "Press Enter to exit.")
	p.in.ReadString('\n')
	p.exit(1)
}

// ChooseFile lists the files in dir carrying one of the given extensions and
// reads a numbered selection. It re-prompts until the selection is valid.
func (p *Prompt) ChooseFile(dir string, exts ...string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range exts {
			if ext == want {
				files = append(files, entry.Name())
				break
			}
		}
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no matching files in %s", dir)
	}
	sort.Strings(files)

	fmt.Fprintf(p.out, "Files in %s:\n", dir)
	for i, name := range files {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, name)
	}

	for {
		fmt.Fprintf(p.out, "Select a file [1-%d]: ", len(files))
		line, err := p.in.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read selection: %w", err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 || n > len(files) {
			fmt.Fprintln(p.out, "Invalid selection.")
			continue
		}
		return filepath.Join(dir, files[n-1]), nil
	}
}
