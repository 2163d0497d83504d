// Package palette maps color and attribute names to ANSI escape sequences.
package palette

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reset returns the terminal to its default rendition.
const Reset = "\033[0m"

// codes holds every name a rule may use. Foregrounds are the standard and
// bright SGR sets, backgrounds carry a b_ prefix, and attributes are named
// after their effect.
var codes = map[string]string{
	"black":   "\033[30m",
	"red":     "\033[31m",
	"green":   "\033[32m",
	"yellow":  "\033[33m",
	"blue":    "\033[34m",
	"magenta": "\033[35m",
	"cyan":    "\033[36m",
	"white":   "\033[37m",

	"bright_black":   "\033[90m",
	"bright_red":     "\033[91m",
	"bright_green":   "\033[92m",
	"bright_yellow":  "\033[93m",
	"bright_blue":    "\033[94m",
	"bright_magenta": "\033[95m",
	"bright_cyan":    "\033[96m",
	"bright_white":   "\033[97m",

	"b_black":   "\033[40m",
	"b_red":     "\033[41m",
	"b_green":   "\033[42m",
	"b_yellow":  "\033[43m",
	"b_blue":    "\033[44m",
	"b_magenta": "\033[45m",
	"b_cyan":    "\033[46m",
	"b_white":   "\033[47m",

	"b_bright_black":   "\033[100m",
	"b_bright_red":     "\033[101m",
	"b_bright_green":   "\033[102m",
	"b_bright_yellow":  "\033[103m",
	"b_bright_blue":    "\033[104m",
	"b_bright_magenta": "\033[105m",
	"b_bright_cyan":    "\033[106m",
	"b_bright_white":   "\033[107m",

	"bold":      "\033[1m",
	"dim":       "\033[2m",
	"italic":    "\033[3m",
	"underline": "\033[4m",
	"blink":     "\033[5m",
	"reverse":   "\033[7m",
	"strike":    "\033[9m",
}

// Get resolves a color name to its escape sequence. Unknown names yield "".
func Get(name string) string {
	return codes[name]
}

var basics = [8]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

var groups = []struct {
	title string
	names []string
}{
	{"Foreground", basics[:]},
	{"Bright foreground", prefixed("bright_")},
	{"Background", prefixed("b_")},
	{"Bright background", prefixed("b_bright_")},
	{"Attributes", []string{"bold", "dim", "italic", "underline", "blink", "reverse", "strike"}},
}

func prefixed(prefix string) []string {
	names := make([]string, len(basics))
	for i, base := range basics {
		names[i] = prefix + base
	}
	return names
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	cellStyle    = lipgloss.NewStyle().Width(20)
)

// Demo writes the full color table to w, each name rendered in its own
// code so the terminal shows what the name produces.
func Demo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, group := range groups {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintln(bw, headingStyle.Render(group.title))
		for j, name := range group.names {
			if j > 0 && j%4 == 0 {
				fmt.Fprintln(bw)
			}
			fmt.Fprint(bw, codes[name]+cellStyle.Render(name)+Reset)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
