package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pterm/pterm"
)

var (
	ErrorColorFG = pterm.FgRed
	ErrorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	WarnColorFG  = pterm.FgYellow
	WarnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	InfoColorFG  = pterm.FgLightGreen
	InfoStyleBG  = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	PathColorFG  = pterm.FgCyan
)

// PrintErrorMessage prints a tagged error message to w.  It is used for errors
// that occur before a reporter is available such as CLI usage errors.
func PrintErrorMessage(w io.Writer, tag string, err error) {
	fmt.Fprintf(w, "%s %s\n", ErrorStyleBG.Sprint(tag), ErrorColorFG.Sprint(err.Error()))
}

// PrintInfoMessage prints a tagged informational message to w regardless of
// log level.
func PrintInfoMessage(w io.Writer, tag, msg string) {
	fmt.Fprintf(w, "%s %s\n", InfoStyleBG.Sprint(tag), InfoColorFG.Sprint(msg))
}

// -----------------------------------------------------------------------------

// displayFatal displays a fatal error message.
func (r *Reporter) displayFatal(message string) {
	fmt.Fprintf(r.out, "%s %s\n", ErrorStyleBG.Sprint("fatal error"), ErrorColorFG.Sprint(message))
}

// displayStdError displays a standard Go error.
func (r *Reporter) displayStdError(err error) {
	fmt.Fprintf(r.out, "%s: %s %s\n", r.displayPath(), ErrorStyleBG.Sprint("error"), ErrorColorFG.Sprint(err.Error()))
}

// displayInfo displays an informational message.  Multi-line messages (eg.
// generated IR) begin on the line after the tag.
func (r *Reporter) displayInfo(tag, message string) {
	if strings.Contains(message, "\n") {
		fmt.Fprintf(r.out, "%s\n%s\n", InfoStyleBG.Sprint(tag), message)
	} else {
		fmt.Fprintf(r.out, "%s %s\n", InfoStyleBG.Sprint(tag), InfoColorFG.Sprint(message))
	}
}

// displayCompileMessage displays a compilation error or warning.  The label is
// the string to prefix the message with: eg. if we want to display an error,
// the label is "error".  The span may be nil in which case no position
// information will be printed.
func (r *Reporter) displayCompileMessage(label string, span *TextSpan, message string) {
	var styledLabel, styledMsg string
	if label == "error" {
		styledLabel = ErrorStyleBG.Sprint(label)
		styledMsg = ErrorColorFG.Sprint(message)
	} else {
		styledLabel = WarnStyleBG.Sprint(label)
		styledMsg = WarnColorFG.Sprint(message)
	}

	if span == nil {
		fmt.Fprintf(r.out, "%s: %s: %s\n", r.displayPath(), styledLabel, styledMsg)
	} else {
		fmt.Fprintf(r.out, "%s:%d:%d: %s: %s\n", r.displayPath(), span.StartLine+1, span.StartCol+1, styledLabel, styledMsg)

		if r.absPath != "" {
			r.displaySourceText(span)
		}
	}
}

// displayPath returns the coloured representative path of the source.
func (r *Reporter) displayPath() string {
	if r.reprPath == "" {
		return PathColorFG.Sprint("<input>")
	}

	return PathColorFG.Sprint(r.reprPath)
}

// -----------------------------------------------------------------------------

// displaySourceText displays a segment of source text defined by a text span.
// Failures to read the source are silently ignored: the message itself has
// already been displayed.
func (r *Reporter) displaySourceText(span *TextSpan) {
	file, err := os.Open(r.absPath)
	if err != nil {
		return
	}
	defer file.Close()

	// Collect all the source lines containing the given source text.
	var lines []string
	sc := bufio.NewScanner(file)
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	if sc.Err() != nil || len(lines) == 0 {
		return
	}

	// Calculate the minimum line indentation.
	minIndent := math.MaxInt32
	for _, line := range lines {
		lineIndent := len(line) - len(strings.TrimLeft(line, " "))
		if lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	// Calculate the maximum line number length.
	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))

	// Generate the format string for line numbers.
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		// Print the line number and separator bar.
		fmt.Fprintf(r.out, lineNumFmtStr, i+span.StartLine+1)

		// Print the source text with the leading indent trimmed off.
		fmt.Fprintln(r.out, line[minIndent:])

		// Print the line and bar used for the line for carret underlining.
		fmt.Fprint(r.out, strings.Repeat(" ", maxLineNumLen), " | ")

		// Only the first line starts underlining part way through.
		carretPrefixCount := 0
		if i == 0 {
			carretPrefixCount = clampZero(span.StartCol - minIndent)
		}

		// Only the last line stops underlining before its end.
		carretSuffixCount := 0
		if i == len(lines)-1 {
			carretSuffixCount = clampZero(utf8.RuneCountInString(line) - span.EndCol)
		}

		// Zero-width spans (eg. end of input) still get a single carret.
		carretCount := utf8.RuneCountInString(line) - carretSuffixCount - carretPrefixCount - minIndent
		if carretCount < 1 {
			carretCount = 1
		}

		fmt.Fprint(r.out, strings.Repeat(" ", carretPrefixCount))
		fmt.Fprintln(r.out, ErrorColorFG.Sprint(strings.Repeat("^", carretCount)))
	}
}

// clampZero returns n if it is positive and zero otherwise.
func clampZero(n int) int {
	if n < 0 {
		return 0
	}

	return n
}
