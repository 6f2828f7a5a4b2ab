package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/tripletfmt/numfmt/internal"
	"github.com/tripletfmt/numfmt/internal/reader"
	"github.com/tripletfmt/numfmt/internal/util"
	"github.com/tripletfmt/numfmt/pkg/numfmt"
)

var versionString = "Should be set when building: go build -ldflags \"-X main.versionString=1.2.3\""

func main() {
	var logs internal.LogWriter
	defer func() {
		err := recover()
		if err == nil {
			return
		}

		printProblemsHeader()
		fmt.Fprint(os.Stderr, logs.String())
		panic(err)
	}()

	log.SetOutput(&logs)
	exitCode := run(
		os.Args[1:],
		os.Getenv("NUMFMT"),
		os.Stdin,
		term.IsTerminal(int(os.Stdin.Fd())),
		os.Stdout,
		os.Stderr,
	)

	if !logs.IsEmpty() {
		fmt.Fprint(os.Stderr, logs.String())
	}
	os.Exit(exitCode)
}

func parseSeparator(option string, name string) (rune, error) {
	if utf8.RuneCountInString(option) != 1 {
		return utf8.RuneError, fmt.Errorf("%s separator must be exactly one character, got %q", name, option)
	}

	separator, _ := utf8.DecodeRuneInString(option)
	return separator, nil
}

func parseNumbers(words []string) ([]float64, error) {
	numbers := make([]float64, 0, len(words))
	for _, word := range words {
		number, err := strconv.ParseFloat(word, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", word)
		}
		numbers = append(numbers, number)
	}

	return numbers, nil
}

func readInputFile(filename string) ([]float64, error) {
	input, err := reader.ZOpen(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := input.Close(); err != nil {
			log.Debug("Failed to close ", filename, ": ", err)
		}
	}()

	return reader.ReadNumbers(input)
}

// Pads with spaces on the left so that all texts end in the same column
func alignRight(texts []string) []string {
	width := 0
	for _, text := range texts {
		width = max(width, uniseg.StringWidth(text))
	}

	aligned := make([]string, 0, len(texts))
	for _, text := range texts {
		aligned = append(aligned, strings.Repeat(" ", width-uniseg.StringWidth(text))+text)
	}
	return aligned
}

// Returns the process exit code
func run(args []string, envOptions string, stdin io.Reader, stdinIsTerminal bool, stdout io.Writer, stderr io.Writer) int {
	flagSet := flag.NewFlagSet("numfmt", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}

	printVersion := flagSet.Bool("version", false, "Prints the numfmt version number")
	debug := flagSet.Bool("debug", false, "Print debug logs after exiting")
	trace := flagSet.Bool("trace", false, "Print trace logs after exiting")
	precision := flagSet.Int("precision", 2,
		"Number of decimals, at most 6 are shown. Negative values zero out trailing integer digits.")
	thousandsOption := flagSet.String("thousands", ".", "Thousands separator, '.' or ','")
	decimalOption := flagSet.String("decimal", ",", "Decimal separator, '.' or ','")
	align := flagSet.Bool("align", false, "Right align the formatted numbers")
	inputFile := flagSet.String("input", "", "Read numbers from this file, one per line. Compressed files are fine.")

	// Combine flags from environment and from command line
	flags := args
	envOptions = strings.TrimSpace(envOptions)
	if len(envOptions) > 0 {
		flags = append(strings.Fields(envOptions), flags...)
	}

	err := flagSet.Parse(flags)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(stdout, flagSet, envOptions)
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "ERROR: Command line parsing failed:", err.Error())
		fmt.Fprintln(stderr)
		printUsage(stderr, flagSet, envOptions)
		return 1
	}

	if *printVersion {
		fmt.Fprintln(stdout, versionString)
		return 0
	}

	log.SetLevel(log.InfoLevel)
	if *trace {
		log.SetLevel(log.TraceLevel)
	} else if *debug {
		log.SetLevel(log.DebugLevel)
	}

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.RFC3339Nano,
	})

	options := numfmt.Options{Precision: *precision}
	options.ThousandsSeparator, err = parseSeparator(*thousandsOption, "Thousands")
	if err == nil {
		options.DecimalSeparator, err = parseSeparator(*decimalOption, "Decimal")
	}
	if err == nil {
		err = options.Validate()
	}
	if err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		return 1
	}
	log.Debugf("Formatting options: %+v", options)

	var numbers []float64
	switch {
	case len(flagSet.Args()) > 0 && *inputFile != "":
		fmt.Fprintln(stderr, "ERROR: Expected either numbers or -input, got both:", flagSet.Args())
		fmt.Fprintln(stderr)
		printUsage(stderr, flagSet, envOptions)
		return 1

	case len(flagSet.Args()) > 0:
		numbers, err = parseNumbers(flagSet.Args())

	case *inputFile != "":
		numbers, err = readInputFile(*inputFile)

	case stdinIsTerminal:
		fmt.Fprintln(stderr, "ERROR: Numbers or input pipe required")
		fmt.Fprintln(stderr)
		printUsage(stderr, flagSet, envOptions)
		return 1

	default:
		numbers, err = reader.ReadNumbers(stdin)
	}
	if err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		return 1
	}

	exitCode := 0
	formatted := make([]string, 0, len(numbers))
	for _, number := range numbers {
		text, err := options.Format(number)
		if err != nil {
			fmt.Fprintln(stderr, "ERROR:", err)
			exitCode = 1
			continue
		}
		formatted = append(formatted, text)
	}

	if *align {
		formatted = alignRight(formatted)
	}

	for _, text := range formatted {
		fmt.Fprintln(stdout, text)
	}

	log.Debugf("Formatted %s numbers", util.FormatInt(len(formatted)))
	return exitCode
}
