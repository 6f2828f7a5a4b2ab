package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
)

func printUsage(output io.Writer, flagSet *flag.FlagSet, envOptions string) {
	// This controls where PrintDefaults() prints, see below
	flagSet.SetOutput(output)

	_, _ = fmt.Fprintln(output, "Usage:")
	_, _ = fmt.Fprintln(output, "  numfmt [options] <number> ...")
	_, _ = fmt.Fprintln(output, "  ... | numfmt [options]")
	_, _ = fmt.Fprintln(output, "  numfmt [options] -input numbers.txt")
	_, _ = fmt.Fprintln(output)
	_, _ = fmt.Fprintln(output, "Formats numbers with thousands separators and a fixed number of decimals.")
	_, _ = fmt.Fprintln(output, "Input is read one number per line, compressed input will be transparently")
	_, _ = fmt.Fprintln(output, "decompressed.")
	_, _ = fmt.Fprintln(output)
	_, _ = fmt.Fprintln(output, "Put -- before the numbers if the first one is negative:")
	_, _ = fmt.Fprintln(output, "  numfmt -- -1234.5")
	_, _ = fmt.Fprintln(output)
	_, _ = fmt.Fprintln(output, "Environment:")
	if len(envOptions) == 0 {
		_, _ = fmt.Fprintln(output, "  Additional options are read from the NUMFMT environment variable if set.")
		_, _ = fmt.Fprintln(output, "  But currently, the NUMFMT environment variable is not set.")
	} else {
		_, _ = fmt.Fprintln(output, "  Additional options are read from the NUMFMT environment variable.")
		_, _ = fmt.Fprintf(output, "  Current setting: NUMFMT=\"%s\"\n", envOptions)
	}
	_, _ = fmt.Fprintln(output)
	_, _ = fmt.Fprintln(output, "Options:")

	flagSet.PrintDefaults()
}

// printProblemsHeader prints bug reporting information to stderr
func printProblemsHeader() {
	fmt.Fprintln(os.Stderr, "Please include the following information when reporting this problem.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Version:", versionString)
	fmt.Fprintln(os.Stderr, "NUMFMT :", os.Getenv("NUMFMT"))
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "GOOS    :", runtime.GOOS)
	fmt.Fprintln(os.Stderr, "GOARCH  :", runtime.GOARCH)
	fmt.Fprintln(os.Stderr, "Compiler:", runtime.Compiler)
	fmt.Fprintln(os.Stderr, "NumCPU  :", runtime.NumCPU())

	fmt.Fprintln(os.Stderr)
}
