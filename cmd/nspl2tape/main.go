// Command nspl2tape reads a pre-tokenized NSPL source file and writes the
// TAPE program it compiles to on stdout, optionally teeing a copy to a
// second file via -tee.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/mjdarby/nspl2tape/compiler"
	"github.com/mjdarby/nspl2tape/internal/flushio"
	"github.com/mjdarby/nspl2tape/internal/logio"
	"github.com/mjdarby/nspl2tape/internal/panicerr"
)

func main() {
	var tokenSep, teePath string
	flag.StringVar(&tokenSep, "sep", ",", "token separator in the input file")
	flag.StringVar(&teePath, "tee", "", "also write the compiled program to this file")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer os.Exit(log.ExitCode())

	args := flag.Args()
	if len(args) != 1 {
		log.ErrorIf(errUsage{})
		return
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		log.ErrorIf(err)
		return
	}

	tokens := tokenize(string(src), tokenSep)

	out, err := compiler.Compile(tokens)
	if err != nil {
		log.ErrorIf(err)
		if panicerr.IsPanic(err) {
			trace := logio.Writer{Logf: log.Leveledf("TRACE")}
			trace.Write([]byte(panicerr.PanicStack(err)))
			trace.Sync()
		}
		return
	}

	sinks := []flushio.WriteFlusher{flushio.NewWriteFlusher(os.Stdout)}
	if teePath != "" {
		f, err := os.Create(teePath)
		if err != nil {
			log.ErrorIf(err)
			return
		}
		defer f.Close()
		sinks = append(sinks, flushio.NewWriteFlusher(f))
	}

	w := flushio.WriteFlushers(sinks...)
	if _, err := w.Write([]byte(out)); err != nil {
		log.ErrorIf(err)
		return
	}
	log.ErrorIf(w.Flush())
}

// tokenize splits a raw NSPL source file into atoms: newlines are
// insignificant, a trailing separator before end of input is ignored,
// and every remaining field is kept verbatim, including empty ones
// between two consecutive separators (chars,,endchars would otherwise
// silently swallow a blank roster entry instead of surfacing as
// RosterMissing or an empty character name).
func tokenize(src, sep string) []string {
	src = strings.ReplaceAll(src, "\n", "")
	src = strings.TrimSuffix(strings.TrimSpace(src), sep)
	if src == "" {
		return nil
	}
	return strings.Split(src, sep)
}

type errUsage struct{}

func (errUsage) Error() string { return "usage: nspl2tape [-sep=,] [-tee=file] <source-file>" }
