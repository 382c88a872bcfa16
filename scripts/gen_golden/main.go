// Command gen_golden regenerates the golden TAPE fixtures under
// compiler/testdata: for every compiler/testdata/cases/*.nspl file, it
// compiles the token list found there and writes the resulting TAPE
// program to a sibling *.tape file. Fixtures are compiled concurrently
// via an errgroup, bounded so a large fixture directory doesn't spawn
// an unbounded number of goroutines.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mjdarby/nspl2tape/compiler"
)

func main() {
	var dir string
	flag.StringVar(&dir, "dir", "compiler/testdata/cases", "directory of *.nspl fixtures")
	flag.Parse()

	if err := run(context.Background(), dir); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, dir string) error {
	matches, err := filepath.Glob(filepath.Join(dir, "*.nspl"))
	if err != nil {
		return err
	}

	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(4)
	for _, path := range matches {
		path := path
		eg.Go(func() error { return generate(path) })
	}
	return eg.Wait()
}

func generate(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	tokens := strings.Split(strings.TrimSpace(string(src)), ",")
	out, err := compiler.Compile(tokens)
	if err != nil {
		return err
	}

	dst := strings.TrimSuffix(path, ".nspl") + ".tape"
	return os.WriteFile(dst, []byte(out), 0o644)
}
