// Package main implements bstdemo, which compares how quickly words can be found
// in a linked binary search tree depending on the order it was built in.
package main

import (
	"os"

	"github.com/thought-machine/go-flags"
	"gopkg.in/op/go-logging.v1"

	"github.com/g-m-twostay/go-bst/Trees/measure"
)

var log = logging.MustGetLogger("bstdemo")

var opts = struct {
	Usage     string
	Verbosity string   `short:"v" long:"verbosity" default:"notice" choice:"critical" choice:"error" choice:"warning" choice:"notice" choice:"info" choice:"debug" description:"Verbosity of output"`
	Every     int      `short:"e" long:"every" default:"150" description:"Only use every Nth line of the word files"`
	Queries   int      `short:"q" long:"queries" default:"10000" description:"Number of random words to search for"`
	Seed      int64    `short:"s" long:"seed" default:"0" description:"Seed for shuffling"`
	Backends  []string `short:"b" long:"backend" description:"Backend to time; may be repeated. Defaults to all of them."`
	Args      struct {
		Files []string `positional-arg-name:"file" description:"Word files, one word per line" required:"true"`
	} `positional-args:"true" required:"true"`
}{
	Usage: `
bstdemo reads words from the given files and times searching for a random
selection of them in a list, in a binary search tree built in file order, in
one built in random order, and in the first one after rebalancing it.

Dictionary files are usually sorted, so the tree built in file order is about
as deep as it is large. Other ordered and hashed containers are timed as well
for reference.
`,
}

func initLogging(verbosity string) {
	level, err := logging.LogLevel(verbosity)
	if err != nil {
		level = logging.NOTICE
	}
	backend := logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stderr, "", 0),
		logging.MustStringFormatter("%{time:15:04:05.000} %{level:7s}: %{message}"),
	)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = opts.Usage
	if _, err := parser.Parse(); err != nil {
		if ferr, ok := err.(*flags.Error); ok && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	initLogging(opts.Verbosity)

	words, err := measure.LoadWords(opts.Args.Files, opts.Every)
	if err != nil {
		log.Fatalf("Failed to read words: %s", err)
	}
	log.Notice("Read %d words from %d files", len(words), len(opts.Args.Files))
	report, err := measure.Run(measure.Config{
		Queries:  opts.Queries,
		Seed:     opts.Seed,
		Backends: opts.Backends,
	}, words, measure.SystemClock{})
	if err != nil {
		log.Fatalf("%s", err)
	}
	if _, err := report.WriteTo(os.Stdout); err != nil {
		log.Fatalf("Failed to write report: %s", err)
	}
}
