package measure

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ReadWords returns the trimmed lines of r whose 0 based index is a multiple of every.
func ReadWords(r io.Reader, every int) ([]string, error) {
	if every < 1 {
		return nil, fmt.Errorf("invalid sampling interval %d", every)
	}
	var ws []string
	sc := bufio.NewScanner(r)
	for i := 0; sc.Scan(); i++ {
		if i%every == 0 {
			ws = append(ws, strings.TrimSpace(sc.Text()))
		}
	}
	return ws, sc.Err()
}

// LoadWords reads every file in paths with ReadWords and concatenates the results.
// Files that fail don't stop the others from being read; all of their errors
// are returned together alongside whatever was read successfully.
func LoadWords(paths []string, every int) ([]string, error) {
	var ws []string
	var errs error
	for _, p := range paths {
		w, err := loadFile(p, every)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		log.Debug("Read %d words from %s", len(w), p)
		ws = append(ws, w...)
	}
	return ws, errs
}

func loadFile(path string, every int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ws, err := ReadWords(f, every)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ws, nil
}
