/*
Package lexfile reads weighted comma phrases from resource files.

Phrases are enclosed in a \lexicon block:

	\lexicon{ % some comment
	 ...
	, but 3
	, however 8
	, and then 7
	 ...
	}

Each line holds a phrase starting with a comma, followed by an integer weight
0…10 as the last field. Higher weights make a comma a better position to cut an
overlong English sentence. Lines starting with '%' are comments.
*/
package lexfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sentseg"
)

// tracer writes to trace with key 'sentseg.resfile'
func tracer() tracing.Trace {
	return tracing.Select("sentseg.resfile")
}

// Reader streams weighted phrases from \lexicon{...} blocks of a resource file.
type Reader struct {
	scanner    *bufio.Scanner
	identifier string
	inBlock    bool
	line       int
}

// LoadLexicon parses resource data and returns a ready-to-use lexicon.
//
// Abbreviations from \whitelist{...} are intentionally not loaded here.
func LoadLexicon(name string, reader io.Reader) (*sentseg.Lexicon, error) {
	return sentseg.LoadLexicon(name, NewReader(reader))
}

// NewReader creates a phrase reader on top of reader.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Identifier returns the identifier given by a \message{...} line, if any.
func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next phrase as (phrase, weight).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, int, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if strings.HasPrefix(line, "\\message{") && strings.HasSuffix(line, "}") {
			r.identifier = line[9 : len(line)-1]
			continue
		}
		if !r.inBlock {
			if strings.HasPrefix(line, "\\lexicon{") {
				r.inBlock = true
			}
			continue
		}
		if strings.HasPrefix(line, "}") {
			r.inBlock = false
			continue
		}
		if strings.HasPrefix(line, "%") || line == "" {
			continue
		}
		phrase, weight, err := decodePhraseLine(line)
		if err != nil {
			tracer().Errorf("lexicon line %d: %v", r.line, err)
			return "", 0, fmt.Errorf("line %d: %w", r.line, err)
		}
		return phrase, weight, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", 0, err
	}
	return "", 0, io.EOF
}

// decodePhraseLine splits ", and then 7" into (", and then", 7).
func decodePhraseLine(line string) (string, int, error) {
	if i := strings.Index(line, "%"); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", 0, fmt.Errorf("missing weight in %q", line)
	}
	weight, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return "", 0, fmt.Errorf("malformed weight in %q", line)
	}
	return strings.Join(fields[:len(fields)-1], " "), weight, nil
}
