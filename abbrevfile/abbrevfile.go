package abbrevfile

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/sentseg"
)

// Reader streams abbreviations from \whitelist{...} blocks of a resource file.
// Each line of a block holds one abbreviation; white space inside an
// abbreviation is insignificant ("U. S." equals "U.S.").
type Reader struct {
	scanner *bufio.Scanner
	inBlock bool
}

// LoadWhitelist parses resource data and returns a whitelist of all
// \whitelist{...} entries.
func LoadWhitelist(reader io.Reader) (*sentseg.Whitelist, error) {
	return sentseg.LoadWhitelist(NewReader(reader))
}

// AddTo parses resource data from reader and adds all \whitelist{...}
// entries to an existing whitelist.
func AddTo(wl *sentseg.Whitelist, reader io.Reader) error {
	r := NewReader(reader)
	for {
		abbrev, err := r.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		wl.Add(abbrev)
	}
}

// NewReader creates an abbreviation reader on top of reader.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next abbreviation.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if !r.inBlock {
			if strings.HasPrefix(line, "\\whitelist{") {
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
		return line, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
