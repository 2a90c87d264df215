/*
Package resfile loads English resources for package sentseg: a weighted
lexicon for comma positions and a whitelist of abbreviations.

A resource file may hold both kinds of entries, in separate blocks:

	\message{en-default}
	% comment
	\lexicon{
	, however 8
	}
	\whitelist{
	Mr.
	U. S.
	}

A default English resource file is embedded into this package.
*/
package resfile

import (
	"bytes"
	_ "embed"
	"io"

	"github.com/npillmayer/sentseg"
	"github.com/npillmayer/sentseg/abbrevfile"
	"github.com/npillmayer/sentseg/lexfile"
)

//go:embed en-default.res
var enDefault []byte

// Resources bundles the English resources of a resource file.
type Resources struct {
	Lexicon   *sentseg.Lexicon
	Whitelist *sentseg.Whitelist
}

// LoadResources loads a lexicon and a whitelist from a resource file.
//
// Example usage:
//
//	f, _ := os.Open("path/to/en.res")
//	defer f.Close()
//
//	res, err := resfile.LoadResources("en", f)
//
// This will load the file temporarily into memory.
func LoadResources(name string, reader io.Reader) (*Resources, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	lex, err := lexfile.LoadLexicon(name, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	wl, err := abbrevfile.LoadWhitelist(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Resources{Lexicon: lex, Whitelist: wl}, nil
}

// Default returns the embedded default English resources.
func Default() (*Resources, error) {
	return LoadResources("en-default", bytes.NewReader(enDefault))
}

// Config returns a configuration for English text with default thresholds,
// using res as lexicon and whitelist.
func (res *Resources) Config() *sentseg.Config {
	cfg := sentseg.DefaultConfig(sentseg.EN)
	cfg.Lexicon = res.Lexicon
	cfg.Whitelist = res.Whitelist
	if n := res.Lexicon.MaxKeySize(); n > cfg.MaxKeySize {
		cfg.MaxKeySize = n
	}
	return cfg
}
