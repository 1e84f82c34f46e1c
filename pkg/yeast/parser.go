package yeast

import (
	"strconv"

	"github.com/shapestone/yeast/internal/charset"
	"github.com/shapestone/yeast/internal/machine"
	"github.com/shapestone/yeast/internal/machine/tables"
	"github.com/shapestone/yeast/internal/yerr"
)

// Machine is one compiled grammar production, looked up from a Registry by
// name and optional parameters by OpenParser/OpenTestParser.
type Machine = machine.Machine

// Registry looks up a Machine by production name plus the optional n
// (indentation) and t (chomping) parameters that production takes.
type Registry = machine.Registry

// NewRegistry returns a Registry with every production this module
// implements already installed under its grammar-rule name, the way
// _examples/original_source/test_src.c's YIP_TEST harness looks a
// production up by name before driving it.
func NewRegistry() *Registry {
	r := machine.NewRegistry()
	tables.Install(r)
	return r
}

// Parser pulls YEAST tokens one at a time from a Source, driving a single
// Machine chosen when the Parser is opened (spec.md §2: the active machine is chosen
// once and never switched mid-stream). Grounded on
// _examples/original_source/yip.c's yip_init/yip_next_token/yip_close.
type Parser struct {
	p *machine.Parser
}

// Production names a grammar rule together with its optional parameters,
// matching _examples/original_source/yip.h's YIP_PRODUCTION: N, C, and T
// stay strings (not parsed ints), exactly what yip_init receives, with the
// atoi happening inside OpenParser/OpenTestParser rather than at the call
// site.
type Production struct {
	Name string
	N    string // indentation, "" if the production takes none
	C    string // context, "" if none
	T    string // chomping indicator, "" if the production takes none
}

func (pr Production) lookup(r *Registry) (*Machine, error) {
	return r.Lookup(pr.Name, pr.N != "", pr.C, pr.T != "")
}

func (pr Production) indent(def int) (int, error) {
	if pr.N == "" {
		return def, nil
	}
	n, err := strconv.Atoi(pr.N)
	if err != nil {
		return 0, yerr.Wrap(yerr.EINVAL, "yeast.Production.indent", err)
	}
	return n, nil
}

// OpenParser looks production up in r and starts a Parser reading source
// with the given encoding, running the looked-up machine from its entry
// state. This is the Go-idiomatic replacement for yip_init's
// machine_by_parameters-then-yip_init two step: the registry lookup and
// the n parameter's atoi both happen here rather than being pushed onto
// the caller, matching spec.md §6/§10.
func OpenParser(r *Registry, source Source, ownsSource bool, encoding Encoding, production Production) (*Parser, error) {
	m, err := production.lookup(r)
	if err != nil {
		return nil, err
	}
	n, err := production.indent(-1)
	if err != nil {
		return nil, err
	}
	mp, err := machine.Open(source, ownsSource, encoding, m, n, false)
	if err != nil {
		return nil, err
	}
	return &Parser{p: mp}, nil
}

// OpenTestParser is OpenParser's is_test counterpart, restoring
// yip_test's behavior: a non-empty accumulator left over when the
// production finishes is wrapped up as a TEST token instead of being
// silently discarded, and n defaults to -9999 (rather than OpenParser's
// -1) when production.N is empty, matching yip_init's test-mode default.
// Used by this module's own production-table tests to drive one grammar
// rule in isolation, the way
// _examples/original_source/yaml2yeast_test.c's yip_test call does.
func OpenTestParser(r *Registry, source Source, ownsSource bool, encoding Encoding, production Production) (*Parser, error) {
	m, err := production.lookup(r)
	if err != nil {
		return nil, err
	}
	n, err := production.indent(-9999)
	if err != nil {
		return nil, err
	}
	mp, err := machine.Open(source, ownsSource, encoding, m, n, true)
	if err != nil {
		return nil, err
	}
	return &Parser{p: mp}, nil
}

// NextToken returns the next YEAST token, or a Done token once the
// production has finished.
func (p *Parser) NextToken() (Token, error) {
	return p.p.NextToken()
}

// Close releases the parser and, if it owns the source, closes it too.
func (p *Parser) Close() error {
	return p.p.Close()
}

// DetectEncoding peeks at up to the first 4 bytes of an already-opened
// Source to deduce its byte encoding, and reports how many of those bytes
// are a byte-order mark that should be consumed (0 if none). Callers that
// want a BOM token in their output are responsible for emitting it
// themselves before handing the (now BOM-stripped) source to OpenParser; this
// module's productions all assume BOM handling already happened, the same
// way yip_init resolves encoding once before ever calling the active
// machine.
func DetectEncoding(source Source) (Encoding, int, error) {
	peek := source.Window()
	if len(peek) < 4 {
		if _, err := source.More(4 - len(peek)); err != nil {
			return 0, 0, err
		}
		peek = source.Window()
	}
	enc := charset.Detect(peek)
	return enc, charset.BOMLength(enc, peek), nil
}
