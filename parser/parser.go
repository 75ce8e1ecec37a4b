package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/erraggy/oaslint/grammar"
	"github.com/erraggy/oaslint/oaserrors"
	"github.com/erraggy/oaslint/tree"
	"go.yaml.in/yaml/v4"
)

// DefaultMaxFileSize is the largest document Parse reads (10 MiB).
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// Parser builds kind-tagged trees from Swagger 2.0 and OpenAPI 3.x
// documents in YAML or JSON.
type Parser struct {
	// Grammar forces the grammar instead of detecting it from the
	// "swagger" or "openapi" root field.
	Grammar tree.Grammar
	// Strict turns any structural problem into a ValidationFailed outcome.
	// Otherwise problems are reported on the Success outcome.
	Strict bool
	// MaxRefDepth bounds the references followed for a single "$ref".
	// Default: 100
	MaxRefDepth int
	// MaxFileSize bounds the size of a file read by Parse.
	// Default: 10 MiB
	MaxFileSize int64
	// Logger receives debug output. If nil, logging is disabled.
	Logger Logger
}

// Option configures a Parser.
type Option func(*Parser)

// New creates a Parser with the given options.
func New(opts ...Option) *Parser {
	p := &Parser{
		MaxRefDepth: DefaultMaxRefDepth,
		MaxFileSize: DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithGrammar forces the grammar used to tag the document.
func WithGrammar(g tree.Grammar) Option {
	return func(p *Parser) {
		p.Grammar = g
	}
}

// WithStrict enables or disables strict mode.
// Default: false
func WithStrict(strict bool) Option {
	return func(p *Parser) {
		p.Strict = strict
	}
}

// WithMaxRefDepth sets the reference depth limit. Non-positive values keep
// the default.
func WithMaxRefDepth(depth int) Option {
	return func(p *Parser) {
		if depth > 0 {
			p.MaxRefDepth = depth
		}
	}
}

// WithMaxFileSize sets the file size limit in bytes. Non-positive values
// keep the default.
func WithMaxFileSize(size int64) Option {
	return func(p *Parser) {
		if size > 0 {
			p.MaxFileSize = size
		}
	}
}

// WithLogger sets a structured logger for debug output.
func WithLogger(l Logger) Option {
	return func(p *Parser) {
		p.Logger = l
	}
}

func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// Parse reads and parses the file at path. The error is only set when the
// file cannot be read; every problem with its content is reported through
// the outcome.
func (p *Parser) Parse(path string) (tree.Outcome, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	if limit := p.maxFileSize(); info.Size() > limit {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Actual:       info.Size(),
			Message:      path,
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	return p.parse(data, p.log().With("file", path)), nil
}

// ParseReader reads r to the end and parses its content.
func (p *Parser) ParseReader(r io.Reader) (tree.Outcome, error) {
	limit := p.maxFileSize()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, &oaserrors.ResourceLimitError{ResourceType: "file_size", Limit: limit}
	}
	return p.parse(data, p.log()), nil
}

// ParseBytes parses an in-memory document.
func (p *Parser) ParseBytes(data []byte) tree.Outcome {
	return p.parse(data, p.log())
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return DefaultMaxFileSize
}

func (p *Parser) parse(data []byte, log Logger) tree.Outcome {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		f := fatalFromError(err)
		log.Debug("document could not be parsed", "line", f.Line, "error", f.Message)
		return f
	}

	tokens := tokenize(data)
	g, version := p.detect(&doc)
	def := grammar.For(g)
	if def == nil {
		log.Warn("unknown grammar, using OpenAPI 3", "grammar", string(g))
		def = grammar.For(grammar.OAS3)
	}
	log = log.With("grammar", string(def.Name))

	root, refs := buildTree(def, &doc, tokens)
	log.Debug("tree built", "tokens", len(tokens), "refs", len(refs))

	v := &validator{def: def, version: version}
	refErrs := resolveRefs(root, refs, p.MaxRefDepth)
	for _, n := range refs {
		if err := refErrs[n]; err != nil {
			log.Warn("reference not resolved", "ref", n.ref, "line", n.Line(), "error", err.Error())
			v.add(n, "%s", err.Error())
		}
	}
	issues := v.validate(root)

	if p.Strict && len(issues) > 0 {
		return tree.ValidationFailed{Root: root, Tokens: tokens, Causes: issues}
	}
	return tree.Success{Root: root, Tokens: tokens, Issues: issues}
}

// detect returns the grammar and the version string of the document.
func (p *Parser) detect(doc *yaml.Node) (tree.Grammar, string) {
	swagger, hasSwagger := rootScalar(doc, "swagger")
	openapi, hasOpenAPI := rootScalar(doc, "openapi")
	switch {
	case p.Grammar == grammar.OAS2:
		return grammar.OAS2, swagger
	case p.Grammar != "":
		return p.Grammar, openapi
	case hasSwagger:
		return grammar.OAS2, swagger
	case hasOpenAPI:
		return grammar.OAS3, openapi
	default:
		return grammar.OAS3, ""
	}
}

// DetectFormat reports whether data looks like JSON or YAML.
func DetectFormat(data []byte) string {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return "json"
	}
	return "yaml"
}

func rootScalar(doc *yaml.Node, key string) (string, bool) {
	n := doc
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return "", false
		}
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode {
		return "", false
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key && n.Content[i+1].Kind == yaml.ScalarNode {
			return strings.TrimSpace(n.Content[i+1].Value), true
		}
	}
	return "", false
}

var yamlPosition = regexp.MustCompile(`line (\d+)(?:, column (\d+))?`)

// fatalFromError converts a YAML error into a Fatal outcome. The position
// is the last one the message mentions, which is where the scanner gave
// up; it defaults to line 1.
func fatalFromError(err error) tree.Fatal {
	f := tree.Fatal{Message: strings.TrimPrefix(err.Error(), "yaml: "), Line: 1}

	var loadErr *yaml.LoadError
	if errors.As(err, &loadErr) && loadErr.Line > 0 {
		f.Message = loadErr.Err.Error()
		f.Line = loadErr.Line
		f.Column = loadErr.Column
		return f
	}

	matches := yamlPosition.FindAllStringSubmatch(err.Error(), -1)
	if len(matches) == 0 {
		return f
	}
	last := matches[len(matches)-1]
	if line, convErr := strconv.Atoi(last[1]); convErr == nil && line > 0 {
		f.Line = line
	}
	if last[2] != "" {
		if col, convErr := strconv.Atoi(last[2]); convErr == nil {
			f.Column = col
		}
	}
	return f
}
