package bossy

import (
	"strconv"
	"strings"

	"github.com/dzonerzy/go-bossy/internal/intern"
	bossyio "github.com/dzonerzy/go-bossy/io"
)

// maxSafeInteger is the largest integer a double represents exactly;
// number options stay within it so results survive a JSON round trip.
const maxSafeInteger = 1<<53 - 1

// positionalKey holds unflagged values in the output.
const positionalKey = "_"

// Parser parses argument vectors against one validated definition. It
// keeps no state between calls and is safe for concurrent use.
type Parser struct {
	def      Definition
	settings *settings
}

// NewParser validates def and returns a parser for it. A bad definition
// yields a *DefinitionError.
func NewParser(def Definition, opts ...Setting) (*Parser, error) {
	if err := Validate(def); err != nil {
		return nil, err
	}
	return &Parser{def: cloneDefinition(def), settings: newSettings(opts)}, nil
}

// Parse validates def and parses the WithArgs vector, or the process
// arguments. The returned error is either a *DefinitionError or the
// first *ParseError met on the command line.
func Parse(def Definition, opts ...Setting) (*Result, error) {
	p, err := NewParser(def, opts...)
	if err != nil {
		return nil, err
	}
	return p.Parse(p.settings.argv())
}

// Definition returns a copy of the parser's definition.
func (p *Parser) Definition() Definition {
	return cloneDefinition(p.def)
}

// Usage renders the usage text for the parser's definition.
func (p *Parser) Usage(header string) string {
	return renderUsage(p.def, header, p.settings.palette())
}

// Parse scans args once, left to right. Problems are collected rather
// than aborting the scan; the first one is returned unless a help
// option fired, in which case the partial result comes back instead.
func (p *Parser) Parse(args []string) (*Result, error) {
	s := newScan(p, args)
	s.run()
	s.finalize()

	if len(s.errors) > 0 && !s.help {
		return nil, s.errors[0]
	}
	return &Result{values: s.output, help: s.help}, nil
}

// token is one entry of the scan queue. Spliced tokens were cut from a
// short-flag cluster and are always values.
type token struct {
	text    string
	spliced bool
}

// pendingOption is an option waiting for its value token. name is the
// spelling that selected it, which may carry a JSON sub-path.
type pendingOption struct {
	opt  *Option
	name string
}

// scan is the state of a single Parse call.
type scan struct {
	def     Definition
	table   *table
	tokens  []token
	pos     int
	output  *Object
	pending *pendingOption
	errors  []*ParseError
	help    bool

	settings *settings
	logger   *bossyio.Logger
	usage    string
}

func newScan(p *Parser, args []string) *scan {
	s := &scan{
		def:      p.def,
		table:    newTable(p.def),
		tokens:   make([]token, len(args)),
		output:   NewObject(),
		settings: p.settings,
		logger:   p.settings.logger,
	}
	for i, arg := range args {
		s.tokens[i] = token{text: arg}
	}

	for i := range s.def {
		opt := &s.def[i]
		switch {
		case (opt.Type == TypeBoolean || opt.Type == TypeJSON) && !opt.Default.IsAbsent():
			s.output.Set(opt.Name, opt.Default.Clone())
		case opt.Type == TypeBoolean:
			s.output.Set(opt.Name, BoolValue(false))
		}
	}
	return s
}

func (s *scan) run() {
	for s.pos = 0; s.pos < len(s.tokens); s.pos++ {
		tok := s.tokens[s.pos]
		if !tok.spliced && strings.HasPrefix(tok.text, "-") {
			s.parseKey(tok.text)
		} else {
			s.parseValue(tok.text)
		}
	}
	if s.pending != nil {
		s.logger.Debug("option %s left without a value", s.pending.opt.Name)
	}
}

func (s *scan) fail(err *ParseError) {
	s.logger.Debug("recorded error: %s", firstLine(err.Message))
	s.errors = append(s.errors, err)
}

// parseKey handles "--name" and "-abc" tokens.
func (s *scan) parseKey(arg string) {
	if len(arg) == 1 {
		s.fail(errEmptyDash())
		return
	}

	var names []string
	if arg[1] == '-' {
		if len(arg) == 2 {
			s.fail(errEmptyDoubleDash())
			return
		}
		names = []string{arg[2:]}
	} else {
		names = intern.Split(arg[1:])
	}

	for i, name := range names {
		if s.pending != nil {
			s.fail(errMissingValue(s.pending.opt.Name))
			continue
		}

		opt, negated := s.resolve(name)
		if opt == nil {
			s.fail(errUnknown(name, s.table.names))
			continue
		}

		switch {
		case opt.Type == TypeHelp:
			s.logger.Debug("%s: help requested", name)
			s.output.Set(opt.Name, BoolValue(true))
			s.help = true

		case opt.Type == TypeBoolean:
			s.logger.Debug("%s: %s = %t", name, opt.Name, !negated)
			s.output.Set(opt.Name, BoolValue(!negated))

		case opt.Type == TypeNumber && i+1 < len(names):
			// digits glued to a short flag, as in -C42
			rest := strings.Join(names[i+1:], "")
			s.logger.Debug("%s: splicing %q as its value", name, rest)
			s.splice(rest)
			s.pending = &pendingOption{opt: opt, name: name}
			return

		default:
			// later letters in the cluster are reported as missing
			// this option's value
			s.logger.Debug("%s: %s awaits a value", name, opt.Name)
			s.pending = &pendingOption{opt: opt, name: name}
		}
	}
}

// resolve finds the option a key names: an exact spelling, a "no-"
// negation of a boolean, or a dotted path under a json option.
func (s *scan) resolve(name string) (opt *Option, negated bool) {
	if opt, ok := s.table.lookup(name); ok {
		return opt, false
	}
	if base, ok := strings.CutPrefix(name, "no-"); ok {
		if opt, ok := s.table.lookup(base); ok && opt.Type == TypeBoolean {
			return opt, true
		}
	}
	if root, _, ok := strings.Cut(name, "."); ok {
		if opt, ok := s.table.lookup(root); ok && opt.Type == TypeJSON {
			return opt, false
		}
	}
	return nil, false
}

// splice inserts text right after the current token.
func (s *scan) splice(text string) {
	s.tokens = append(s.tokens, token{})
	copy(s.tokens[s.pos+2:], s.tokens[s.pos+1:])
	s.tokens[s.pos+1] = token{text: text, spliced: true}
}

func (s *scan) parseValue(text string) {
	if s.pending == nil {
		s.logger.Debug("%q: positional", text)
		s.appendPositional(text)
		return
	}

	pending := s.pending
	s.pending = nil

	v, err := s.coerce(pending, text)
	if err != nil {
		s.fail(err)
		return
	}
	s.logger.Debug("%q: value for %s", text, pending.opt.Name)
	s.store(pending.opt, v)
}

func (s *scan) appendPositional(text string) {
	existing, _ := s.output.Get(positionalKey)
	items, _ := existing.AsList()
	s.output.Set(positionalKey, ListValue(append(items, StringValue(text))...))
}

func (s *scan) coerce(pending *pendingOption, text string) (Value, *ParseError) {
	opt := pending.opt
	if opt.Type == TypeJSON {
		return coerceJSON(pending, text)
	}

	v := StringValue(text)
	if opt.Type == TypeNumber {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil || n > maxSafeInteger || n < -maxSafeInteger {
			return Value{}, errNonNumber(opt.Name)
		}
		v = IntValue(n)
	}

	if len(opt.Valid) > 0 && !containsValue(opt.Valid, v) {
		return Value{}, errNotValid(opt.Name, opt.Valid)
	}
	return v, nil
}

func coerceJSON(pending *pendingOption, text string) (Value, *ParseError) {
	opt := pending.opt
	v := StringValue(text)

	decoded, err := ParseJSON([]byte(text))
	switch {
	case err != nil:
		if opt.ParsePrimitives == PrimitivesStrict {
			return Value{}, errJSON(pending.name, "invalid JSON")
		}
	case decoded.IsPrimitive():
		switch opt.ParsePrimitives {
		case PrimitivesStrict:
			return Value{}, errJSON(pending.name, "non-primitive JSON value")
		case PrimitivesOn:
			v = decoded
		case PrimitivesOff:
		}
	default:
		v = decoded
	}

	v = stripUnsafe(ValueAtPath(pending.name, v))
	if !v.IsCompound() {
		return Value{}, errJSON(opt.Name, "must be an object or array")
	}
	return v, nil
}

// store merges one coerced value into the output.
func (s *scan) store(opt *Option, v Value) {
	existing, has := s.output.Get(opt.Name)
	switch {
	case has && opt.Multiple:
		items, ok := existing.AsList()
		if !ok {
			items = []Value{existing}
		}
		s.output.Set(opt.Name, ListValue(append(items, v)...))
	case has && opt.Type == TypeJSON:
		s.output.Set(opt.Name, merge(existing, v, accumulate))
	case has:
		s.fail(errMultiple(opt.Name))
	case opt.Multiple:
		s.output.Set(opt.Name, ListValue(v))
	default:
		s.output.Set(opt.Name, v)
	}
}

// finalize walks the declared options once: ranges are expanded,
// defaults applied, required options checked and values copied onto
// every alias.
func (s *scan) finalize() {
	for i := range s.def {
		opt := &s.def[i]
		v, _ := s.output.Get(opt.Name)

		if opt.Type == TypeRange && v.Truthy() {
			v = expandRangeValue(v)
		}
		if v.IsAbsent() {
			v = opt.Default.Clone()
		}
		s.output.Set(opt.Name, v)

		if opt.Required && v.IsAbsent() {
			s.fail(errRequired(opt.Name, s.usageText()))
		}

		for _, alias := range opt.aliases() {
			s.output.Set(alias, v.Clone())
		}
	}
}

func (s *scan) usageText() string {
	if s.usage == "" {
		s.usage = renderUsage(s.def, "", s.settings.palette())
	}
	return s.usage
}

func containsValue(set []Value, v Value) bool {
	for _, candidate := range set {
		if candidate.Equal(v) {
			return true
		}
	}
	return false
}

func cloneDefinition(def Definition) Definition {
	out := make(Definition, len(def))
	for i, opt := range def {
		opt.Alias = append([]string(nil), opt.Alias...)
		opt.Default = opt.Default.Clone()
		if opt.Valid != nil {
			valid := make([]Value, len(opt.Valid))
			for j, v := range opt.Valid {
				valid[j] = v.Clone()
			}
			opt.Valid = valid
		}
		out[i] = opt
	}
	return out
}

func firstLine(text string) string {
	text = strings.TrimLeft(text, "\n")
	line, _, _ := strings.Cut(text, "\n")
	return line
}
