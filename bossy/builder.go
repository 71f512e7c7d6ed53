package bossy

// DefinitionBuilder assembles a Definition with a fluent API.
//
//	def := bossy.Define().
//		Boolean("verbose", "Chatty output").Alias("v").Back().
//		Number("port", "Listen port").Default(bossy.IntValue(8080)).Back().
//		Help("help", "Show usage").Alias("h").Back().
//		Build()
type DefinitionBuilder struct {
	options []*Option
}

// Define starts an empty definition.
func Define() *DefinitionBuilder {
	return &DefinitionBuilder{}
}

// OptionBuilder configures a single option and returns to its parent
// with Back.
type OptionBuilder struct {
	opt    *Option
	parent *DefinitionBuilder
}

// Option adds a string option.
func (b *DefinitionBuilder) Option(name, description string) *OptionBuilder {
	return b.add(name, description, TypeString)
}

func (b *DefinitionBuilder) Boolean(name, description string) *OptionBuilder {
	return b.add(name, description, TypeBoolean)
}

func (b *DefinitionBuilder) Number(name, description string) *OptionBuilder {
	return b.add(name, description, TypeNumber)
}

func (b *DefinitionBuilder) Range(name, description string) *OptionBuilder {
	return b.add(name, description, TypeRange)
}

func (b *DefinitionBuilder) JSON(name, description string) *OptionBuilder {
	return b.add(name, description, TypeJSON)
}

func (b *DefinitionBuilder) Help(name, description string) *OptionBuilder {
	return b.add(name, description, TypeHelp)
}

func (b *DefinitionBuilder) add(name, description string, typ Type) *OptionBuilder {
	opt := &Option{Name: name, Description: description, Type: typ}
	b.options = append(b.options, opt)
	return &OptionBuilder{opt: opt, parent: b}
}

// Build returns the definition. It is not validated; NewParser and
// Usage do that.
func (b *DefinitionBuilder) Build() Definition {
	def := make(Definition, len(b.options))
	for i, opt := range b.options {
		def[i] = *opt
	}
	return def
}

// Alias appends alternative spellings.
func (o *OptionBuilder) Alias(names ...string) *OptionBuilder {
	o.opt.Alias = append(o.opt.Alias, names...)
	return o
}

// Type overrides the option type chosen by the constructor.
func (o *OptionBuilder) Type(t Type) *OptionBuilder {
	o.opt.Type = t
	return o
}

// Multiple lets repeated occurrences collect into a list.
func (o *OptionBuilder) Multiple() *OptionBuilder {
	o.opt.Multiple = true
	return o
}

// Required marks the option as mandatory.
func (o *OptionBuilder) Required() *OptionBuilder {
	o.opt.Required = true
	return o
}

func (o *OptionBuilder) Default(v Value) *OptionBuilder {
	o.opt.Default = v
	return o
}

// Valid restricts accepted values to the given set.
func (o *OptionBuilder) Valid(values ...Value) *OptionBuilder {
	o.opt.Valid = append(o.opt.Valid, values...)
	return o
}

// ParsePrimitives sets the JSON primitive handling.
func (o *OptionBuilder) ParsePrimitives(p Primitives) *OptionBuilder {
	o.opt.ParsePrimitives = p
	return o
}

func (o *OptionBuilder) Description(text string) *OptionBuilder {
	o.opt.Description = text
	return o
}

// Back returns to the definition builder for continued chaining.
func (o *OptionBuilder) Back() *DefinitionBuilder {
	return o.parent
}
