package sedml

// Option configures Read and Write
type Option func(*options)

type options struct {
	prefix   string
	indent   string
	noDecl   bool
	defaults *Namespaces
}

func newOptions(opts []Option) *options {
	o := &options{indent: "  ", defaults: NewNamespaces(DefaultLevel, DefaultVersion)}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithIndent sets the line prefix and indentation used by Write. Empty
// strings write the document on a single line.
func WithIndent(prefix, indent string) Option {
	return func(o *options) { o.prefix, o.indent = prefix, indent }
}

// WithoutDeclaration makes Write leave out the XML declaration.
func WithoutDeclaration() Option { return func(o *options) { o.noDecl = true } }

// WithDefaultNamespaces sets the schema version Read assumes for a document
// whose root element names no known SED-ML namespace.
func WithDefaultNamespaces(ns *Namespaces) Option {
	return func(o *options) {
		if ns != nil {
			o.defaults = ns
		}
	}
}
