package iostreams

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx that carries io.
func NewContext(ctx context.Context, io *IOStreams) context.Context {
	return context.WithValue(ctx, contextKey{}, io)
}

// FromContext returns the IOStreams stored in ctx by NewContext.
func FromContext(ctx context.Context) *IOStreams {
	io, ok := ctx.Value(contextKey{}).(*IOStreams)
	if !ok {
		panic("iostreams: context carries no IOStreams")
	}

	return io
}
