package store

import "context"

type Option func(*Options)

type Options struct {
	Capacity int
	Context  context.Context
}

// WithCapacity caps the number of stored records as a safety valve.
// Zero or negative means unbounded.
func WithCapacity(n int) Option {
	return func(o *Options) {
		o.Capacity = n
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
