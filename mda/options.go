package mda

import (
	"io"
	"log/slog"
	"net/http"
)

// ReaderOption configures a chunked Reader at open time.
type ReaderOption func(*readerOptions)

type readerOptions struct {
	client *http.Client
	logger *slog.Logger
	header *Header
}

func applyReaderOptions(opts []ReaderOption) *readerOptions {
	o := &readerOptions{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithHTTPClient sets the HTTP client used by OpenRemote. The default
// is http.DefaultClient.
func WithHTTPClient(c *http.Client) ReaderOption {
	return func(o *readerOptions) {
		if c != nil {
			o.client = c
		}
	}
}

// WithLogger sets a structured logger for debug-level read tracing.
// By default all log output is discarded; the library never prints.
func WithLogger(l *slog.Logger) ReaderOption {
	return func(o *readerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithKnownHeader treats the source as headerless raw element data
// described by h; the data region starts at byte offset 0. No header is
// decoded from the source.
func WithKnownHeader(h *Header) ReaderOption {
	return func(o *readerOptions) {
		o.header = h
	}
}
