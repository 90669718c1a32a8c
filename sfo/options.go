package sfo

import (
	"fmt"
	"log/slog"
	"strings"
)

// InsertPolicy decides where Add places a new pair.
type InsertPolicy int

const (
	// InsertAppend places new pairs after every existing pair.
	InsertAppend InsertPolicy = iota
	// InsertSorted places a new pair before the first pair whose key sorts
	// after it (byte order of the rendered key). Files written by the PS3
	// SDK keep their keys in this order.
	InsertSorted
)

func (p InsertPolicy) String() string {
	if p == InsertSorted {
		return "sorted"
	}
	return "append"
}

// ParseInsertPolicy accepts "append" and "sorted".
func ParseInsertPolicy(s string) (InsertPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "append":
		return InsertAppend, nil
	case "sorted", "sort":
		return InsertSorted, nil
	default:
		return InsertAppend, fmt.Errorf("unknown insert policy %q (want append or sorted)", s)
	}
}

type options struct {
	insert   InsertPolicy
	tolerant bool
	logger   *slog.Logger
}

// Option configures a Container.
type Option func(*options)

// WithInsertPolicy selects where Add places new pairs. Default: InsertAppend.
func WithInsertPolicy(p InsertPolicy) Option {
	return func(o *options) { o.insert = p }
}

// WithTolerantText decodes text values that are not valid UTF-8 as
// Windows-1252 instead of failing the parse. Such values are written back
// byte for byte until they are edited.
func WithTolerantText(on bool) Option {
	return func(o *options) { o.tolerant = on }
}

// WithLogger routes the container's debug logging to l instead of the
// process-wide logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
