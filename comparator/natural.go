package comparator

import (
	"cmp"
	"reflect"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/charmingruby/jutil/errs"
	"github.com/charmingruby/jutil/internal/typeguard"
)

// Option configures the natural ordering of strings.
type Option func(*config)

type config struct {
	locale    language.Tag
	collation []collate.Option
}

// WithLocale selects the locale used to collate strings. The default is the
// root locale (language.Und).
func WithLocale(tag language.Tag) Option {
	return func(c *config) {
		c.locale = tag
	}
}

// WithCollateOptions passes options such as collate.IgnoreCase or
// collate.Numeric to the string collator.
func WithCollateOptions(opts ...collate.Option) Option {
	return func(c *config) {
		c.collation = append(c.collation, opts...)
	}
}

// NaturalOrder returns the natural ordering of T. Operands are dispatched on
// their dynamic type, in this order:
//
//   - strings collate by locale,
//   - integers and floats compare by the sign of their difference,
//   - booleans put true before false,
//   - time.Time values compare by Unix milliseconds,
//   - values exposing CompareTo delegate to it.
//
// Comparing nil fails with errs.ErrNullArgument, operands of different
// dynamic types with errs.ErrTypeMismatch and anything else with
// errs.ErrIncomparable.
func NaturalOrder[T any](opts ...Option) Comparator[T] {
	cfg := config{locale: language.Und}
	for _, opt := range opts {
		opt(&cfg)
	}
	strs := newCollator(cfg)
	return Of(func(a, b T) int {
		return compareNatural(a, b, strs)
	})
}

// ReverseOrder is NaturalOrder reversed.
func ReverseOrder[T any](opts ...Option) Comparator[T] {
	return NaturalOrder[T](opts...).Reversed()
}

func compareNatural[T any](a, b T, strs *collator) int {
	x, y := any(a), any(b)
	if typeguard.IsNil(x) || typeguard.IsNil(y) {
		panic(errs.New(errs.ErrNullArgument, "comparator: cannot compare nil values"))
	}
	if !typeguard.SameType(x, y) || !typeguard.SameType(y, x) {
		panic(errs.New(errs.ErrTypeMismatch, "comparator: cannot compare %T with %T", x, y))
	}
	xv, yv := reflect.ValueOf(x), reflect.ValueOf(y)
	switch {
	case typeguard.IsString(x):
		return strs.compare(xv.String(), yv.String())
	case typeguard.IsInteger(x):
		return cmp.Compare(xv.Int(), yv.Int())
	case typeguard.IsUnsigned(x):
		return cmp.Compare(xv.Uint(), yv.Uint())
	case typeguard.IsFloat(x):
		return cmp.Compare(xv.Float(), yv.Float())
	case typeguard.IsBool(x):
		return boolRank(yv.Bool()) - boolRank(xv.Bool())
	case typeguard.IsTime(x):
		return cmp.Compare(x.(time.Time).UnixMilli(), y.(time.Time).UnixMilli())
	}
	if c, ok := x.(Comparable[T]); ok {
		return c.CompareTo(b)
	}
	if m, ok := typeguard.CompareToMethod(x, y); ok {
		return int(m.Call([]reflect.Value{yv})[0].Int())
	}
	panic(errs.New(errs.ErrIncomparable, "comparator: %T has no natural order", x))
}

func boolRank(v bool) int {
	if v {
		return 1
	}
	return 0
}

// collator serializes access to a lazily built collate.Collator, which keeps
// internal buffers and cannot be shared between goroutines.
type collator struct {
	mu  sync.Mutex
	get func() *collate.Collator
}

func newCollator(cfg config) *collator {
	return &collator{
		get: sync.OnceValue(func() *collate.Collator {
			return collate.New(cfg.locale, cfg.collation...)
		}),
	}
}

func (c *collator) compare(a, b string) int {
	col := c.get()
	c.mu.Lock()
	defer c.mu.Unlock()
	return col.CompareString(a, b)
}
