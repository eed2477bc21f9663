package stock

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Ledger holds the quantity per size for one product.
// Total stock is always derived from it and never stored.
type Ledger map[SizeKey]int

type CoercionMode string

const (
	CoercionStrict CoercionMode = "strict"
	CoercionSoft   CoercionMode = "soft"
)

type ParseOptions struct {
	RejectUnknown bool
	FillMissing   bool
	Coercion      CoercionMode
}

// StrictFull is the option set used by admin writes that replace a whole ledger.
var StrictFull = ParseOptions{RejectUnknown: true, FillMissing: true, Coercion: CoercionStrict}

// StrictPartial is used by size-batch edits that only touch the given sizes.
var StrictPartial = ParseOptions{RejectUnknown: true, FillMissing: false, Coercion: CoercionStrict}

// Tolerant is used on read paths where bad legacy data must not break rendering.
var Tolerant = ParseOptions{RejectUnknown: false, FillMissing: true, Coercion: CoercionSoft}

// Entry is the list form of a ledger row.
type Entry struct {
	Key      string `json:"key"`
	Quantity any    `json:"quantity"`
}

// legacy wrappers seen in older catalogue exports
var nestedKeys = []string{"sizes", "stockBySize", "stock_by_size", "sizeStock", "size_stock"}

// bookkeeping fields exported next to the sizes; never size labels
var metadataKeys = map[string]struct{}{
	"total": {}, "totalStock": {}, "total_stock": {}, "updatedAt": {}, "updated_at": {},
}

var pairKeyFields = []string{"key", "size", "label", "name"}
var pairQuantityFields = []string{"quantity", "qty", "stock", "count"}

func NewLedger() Ledger {
	l := make(Ledger, sizeCount)
	for _, k := range vocabulary {
		l[k] = 0
	}
	return l
}

func ComputeTotalStock(l Ledger) int {
	total := 0
	for _, k := range vocabulary {
		total += l[k]
	}
	return total
}

func (l Ledger) Total() int {
	return ComputeTotalStock(l)
}

func (l Ledger) Quantity(k SizeKey) int {
	return l[k]
}

func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// Merge returns a copy of l with every size in patch overwritten.
func (l Ledger) Merge(patch Ledger) Ledger {
	out := NewLedger()
	for k, v := range l {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// Keys returns the present keys in vocabulary order.
func (l Ledger) Keys() []SizeKey {
	keys := make([]SizeKey, 0, len(l))
	for _, k := range vocabulary {
		if _, ok := l[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

type parser struct {
	opts ParseOptions
	out  Ledger
}

func ParseStockMap(input any, opts ParseOptions) (Ledger, error) {
	if opts.Coercion == "" {
		opts.Coercion = CoercionStrict
	}
	p := &parser{opts: opts, out: make(Ledger, sizeCount)}
	if err := p.parse(input); err != nil {
		return nil, err
	}
	if opts.FillMissing {
		for _, k := range vocabulary {
			if _, ok := p.out[k]; !ok {
				p.out[k] = 0
			}
		}
	}
	return p.out, nil
}

func (p *parser) parse(input any) error {
	switch v := input.(type) {
	case nil:
		return nil
	case Ledger:
		for k, q := range v {
			if err := p.put(string(k), q); err != nil {
				return err
			}
		}
		return nil
	case map[SizeKey]int:
		return p.parse(Ledger(v))
	case map[string]int:
		for _, k := range sortedKeys(v) {
			if err := p.put(k, v[k]); err != nil {
				return err
			}
		}
		return nil
	case map[string]float64:
		for _, k := range sortedKeys(v) {
			if err := p.put(k, v[k]); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		return p.parseObject(v)
	case []Entry:
		for _, e := range v {
			if err := p.put(e.Key, e.Quantity); err != nil {
				return err
			}
		}
		return nil
	case []any:
		return p.parseList(v)
	case json.RawMessage:
		return p.parseJSON(v)
	case []byte:
		return p.parseJSON(v)
	case string:
		return p.parseJSON([]byte(v))
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedForm, input)
	}
}

func (p *parser) parseJSON(raw []byte) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedForm, err)
	}
	return p.parse(decoded)
}

func (p *parser) parseObject(m map[string]any) error {
	for _, nk := range nestedKeys {
		if inner, ok := m[nk]; ok {
			return p.parse(inner)
		}
	}
	for _, k := range sortedKeys(m) {
		if _, meta := metadataKeys[k]; meta {
			continue
		}
		q := m[k]
		if obj, ok := q.(map[string]any); ok {
			q = firstField(obj, pairQuantityFields)
		}
		if err := p.put(k, q); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseList(items []any) error {
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			if p.opts.Coercion == CoercionStrict {
				return fmt.Errorf("%w: entry %d is not an object", ErrUnsupportedForm, i)
			}
			continue
		}
		keyVal := firstField(obj, pairKeyFields)
		key, ok := keyVal.(string)
		if !ok {
			if p.opts.RejectUnknown {
				return &UnknownSizeError{Label: fmt.Sprint(keyVal)}
			}
			continue
		}
		if err := p.put(key, firstField(obj, pairQuantityFields)); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) put(label string, raw any) error {
	key, err := NormalizeSizeLabel(label)
	if err != nil {
		if p.opts.RejectUnknown {
			return err
		}
		return nil
	}

	qty, err := coerceQuantity(raw)
	if err != nil {
		if p.opts.Coercion == CoercionStrict {
			return fmt.Errorf("%w for %s: %v", ErrInvalidQuantity, key, err)
		}
		qty = 0
	}

	if existing, dup := p.out[key]; dup {
		if p.opts.Coercion == CoercionStrict {
			return fmt.Errorf("%w: %s given more than once", ErrDuplicateSize, key)
		}
		qty += existing
	}
	p.out[key] = qty
	return nil
}

func coerceQuantity(raw any) (int, error) {
	var f float64
	switch v := raw.(type) {
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case float32:
		f = float64(v)
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, err
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, err
		}
		f = parsed
	default:
		return 0, fmt.Errorf("not a number: %v", raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %v", raw)
	}
	if f < 0 {
		return 0, fmt.Errorf("negative quantity: %v", raw)
	}
	if f > math.MaxInt32 {
		return 0, fmt.Errorf("quantity too large: %v", raw)
	}
	return int(math.Floor(f)), nil
}

func firstField(obj map[string]any, names []string) any {
	for _, n := range names {
		if v, ok := obj[n]; ok {
			return v
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
