package filterexpr

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// OrderField maps an order key to a storage column.
type OrderField struct {
	Column string
}

// OrderSchema describes ordering defaults and whitelisted keys.
type OrderSchema struct {
	DefaultPrimary     string
	DefaultPrimaryDesc bool
	FallbackKey        string
	FallbackDesc       bool
	Fields             map[string]OrderField
}

// OrderKey is one ordering term.
type OrderKey struct {
	Key    string
	Column string
	Desc   bool
}

// Order is a two-key ordering; the secondary key breaks ties.
type Order struct {
	Primary   OrderKey
	Secondary OrderKey
}

// Keys returns the primary then secondary term.
func (o Order) Keys() []OrderKey {
	return []OrderKey{o.Primary, o.Secondary}
}

// ParseOrder parses an order_by DSL such as "freq desc, text".
// An empty input yields the schema defaults.
func ParseOrder(raw string, schema OrderSchema) (Order, error) { //nolint:gocognit,gocyclo // parsing DSL entails validation branches for readability
	if schema.DefaultPrimary == "" {
		return Order{}, errors.New("order schema default primary key required")
	}
	if schema.FallbackKey == "" {
		return Order{}, errors.New("order schema fallback key required")
	}
	if _, ok := schema.Fields[schema.DefaultPrimary]; !ok {
		return Order{}, fmt.Errorf("order key %q missing from schema fields", schema.DefaultPrimary)
	}
	if _, ok := schema.Fields[schema.FallbackKey]; !ok {
		return Order{}, fmt.Errorf("fallback order key %q missing from schema fields", schema.FallbackKey)
	}

	key := func(name string, desc bool) OrderKey {
		return OrderKey{Key: name, Column: schema.Fields[name].Column, Desc: desc}
	}
	ord := Order{
		Primary:   key(schema.DefaultPrimary, schema.DefaultPrimaryDesc),
		Secondary: key(schema.FallbackKey, schema.FallbackDesc),
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ord, nil
	}

	var terms []OrderKey
	for _, seg := range strings.Split(raw, ",") {
		parts := strings.Fields(seg)
		if len(parts) == 0 {
			continue
		}
		name := parts[0]
		if _, ok := schema.Fields[name]; !ok {
			return Order{}, fmt.Errorf("field %q cannot be used for ordering", name)
		}

		var desc bool
		switch len(parts) {
		case 1:
		case 2:
			switch strings.ToLower(parts[1]) {
			case "asc":
			case "desc":
				desc = true
			default:
				return Order{}, fmt.Errorf("invalid direction %q for field %q", parts[1], name)
			}
		default:
			return Order{}, fmt.Errorf("invalid order segment %q", strings.TrimSpace(seg))
		}

		if slices.ContainsFunc(terms, func(k OrderKey) bool { return k.Key == name }) {
			return Order{}, fmt.Errorf("duplicate order key %q", name)
		}
		if len(terms) == 2 {
			return Order{}, errors.New("order_by supports at most two keys")
		}
		terms = append(terms, key(name, desc))
	}
	if len(terms) == 0 {
		return ord, nil
	}

	ord.Primary = terms[0]
	switch {
	case len(terms) == 2:
		ord.Secondary = terms[1]
	case ord.Primary.Key != schema.FallbackKey:
		ord.Secondary = key(schema.FallbackKey, schema.FallbackDesc)
	default:
		// fallback duplicates the primary; take the first other key by name
		others := make([]string, 0, len(schema.Fields))
		for name := range schema.Fields {
			if name != ord.Primary.Key {
				others = append(others, name)
			}
		}
		if len(others) == 0 {
			return Order{}, errors.New("order schema requires at least two distinct keys for stable ordering")
		}
		slices.Sort(others)
		ord.Secondary = key(others[0], false)
	}
	return ord, nil
}

// Sort orders items in place. value returns the field value for an order
// key; strings and float64 values are supported.
func Sort[T any](items []T, ord Order, value func(item T, key string) any) {
	slices.SortStableFunc(items, func(a, b T) int {
		for _, k := range ord.Keys() {
			c := compareValues(value(a, k.Key), value(b, k.Key))
			if k.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			return cmp.Compare(av, bv)
		}
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	}
	return 0
}
