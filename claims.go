package jws

// ClaimsSet is an ordered set of claims, the token payload.
//
// Claim names are unique; setting an existing name replaces its value and
// keeps its position. Member order drives serialization only; Equal ignores
// it. The zero ClaimsSet is empty and ready to use, and a nil *ClaimsSet
// reads as empty.
//
// A ClaimsSet is not safe for concurrent mutation. It must not be modified
// while Encode is reading it.
type ClaimsSet struct {
	names  []string
	values map[string]Value
}

// NewClaimsSet returns an empty claims set.
func NewClaimsSet() *ClaimsSet {
	return &ClaimsSet{}
}

// Set adds or replaces a claim.
func (c *ClaimsSet) Set(name string, value Value) {
	if c.values == nil {
		c.values = make(map[string]Value)
	}
	if _, exists := c.values[name]; !exists {
		c.names = append(c.names, name)
	}
	c.values[name] = value
}

// InsertUnsafe adds or replaces a claim from an arbitrary Go value.
//
// Nothing about the claim is checked: registered claim names accept any
// value, and a value encoding/json cannot represent is stored as invalid
// and makes Encode fail with ErrUnencodableClaims.
func (c *ClaimsSet) InsertUnsafe(name string, value any) {
	c.Set(name, AnyValue(value))
}

// Get returns the value of a claim.
func (c *ClaimsSet) Get(name string) (Value, bool) {
	if c == nil {
		return Value{}, false
	}
	v, ok := c.values[name]
	return v, ok
}

// Has reports whether the claim is present.
func (c *ClaimsSet) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Remove deletes a claim and returns its previous value.
func (c *ClaimsSet) Remove(name string) (Value, bool) {
	if c == nil {
		return Value{}, false
	}
	v, ok := c.values[name]
	if !ok {
		return Value{}, false
	}
	delete(c.values, name)
	for i, n := range c.names {
		if n == name {
			c.names = append(c.names[:i], c.names[i+1:]...)
			break
		}
	}
	return v, true
}

// Len returns the number of claims.
func (c *ClaimsSet) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Names returns the claim names in insertion order.
func (c *ClaimsSet) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Range calls fn for each claim in insertion order until fn returns false.
func (c *ClaimsSet) Range(fn func(name string, value Value) bool) {
	if c == nil {
		return
	}
	for _, name := range c.names {
		if !fn(name, c.values[name]) {
			return
		}
	}
}

// Clone returns a copy of c. Values are immutable, so the copy is
// independent of c.
func (c *ClaimsSet) Clone() *ClaimsSet {
	clone := &ClaimsSet{}
	if c == nil || len(c.names) == 0 {
		return clone
	}
	clone.names = make([]string, len(c.names))
	copy(clone.names, c.names)
	clone.values = make(map[string]Value, len(c.values))
	for k, v := range c.values {
		clone.values[k] = v
	}
	return clone
}

// Equal reports whether both sets hold the same names with equal values,
// in any order.
func (c *ClaimsSet) Equal(other *ClaimsSet) bool {
	if c.Len() != other.Len() {
		return false
	}
	equal := true
	c.Range(func(name string, value Value) bool {
		otherValue, ok := other.Get(name)
		equal = ok && value.Equal(otherValue)
		return equal
	})
	return equal
}
