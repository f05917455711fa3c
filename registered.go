package jws

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Registered claim names (RFC 7519 section 4.1).
const (
	ClaimIssuer    = "iss"
	ClaimSubject   = "sub"
	ClaimAudience  = "aud"
	ClaimExpiresAt = "exp"
	ClaimNotBefore = "nbf"
	ClaimIssuedAt  = "iat"
	ClaimID        = "jti"
)

// maxNumericDate is 9999-12-31T23:59:59Z.
const maxNumericDate = 253402300799

// The accessors below read registered claims as data. None of them checks
// expiry, audience or issuer; that policy belongs to the caller.

// Issuer returns the "iss" claim.
func (c *ClaimsSet) Issuer() (string, bool) {
	return c.stringClaim(ClaimIssuer)
}

// Subject returns the "sub" claim.
func (c *ClaimsSet) Subject() (string, bool) {
	return c.stringClaim(ClaimSubject)
}

// ID returns the "jti" claim.
func (c *ClaimsSet) ID() (string, bool) {
	return c.stringClaim(ClaimID)
}

// Audience returns the "aud" claim, which may be a single string or an
// array of strings.
func (c *ClaimsSet) Audience() ([]string, bool) {
	v, ok := c.Get(ClaimAudience)
	if !ok {
		return nil, false
	}
	if s, ok := v.AsString(); ok {
		return []string{s}, true
	}
	items, ok := v.AsArray()
	if !ok {
		return nil, false
	}
	aud := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.AsString()
		if !ok {
			return nil, false
		}
		aud = append(aud, s)
	}
	return aud, true
}

// ExpiresAt returns the "exp" claim.
func (c *ClaimsSet) ExpiresAt() (time.Time, bool) {
	return c.timeClaim(ClaimExpiresAt)
}

// NotBefore returns the "nbf" claim.
func (c *ClaimsSet) NotBefore() (time.Time, bool) {
	return c.timeClaim(ClaimNotBefore)
}

// IssuedAt returns the "iat" claim.
func (c *ClaimsSet) IssuedAt() (time.Time, bool) {
	return c.timeClaim(ClaimIssuedAt)
}

// SetIssuer sets the "iss" claim.
func (c *ClaimsSet) SetIssuer(iss string) {
	c.Set(ClaimIssuer, StringValue(iss))
}

// SetSubject sets the "sub" claim.
func (c *ClaimsSet) SetSubject(sub string) {
	c.Set(ClaimSubject, StringValue(sub))
}

// SetID sets the "jti" claim.
func (c *ClaimsSet) SetID(jti string) {
	c.Set(ClaimID, StringValue(jti))
}

// SetAudience stores a single audience as a string and several as an array.
func (c *ClaimsSet) SetAudience(aud ...string) {
	if len(aud) == 1 {
		c.Set(ClaimAudience, StringValue(aud[0]))
		return
	}
	c.Set(ClaimAudience, AnyValue(aud))
}

// SetExpiresAt stores t as whole seconds since the epoch.
func (c *ClaimsSet) SetExpiresAt(t time.Time) {
	c.Set(ClaimExpiresAt, numericDate(t))
}

// SetNotBefore sets the "nbf" claim to t in whole seconds.
func (c *ClaimsSet) SetNotBefore(t time.Time) {
	c.Set(ClaimNotBefore, numericDate(t))
}

// SetIssuedAt sets the "iat" claim to t in whole seconds.
func (c *ClaimsSet) SetIssuedAt(t time.Time) {
	c.Set(ClaimIssuedAt, numericDate(t))
}

// NewTokenID returns a random value suitable for the "jti" claim.
func NewTokenID() string {
	return uuid.NewString()
}

func (c *ClaimsSet) stringClaim(name string) (string, bool) {
	v, ok := c.Get(name)
	if !ok {
		return "", false
	}
	return v.AsString()
}

func (c *ClaimsSet) timeClaim(name string) (time.Time, bool) {
	v, ok := c.Get(name)
	if !ok {
		return time.Time{}, false
	}
	f, ok := v.AsFloat64()
	if !ok || f < 0 || f > maxNumericDate {
		return time.Time{}, false
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC(), true
}

func numericDate(t time.Time) Value {
	return IntValue(t.Unix())
}
