package jws

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/cybergodev/jws/internal/core"
	"github.com/cybergodev/jws/internal/security"
	"github.com/cybergodev/jws/internal/signing"
)

// Codec encodes and verifies HS256 tokens.
//
// A Codec holds configuration only. Secret keys are passed to every call
// and are never retained. A Codec is immutable and safe for concurrent use.
type Codec struct {
	method         signing.Method
	maxTokenSize   int
	minKeyLength   int
	rejectWeakKeys bool
	logger         *slog.Logger
}

var defaultCodec = &Codec{method: signing.HS256, logger: discardLogger}

// New creates a Codec with the optional configuration.
func New(config ...Config) (*Codec, error) {
	cfg := DefaultConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	method, err := signing.Lookup(AlgorithmHS256)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = discardLogger
	}

	return &Codec{
		method:         method,
		maxTokenSize:   cfg.MaxTokenSize,
		minKeyLength:   cfg.MinKeyLength,
		rejectWeakKeys: cfg.RejectWeakKeys,
		logger:         logger,
	}, nil
}

// Encode signs claims with key using the default codec.
func Encode(claims *ClaimsSet, key []byte) (string, error) {
	return defaultCodec.Encode(claims, key)
}

// Decode verifies token with key using the default codec and returns its
// claims.
func Decode(token string, key []byte) (*ClaimsSet, error) {
	return defaultCodec.Decode(token, key)
}

// Verify checks the signature of token using the default codec.
func Verify(token string, key []byte) error {
	return defaultCodec.Verify(token, key)
}

// Encode produces the compact serialization of claims signed with key.
// A nil claims set encodes as an empty object.
func (c *Codec) Encode(claims *ClaimsSet, key []byte) (string, error) {
	if err := c.checkKey(key); err != nil {
		return "", err
	}

	header := Header{Algorithm: c.method.Alg(), Type: TypeJWT}
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	claimsJSON, err := claims.MarshalJSON()
	if err != nil {
		logAttrs(c.logger, "encode failed", reasonAttr(err), algAttr(c.method.Alg()))
		return "", err
	}

	headerSegment := core.EncodeSegment(headerJSON)
	payloadSegment := core.EncodeSegment(claimsJSON)

	signature := c.method.Sign(core.SigningInput(headerSegment, payloadSegment), key)
	defer security.ZeroBytes(signature)

	return core.Join(headerSegment, payloadSegment, core.EncodeSegment(signature)), nil
}

// Decode verifies token against key and returns a fresh claims set. The
// payload is only decoded once the signature matches; no partial claims
// are ever returned.
//
// The header is not inspected. The algorithm is fixed by the Codec, never
// taken from the token.
func (c *Codec) Decode(token string, key []byte) (*ClaimsSet, error) {
	payloadSegment, err := c.verify(token, key)
	if err != nil {
		return nil, err
	}

	payload, err := core.DecodeSegment(payloadSegment)
	if err != nil {
		return nil, c.reject(fmt.Errorf("%w: payload segment: %w", ErrMalformedPayload, err))
	}

	claims, err := ParseClaims(payload)
	if err != nil {
		return nil, c.reject(err)
	}

	return claims, nil
}

// Verify checks the structure and signature of token without decoding the
// payload.
func (c *Codec) Verify(token string, key []byte) error {
	_, err := c.verify(token, key)
	return err
}

func (c *Codec) verify(token string, key []byte) (string, error) {
	if err := c.checkKey(key); err != nil {
		return "", err
	}

	if c.maxTokenSize > 0 && len(token) > c.maxTokenSize {
		return "", c.reject(fmt.Errorf("%w: token exceeds maximum size of %d bytes", ErrMalformedToken, c.maxTokenSize))
	}

	headerSegment, payloadSegment, signatureSegment, err := core.Split(token)
	if err != nil {
		return "", c.reject(err)
	}

	signingInput := core.SigningInput(headerSegment, payloadSegment)
	if err := c.method.Verify(signingInput, signatureSegment, key); err != nil {
		return "", c.reject(err)
	}

	return payloadSegment, nil
}

func (c *Codec) checkKey(key []byte) error {
	if len(key) < c.minKeyLength {
		return fmt.Errorf("%w: minimum %d bytes required, got %d", ErrInvalidKey, c.minKeyLength, len(key))
	}
	if c.rejectWeakKeys && security.IsWeakKey(key) {
		return fmt.Errorf("%w: key must have sufficient entropy", ErrInvalidKey)
	}
	return nil
}

func (c *Codec) reject(err error) error {
	logAttrs(c.logger, "token rejected", reasonAttr(err), algAttr(c.method.Alg()))
	return err
}
