// Package jws encodes and verifies JSON Web Signature tokens in compact
// serialization, signed with HMAC-SHA256 (HS256).
//
// A token is three base64url segments joined by dots:
//
//	base64url({"alg":"HS256","typ":"JWT"}) . base64url(claims JSON) . base64url(HMAC-SHA256(key, header.payload))
//
// # Usage
//
//	claims := jws.NewClaimsSet()
//	claims.InsertUnsafe("com.example.my-claim", "value")
//
//	token, err := jws.Encode(claims, []byte("secret"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	decoded, err := jws.Decode(token, []byte("secret"))
//	if err != nil {
//		switch {
//		case errors.Is(err, jws.ErrSignatureMismatch):
//			log.Println("signature does not match")
//		default:
//			log.Printf("token rejected: %v", err)
//		}
//		return
//	}
//
// # Claims
//
// ClaimsSet keeps claims in insertion order so that encoding is
// deterministic. Values are a tagged union (Value) over the JSON types.
// InsertUnsafe accepts any Go value and performs no schema checks; values
// that cannot be represented as JSON make Encode fail with
// ErrUnencodableClaims.
//
// Registered claims (iss, sub, aud, exp, nbf, iat, jti) have typed
// accessors. They read data only: expiry, audience and issuer policy is
// left to the caller.
//
// # Verification
//
// Decode recomputes the signature over the first two segments and compares
// it with the third in constant time before the payload is decoded. The
// token's header is not consulted, so a token cannot choose its own
// algorithm. Any future multi-algorithm support must keep the algorithm
// pinned per call in the same way.
//
// All decode failures (ErrMalformedToken, ErrInvalidEncoding,
// ErrMalformedPayload, ErrSignatureMismatch) mean the token is rejected;
// IsRejected reports whether an error is one of them.
//
// # Concurrency
//
// Encode, Decode and Verify are pure functions of their inputs and are safe
// for concurrent use. Secret keys are never stored, logged or included in
// errors.
package jws
