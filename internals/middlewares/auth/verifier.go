// file: internals/middlewares/auth/verifier.go
package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"bantal_backend/internals/configs"
)

// Verifier memverifikasi signature access token SSO.
// RS256 dengan public key realm, atau HS256 dengan shared secret.
type Verifier struct {
	hmacSecret []byte
	rsaKey     *rsa.PublicKey
}

func NewHMACVerifier(secret string) *Verifier {
	return &Verifier{hmacSecret: []byte(secret)}
}

func NewRSAVerifier(key *rsa.PublicKey) *Verifier {
	return &Verifier{rsaKey: key}
}

// NewVerifierFromConfig: KEYCLOAK_PUBLIC_KEY diprioritaskan, fallback JWT_SECRET
func NewVerifierFromConfig() (*Verifier, error) {
	v := &Verifier{}
	if pk := strings.TrimSpace(configs.KeycloakPublicKey); pk != "" {
		key, err := parseRealmPublicKey(pk)
		if err != nil {
			return nil, fmt.Errorf("KEYCLOAK_PUBLIC_KEY tidak valid: %w", err)
		}
		v.rsaKey = key
	}
	if s := configs.JWTSecret; s != "" {
		v.hmacSecret = []byte(s)
	}
	if v.rsaKey == nil && v.hmacSecret == nil {
		return nil, errors.New("kunci verifikasi token belum diset")
	}
	return v, nil
}

// Keycloak menampilkan public key realm tanpa header PEM
func parseRealmPublicKey(raw string) (*rsa.PublicKey, error) {
	if !strings.HasPrefix(raw, "-----BEGIN") {
		raw = "-----BEGIN PUBLIC KEY-----\n" + raw + "\n-----END PUBLIC KEY-----"
	}
	return jwt.ParseRSAPublicKeyFromPEM([]byte(raw))
}

// Parse memverifikasi signature saja; exp dicek terpisah dengan toleransi skew.
func (v *Verifier) Parse(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodRSA:
			if v.rsaKey == nil {
				return nil, errors.New("RS256 tidak dikonfigurasi")
			}
			return v.rsaKey, nil
		case *jwt.SigningMethodHMAC:
			if v.hmacSecret == nil {
				return nil, errors.New("HS256 tidak dikonfigurasi")
			}
			return v.hmacSecret, nil
		}
		return nil, fmt.Errorf("algoritma %v tidak didukung", token.Header["alg"])
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}
