// file: internals/features/identities/auth/dto/auth_dto.go
package dto

import "strings"

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() { r.Username = strings.TrimSpace(r.Username) }

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse mengikuti bentuk respons token endpoint OpenID
type TokenResponse struct {
	AccessToken      string `json:"access_token"`
	ExpiresIn        int    `json:"expires_in"`
	RefreshToken     string `json:"refresh_token"`
	RefreshExpiresIn int    `json:"refresh_expires_in"`
	TokenType        string `json:"token_type"`
	Scope            string `json:"scope,omitempty"`
}

type providerError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ProviderMessage mengambil pesan error dari body SSO (fallback ke body mentah)
func ProviderMessage(body []byte) string {
	var pe providerError
	if err := decode(body, &pe); err == nil {
		if s := strings.TrimSpace(pe.ErrorDescription); s != "" {
			return s
		}
		if s := strings.TrimSpace(pe.Error); s != "" {
			return s
		}
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
