// file: internals/features/identities/auth/service/keycloak_client.go
package service

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"bantal_backend/internals/configs"
	"bantal_backend/internals/features/identities/auth/dto"
	helper "bantal_backend/internals/helpers"
)

const defaultTimeout = 10 * time.Second

// KeycloakClient: proxy tipis ke token endpoint realm
type KeycloakClient struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

func NewKeycloakClientFromConfig() *KeycloakClient {
	if configs.KeycloakBaseURL == "" || configs.KeycloakRealm == "" {
		return &KeycloakClient{}
	}
	return &KeycloakClient{
		TokenURL:     configs.KeycloakTokenURL(),
		ClientID:     configs.KeycloakClientID,
		ClientSecret: configs.KeycloakClientSecret,
		Timeout:      defaultTimeout,
	}
}

func (k *KeycloakClient) Enabled() bool { return strings.TrimSpace(k.TokenURL) != "" }

func (k *KeycloakClient) PasswordGrant(ctx context.Context, username, password string) (*dto.TokenResponse, error) {
	return k.grant(ctx, map[string]string{
		"grant_type": "password",
		"username":   username,
		"password":   password,
		"scope":      "openid",
	})
}

func (k *KeycloakClient) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	return k.grant(ctx, map[string]string{
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
	})
}

func (k *KeycloakClient) grant(ctx context.Context, form map[string]string) (*dto.TokenResponse, error) {
	if !k.Enabled() {
		return nil, helper.Integration(http.StatusServiceUnavailable, "SSO belum dikonfigurasi", nil)
	}

	timeout := k.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < timeout {
			timeout = left
		}
	}

	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)
	for key, v := range form {
		args.Set(key, v)
	}
	args.Set("client_id", k.ClientID)
	if k.ClientSecret != "" {
		args.Set("client_secret", k.ClientSecret)
	}

	agent := fiber.Post(k.TokenURL).Form(args).Timeout(timeout)
	if err := agent.Parse(); err != nil {
		return nil, helper.Internal("gagal menyiapkan request SSO", err)
	}
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		log.Printf("[ERROR] SSO token endpoint: %v", errs)
		return nil, helper.Integration(http.StatusBadGateway, "SSO tidak dapat dihubungi", errors.Join(errs...))
	}
	if code < 200 || code >= 300 {
		return nil, helper.Integration(code, dto.ProviderMessage(body), nil)
	}
	tok, err := dto.DecodeToken(body)
	if err != nil || tok.AccessToken == "" {
		return nil, helper.Integration(code, "Respons SSO tidak valid", err)
	}
	return tok, nil
}
