// file: internals/features/identities/auth/dto/codec.go
package dto

import "github.com/bytedance/sonic"

func decode(body []byte, dst any) error { return sonic.Unmarshal(body, dst) }

func DecodeToken(body []byte) (*TokenResponse, error) {
	var t TokenResponse
	if err := decode(body, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
