package services

import (
	"testing"
	"time"

	apperrors "hotel-management/errors"

	"github.com/dgrijalva/jwt-go"
)

var testSecret = []byte("test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(UserInfo{OperatorID: "op1"}, "sess-1", testSecret, time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserInfo.OperatorID != "op1" || claims.Id != "sess-1" || claims.Subject != "op1" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestParseTokenRejects(t *testing.T) {
	valid, _ := GenerateToken(UserInfo{OperatorID: "op1"}, "sess-1", testSecret, time.Now(), time.Hour)
	expired, _ := GenerateToken(UserInfo{OperatorID: "op1"}, "sess-1", testSecret, time.Now().Add(-2*time.Hour), time.Hour)
	noSession, _ := GenerateToken(UserInfo{OperatorID: "op1"}, "", testSecret, time.Now(), time.Hour)
	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserInfo:       UserInfo{OperatorID: "op1"},
		StandardClaims: jwt.StandardClaims{Id: "sess-1"},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	cases := map[string]struct {
		token  string
		secret []byte
	}{
		"wrong secret": {valid, []byte("other")},
		"expired":      {expired, testSecret},
		"no session":   {noSession, testSecret},
		"alg none":     {none, testSecret},
		"garbage":      {"not-a-token", testSecret},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseToken(tc.token, tc.secret)
			if !apperrors.HasCode(err, apperrors.ErrCodeInvalidToken) {
				t.Fatalf("expected INVALID_TOKEN, got %v", err)
			}
		})
	}
}
