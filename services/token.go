package services

import (
	"fmt"
	"time"

	"hotel-management/errors"

	"github.com/dgrijalva/jwt-go"
)

type UserInfo struct {
	OperatorID string `json:"operatorId"`
}

// Claims của access token; StandardClaims.Id là id của session trong Redis
type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// GenerateToken ký access token HS256 cho operator
func GenerateToken(userInfo UserInfo, sessionID string, secret []byte, issuedAt time.Time, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			Id:        sessionID,
			Subject:   userInfo.OperatorID,
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: issuedAt.Add(ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken kiểm tra chữ ký, thuật toán và hạn của token rồi trả về claims
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid token", err)
	}
	if !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid token", nil)
	}
	if claims.UserInfo.OperatorID == "" || claims.Id == "" {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "token is missing operator or session", nil)
	}
	return claims, nil
}
