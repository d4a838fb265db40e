package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken возвращается, когда токен не прошёл проверку:
// битая подпись, неожиданный алгоритм, повреждённая кодировка
// или отсутствующий claim.
var ErrInvalidToken = errors.New("invalid token")

// TokenService выпускает и проверяет stateless-токены идентичности.
// Подпись HMAC-SHA256 общим секретом; на сервере токены не хранятся.
//
// Срок жизни токена не ограничен — exp не выставляется. Это осознанное
// упрощение (клиент сам «забывает» токен при выходе), и известная
// слабость: отозвать выданный токен можно только сменой секрета.
type TokenService struct {
	secret []byte
}

// NewTokenService создаёт сервис с заданным секретом подписи.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue выпускает токен для пользователя. Payload детерминирован:
// единственный claim "id" с идентификатором субъекта.
func (s *TokenService) Issue(userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": userID,
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись и возвращает ID субъекта.
// Любое искажение payload или подписи даёт ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	// JSON-числа приходят как float64
	raw, ok := claims["id"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}
	return int64(raw), nil
}
