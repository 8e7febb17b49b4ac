package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Config parámetros de firma y validación. Se inyecta completa al construir
// el Issuer; la capa de negocio no lee configuración por su cuenta.
type Config struct {
	Secret     string
	Issuer     string
	Audience   string
	ExpMinutes int
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Roles viaja en el token para que el middleware RBAC decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// Issuer emite y valida tokens HS256 con la configuración inyectada.
type Issuer struct {
	cfg Config
}

// New construye el emisor de tokens. Falla si el secret está vacío.
func New(cfg Config) (*Issuer, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	return &Issuer{cfg: cfg}, nil
}

// Generate emite un token firmado con sub (id de usuario), email, un jti
// único por llamada y un claim roles con cada rol del usuario.
func (i *Issuer) Generate(userID int, email string, roles []string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.cfg.Issuer,
			Audience:  jwt.ClaimStrings{i.cfg.Audience},
			Subject:   strconv.Itoa(userID),
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(i.cfg.ExpMinutes) * time.Minute)),
		},
		Email: email,
		Roles: roles,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(i.cfg.Secret))
}

// Parse valida firma, emisor, audiencia y expiración, y devuelve los claims.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
			}
			return []byte(i.cfg.Secret), nil
		},
		jwt.WithIssuer(i.cfg.Issuer),
		jwt.WithAudience(i.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// UserID devuelve el sub como entero.
func (c *Claims) UserID() (int, error) {
	return strconv.Atoi(c.Subject)
}
