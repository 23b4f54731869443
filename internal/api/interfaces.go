package api

import (
	"github.com/limbo/journowl/pkg/entity"
	jwtservice "github.com/limbo/journowl/pkg/jwt_service"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*jwtservice.JWTClaims, error)
}
