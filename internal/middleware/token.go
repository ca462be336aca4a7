package middleware

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/greenloop/marketplace/internal/config"
	"github.com/greenloop/marketplace/internal/constants"
	inErrors "github.com/greenloop/marketplace/internal/errors"
	"github.com/greenloop/marketplace/internal/log"
)

func verifyToken(c context.Context, token string) error {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "verifyToken").
		Logger()

	cfg := config.Get(c, constants.AppClientService)

	logger = logger.With().Str(log.KeyProcess, "parsing claims").Logger()
	jwtToken, err := jwt.ParseWithClaims(token,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.Application.SecretKey), nil
		},
		jwt.WithAudience(constants.AudienceClient),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		err = fmt.Errorf("failed parsing with claims with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("parsed claims")

	if !jwtToken.Valid {
		logger.Error().Err(inErrors.ErrTokenInvalid).Msg(inErrors.ErrTokenInvalid.Error())
		return inErrors.ErrTokenInvalid
	}

	return nil
}
