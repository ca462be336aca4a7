package otel

import (
	"go.opentelemetry.io/otel"

	"github.com/greenloop/marketplace/internal/constants"
)

var Tracer = otel.Tracer(constants.AppClientService)
