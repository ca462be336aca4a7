package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/greenloop/marketplace/client/internal/otel"
	"github.com/greenloop/marketplace/client/internal/service"
	"github.com/greenloop/marketplace/client/pkg/request"
	"github.com/greenloop/marketplace/client/pkg/response"
	inErrors "github.com/greenloop/marketplace/internal/errors"
	inHttp "github.com/greenloop/marketplace/internal/http"
	"github.com/greenloop/marketplace/internal/log"
	inOtel "github.com/greenloop/marketplace/internal/otel"
)

type OrderController struct {
	checkout *service.CheckoutService
	orders   *service.OrderService
}

func AttachOrderController(
	router *mux.Router,
	checkout *service.CheckoutService,
	orders *service.OrderService,
) {
	controller := OrderController{checkout: checkout, orders: orders}

	router.HandleFunc("/checkout", controller.Checkout).Methods(http.MethodPost)
	router.HandleFunc("/orders", controller.ListOrders).Methods(http.MethodGet)
}

func (t OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController Checkout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController Checkout").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	reqBody := request.Checkout{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating request body").Logger()
	logger.Info().Msg("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().
		Str(log.KeyProcess, "checking out").
		Str(log.KeyPaymentMethod, reqBody.PaymentMethod).
		Logger()
	logger.Info().Msg("checking out")
	c = logger.WithContext(c)
	order, err := t.checkout.Checkout(c, reqBody.OrderDetails())
	if err != nil {
		err = fmt.Errorf("failed checking out with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		if errors.Is(err, inErrors.ErrEmptyCart) {
			statusCode = http.StatusConflict
		}
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyOrderID, order.ID).Logger()
	logger.Info().Msg("checked out")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully checked out",
		"data": map[string]interface{}{
			"order": response.NewOrder(order),
		},
	})
}

func (t OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController ListOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController ListOrders").
		Str(log.KeyProcess, "listing orders").
		Logger()

	logger.Info().Msg("listing orders")
	c = logger.WithContext(c)
	orders := t.orders.ListOrders(c)
	logger.Info().Int(log.KeyOrderCount, len(orders)).Msg("listed orders")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully listed orders",
		"data": map[string]interface{}{
			"orders": response.NewOrders(orders),
		},
	})
}
