package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/clientstore"
	"storefront/internal/i18n"
	"storefront/internal/orders"
	"storefront/models"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// SubmitOrderHandler оформляет заказ: снимок корзины и кэшей сессии
// плюс контактная форма превращаются в одно уведомление. Хранилища
// чистятся только после подтвержденной доставки.
func (h *Handler) SubmitOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.Tracer.Start(r.Context(), "http.submit_order")
	defer span.End()

	var form models.ContactForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		errMsg := "Плохой JSON"
		http.Error(w, errMsg, http.StatusBadRequest)
		span.RecordError(err)
		span.SetStatus(codes.Error, errMsg)
		return
	}

	lang := clientstore.ReadLanguage(r)
	if form.Language == "" {
		form.Language = lang
	}

	sessionID := h.Sessions.EnsureSession(w, r)

	// снимок состояния берем под блокировкой сессии, сам Submit идет без
	// нее: параллельная отправка должна получить ErrInFlight, а не висеть
	// на замке
	unlock := h.Sessions.Lock(sessionID)
	cartMap := clientstore.ReadCart(r)
	prices := h.Sessions.Prices(sessionID)
	details := h.Sessions.Details(sessionID)
	unlock()

	clearState := func() {
		clientstore.ClearCart(w)
		h.Sessions.Clear(sessionID)
	}

	req, err := h.Submitter.Submit(ctx, sessionID, form, cartMap, prices, details, clearState)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "заказ не отправлен")

		switch {
		case errors.Is(err, orders.ErrEmptyCart):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, orders.ErrInFlight):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, orders.ErrDelivery):
			writeJSON(w, http.StatusBadGateway, map[string]string{
				"status":  "error",
				"message": i18n.OrderFailed(lang),
			})
		default:
			// ошибка валидации формы
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	span.SetAttributes(
		attribute.Int("order.items", len(req.Items)),
		attribute.Float64("order.total", req.TotalSum),
	)
	span.SetStatus(codes.Ok, "заказ отправлен")

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": i18n.OrderAccepted(lang),
	})
}
