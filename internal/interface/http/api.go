package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domcart "example.com/food-ordering/app/internal/domain/cart"
	dommenu "example.com/food-ordering/app/internal/domain/menu"
	domorder "example.com/food-ordering/app/internal/domain/order"
	dompayment "example.com/food-ordering/app/internal/domain/payment"
	domuser "example.com/food-ordering/app/internal/domain/user"
	authuc "example.com/food-ordering/app/internal/usecase/auth"
	cartuc "example.com/food-ordering/app/internal/usecase/cart"
	orderuc "example.com/food-ordering/app/internal/usecase/order"
	useruc "example.com/food-ordering/app/internal/usecase/user"
)

type API struct {
	authSvc   *authuc.Service
	userSvc   *useruc.Service
	cartSvc   *cartuc.Service
	orderSvc  *orderuc.Service
	validator *validator.Validate
	tokenSvc  authuc.TokenService
}

type Dependencies struct {
	AuthService  *authuc.Service
	UserService  *useruc.Service
	CartService  *cartuc.Service
	OrderService *orderuc.Service
	TokenService authuc.TokenService
}

func NewAPI(deps Dependencies) *API {
	return &API{
		authSvc:   deps.AuthService,
		userSvc:   deps.UserService,
		cartSvc:   deps.CartService,
		orderSvc:  deps.OrderService,
		tokenSvc:  deps.TokenService,
		validator: validator.New(),
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", a.handleRegister)
		r.Post("/auth/login", a.handleLogin)

		r.Group(func(pr chi.Router) {
			pr.Use(a.authMiddleware)
			pr.Get("/me/menu", a.handleGetMenu)
			pr.Get("/me/cart", a.handleViewCart)
			pr.Post("/me/cart/items", a.handleAddCartItem)
			pr.Delete("/me/cart/items/{name}", a.handleRemoveCartItem)
			pr.Get("/me/checkout", a.handleCheckoutSummary)
			pr.Put("/me/checkout/instructions", a.handleSetInstructions)
			pr.Post("/me/checkout/confirm", a.handleConfirmOrder)
			pr.Get("/me/address", a.handleGetAddress)
			pr.Put("/me/address", a.handleUpdateAddress)
			pr.Get("/me/orders", a.handleOrderHistory)
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func mapLines(lines []domcart.LineView) []map[string]any {
	out := make([]map[string]any, 0, len(lines))
	for _, l := range lines {
		out = append(out, map[string]any{
			"name":     l.Name,
			"quantity": l.Quantity,
			"subtotal": l.Subtotal,
		})
	}
	return out
}

func mapSummary(s domorder.CheckoutSummary) map[string]any {
	return map[string]any{
		"items": mapLines(s.Items),
		"total_info": map[string]any{
			"subtotal":     s.Totals.Subtotal,
			"tax":          s.Totals.Tax,
			"delivery_fee": s.Totals.DeliveryFee,
			"total":        s.Totals.Total,
		},
		"delivery_address":     s.DeliveryAddress,
		"special_instructions": s.SpecialInstructions,
	}
}

func mapConfirmation(c domorder.Confirmation) map[string]any {
	return map[string]any{
		"order_id":           c.OrderID,
		"estimated_delivery": c.EstimatedDelivery.Format(time.RFC3339),
		"message":            c.Message,
	}
}

func mapRecord(rec domorder.Record) map[string]any {
	return map[string]any{
		"order_id": rec.OrderID,
		"items":    rec.Items,
		"total":    rec.Total,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	var decline *dompayment.DeclineError
	switch {
	case errors.As(err, &decline):
		respondError(w, http.StatusPaymentRequired, err)
	case errors.Is(err, domcart.ErrInvalidQuantity),
		errors.Is(err, domcart.ErrNegativePrice),
		errors.Is(err, dommenu.ErrItemNotOnMenu),
		errors.Is(err, domorder.ErrEmptyCart),
		errors.Is(err, domorder.ErrMissingAddress),
		errors.Is(err, dompayment.ErrInvalidMethod),
		errors.Is(err, dompayment.ErrInvalidCard),
		errors.Is(err, domuser.ErrInvalidEmail),
		errors.Is(err, domuser.ErrWeakPassword),
		errors.Is(err, domuser.ErrPasswordMismatch),
		errors.Is(err, domuser.ErrEmptyAddress):
		respondError(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, domorder.ErrAlreadyConfirmed),
		errors.Is(err, domuser.ErrEmailAlreadyUsed):
		respondError(w, http.StatusConflict, err)
	case errors.Is(err, domuser.ErrUserNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domuser.ErrUnauthorized),
		errors.Is(err, domuser.ErrInvalidCredential):
		respondError(w, http.StatusUnauthorized, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
