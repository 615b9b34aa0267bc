package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	dommenu "example.com/food-ordering/app/internal/domain/menu"
	domorder "example.com/food-ordering/app/internal/domain/order"
	"example.com/food-ordering/app/internal/infra/gateway"
	"example.com/food-ordering/app/internal/infra/memory"
	"example.com/food-ordering/app/internal/infra/security"
	api "example.com/food-ordering/app/internal/interface/http"
	authuc "example.com/food-ordering/app/internal/usecase/auth"
	cartuc "example.com/food-ordering/app/internal/usecase/cart"
	orderuc "example.com/food-ordering/app/internal/usecase/order"
	paymentuc "example.com/food-ordering/app/internal/usecase/payment"
	useruc "example.com/food-ordering/app/internal/usecase/user"
)

func main() {
	port := getenv("APP_PORT", "8080")
	jwtSecret := getenv("JWT_SECRET", "dev-secret-change-me")
	menuItems := strings.Split(getenv("MENU_ITEMS", "Burger,Pizza,Salad"), ",")
	pricing := domorder.Pricing{
		TaxRate:     getenvFloat("TAX_RATE", domorder.DefaultPricing.TaxRate),
		DeliveryFee: getenvFloat("DELIVERY_FEE", domorder.DefaultPricing.DeliveryFee),
	}

	users := memory.NewUserRepository()
	sessions := memory.NewSessionStore(users, dommenu.New(menuItems...), pricing)

	passwords := security.NewPasswordService(0)
	tokens := security.NewJWTService(jwtSecret, 24*time.Hour)

	paymentSvc := paymentuc.NewService(gateway.NewFakeGateway())
	authSvc := authuc.NewService(users, passwords, tokens)
	userSvc := useruc.NewService(users)
	cartSvc := cartuc.NewService(sessions)
	orderSvc := orderuc.NewService(sessions, paymentSvc)

	a := api.NewAPI(api.Dependencies{
		AuthService:  authSvc,
		UserService:  userSvc,
		CartService:  cartSvc,
		OrderService: orderSvc,
		TokenService: tokens,
	})

	log.Printf("listening on :%s ...", port)
	if err := http.ListenAndServe(":"+port, a.Router()); err != nil {
		log.Fatal(err)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("invalid %s: %v", k, err)
	}
	return f
}
