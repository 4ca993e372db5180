package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"foodcourt/internal/cart"
	"foodcourt/internal/domain"
	"foodcourt/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Cart      service.CartServiceInterface
	Payments  service.PaymentServiceInterface
	Auth      service.AuthServiceInterface
	Dashboard service.DashboardServiceInterface
	Catalog   service.CatalogBrowser
}

func NewHandler(cartSvc service.CartServiceInterface, paySvc service.PaymentServiceInterface, authSvc service.AuthServiceInterface, dashSvc service.DashboardServiceInterface, catalog service.CatalogBrowser) *Handler {
	return &Handler{
		Cart:      cartSvc,
		Payments:  paySvc,
		Auth:      authSvc,
		Dashboard: dashSvc,
		Catalog:   catalog,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/hotels", h.getHotels).Methods("GET")
	r.HandleFunc("/api/hotels/{title}/menu", h.getMenu).Methods("GET")

	r.HandleFunc("/api/selection", h.getSelection).Methods("GET")
	r.HandleFunc("/api/selection/{itemId}", h.addSelection).Methods("POST")
	r.HandleFunc("/api/selection/{itemId}", h.removeSelection).Methods("DELETE")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.putCart).Methods("POST")
	r.HandleFunc("/api/cart/from-selection", h.cartFromSelection).Methods("POST")
	r.HandleFunc("/api/cart/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/cart/{itemId}/quantity", h.updateQuantity).Methods("PUT")
	r.HandleFunc("/api/cart/{itemId}", h.removeLineItem).Methods("DELETE")

	r.HandleFunc("/api/payment", h.processPayment).Methods("POST")
	r.HandleFunc("/api/receipts/{orderId}/qrcode", h.getReceiptQRCode).Methods("GET")

	r.HandleFunc("/api/auth/signup", h.signup).Methods("POST")
	r.HandleFunc("/api/auth/verify", h.verify).Methods("POST")
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")

	r.HandleFunc("/api/orders", h.myOrders).Methods("GET")

	r.HandleFunc("/api/admin/orders", h.adminOrders).Methods("GET")
	r.HandleFunc("/api/admin/orders/today-total", h.adminTodayTotal).Methods("GET")
	r.HandleFunc("/api/admin/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/admin/menu", h.addMenuItem).Methods("POST")

	r.HandleFunc("/api/owner/orders", h.ownerOrders).Methods("GET")
	r.HandleFunc("/api/owner/hotels", h.ownerHotels).Methods("GET")
}

// sessionID scopes cart state per caller. Clients that do not send the
// header share the guest cart, which matches a single-device app.
func sessionID(r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	return "guest"
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "foodcourt",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) getHotels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Hotels())
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	title := mux.Vars(r)["title"]
	menu := h.Catalog.Menu(title)
	if menu == nil {
		http.Error(w, "Hotel not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

type selectionResponse struct {
	Items      []cart.Entry `json:"items"`
	TotalItems int          `json:"total_items"`
	TotalCost  float64      `json:"total_cost"`
}

func (h *Handler) selectionPayload(sel *cart.SelectionStore) selectionResponse {
	return selectionResponse{
		Items:      sel.Entries(),
		TotalItems: sel.TotalItems(),
		TotalCost:  h.Cart.SelectionTotal(sel),
	}
}

func (h *Handler) getSelection(w http.ResponseWriter, r *http.Request) {
	sel := h.Cart.LoadSelection(r.Context(), sessionID(r))
	writeJSON(w, http.StatusOK, h.selectionPayload(sel))
}

func (h *Handler) addSelection(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]
	sel := h.Cart.AddItem(r.Context(), sessionID(r), itemID)
	writeJSON(w, http.StatusOK, h.selectionPayload(sel))
}

func (h *Handler) removeSelection(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]
	sel := h.Cart.RemoveItem(r.Context(), sessionID(r), itemID)
	writeJSON(w, http.StatusOK, h.selectionPayload(sel))
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	items := h.Cart.ViewCart(r.Context(), sessionID(r), nil)
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) putCart(w http.ResponseWriter, r *http.Request) {
	var items []domain.CartLineItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if items == nil {
		items = []domain.CartLineItem{}
	}
	result := h.Cart.ViewCart(r.Context(), sessionID(r), items)
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) cartFromSelection(w http.ResponseWriter, r *http.Request) {
	items := h.Cart.ProjectSelection(r.Context(), sessionID(r))
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]
	var body struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	items := h.Cart.UpdateQuantity(r.Context(), sessionID(r), itemID, body.Delta)
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) removeLineItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]
	items := h.Cart.RemoveLineItem(r.Context(), sessionID(r), itemID)
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	total, err := h.Cart.Checkout(r.Context(), sessionID(r))
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			http.Error(w, "Cart is empty", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"subtotal":      total - service.DeliveryFee,
		"delivery_fee":  service.DeliveryFee,
		"total":         total,
		"display_total": fmt.Sprintf("Rs. %.2f", total),
	})
}

func (h *Handler) processPayment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PaymentMethod string `json:"payment_method"`
		CustomerName  string `json:"customer_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session := sessionID(r)
	total, err := h.Cart.Checkout(r.Context(), session)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			http.Error(w, "Cart is empty", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	items := h.Cart.ViewCart(r.Context(), session, nil)
	req := service.PaymentRequest{
		Total:         total,
		PaymentMethod: body.PaymentMethod,
		CustomerName:  body.CustomerName,
		Hotel:         hotelOf(items),
		ItemsSummary:  summarize(items),
	}
	order, err := h.Payments.Process(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPaymentMethod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.Cart.ClearCart(session)
	writeJSON(w, http.StatusOK, order)
}

func hotelOf(items []domain.CartLineItem) string {
	if len(items) == 0 {
		return ""
	}
	return items[0].Restaurant
}

func summarize(items []domain.CartLineItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}

func (h *Handler) getReceiptQRCode(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]
	png, err := h.Payments.ReceiptQR(orderID)
	if err != nil {
		http.Error(w, "Error generating QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	phone, err := h.Auth.Signup(r.Context(), req)
	if err != nil {
		var fieldErrs service.FieldErrors
		if errors.As(err, &fieldErrs) {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrs})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"phone_number": phone})
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PhoneNumber string `json:"phone_number"`
		Code        string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token, user, err := h.Auth.Verify(r.Context(), body.PhoneNumber, body.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIncompleteCode), errors.Is(err, service.ErrCodeExpired):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidCode), errors.Is(err, service.ErrInvalidCredentials):
			http.Error(w, err.Error(), http.StatusUnauthorized)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"token": token, "user": user})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token, user, err := h.Auth.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"token": token, "user": user})
}

// requireRole resolves the caller's session token and checks the role.
// Admin routes also pin the caller to their own hotel.
func (h *Handler) requireRole(w http.ResponseWriter, r *http.Request, roles ...string) (domain.User, bool) {
	token := r.Header.Get("Authorization")
	token = strings.TrimPrefix(token, "Bearer ")
	if token == "" {
		http.Error(w, "Missing authorization token", http.StatusUnauthorized)
		return domain.User{}, false
	}
	user, err := h.Auth.Session(r.Context(), token)
	if err != nil {
		http.Error(w, "Invalid session", http.StatusUnauthorized)
		return domain.User{}, false
	}
	for _, role := range roles {
		if user.Role == role {
			return user, true
		}
	}
	http.Error(w, "Forbidden", http.StatusForbidden)
	return domain.User{}, false
}

// myOrders lists the order history for the logged-in customer, matched
// by the name orders were placed under.
func (h *Handler) myOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireRole(w, r, domain.RoleCustomer, domain.RoleAdmin, domain.RoleOwner)
	if !ok {
		return
	}
	orders, err := h.Dashboard.AllOrders(user.FullName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) adminOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireRole(w, r, domain.RoleAdmin)
	if !ok {
		return
	}
	orders, err := h.Dashboard.HotelOrders(user.Hotel)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) adminTodayTotal(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireRole(w, r, domain.RoleAdmin)
	if !ok {
		return
	}
	total, err := h.Dashboard.TodayTotal(user.Hotel)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total":         total,
		"display_total": fmt.Sprintf("Rs. %.2f", total),
	})
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleAdmin, domain.RoleOwner); !ok {
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Dashboard.UpdateStatus(id, body.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrOrderMissing):
			http.Error(w, "Order not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": body.Status})
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireRole(w, r, domain.RoleAdmin)
	if !ok {
		return
	}
	var item domain.FoodItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Dashboard.AddMenuItem(user.Hotel, item); err != nil {
		var fieldErrs service.FieldErrors
		if errors.As(err, &fieldErrs) {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrs})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) ownerOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleOwner); !ok {
		return
	}
	orders, err := h.Dashboard.AllOrders(r.URL.Query().Get("search"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) ownerHotels(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleOwner); !ok {
		return
	}
	hotels, err := h.Dashboard.PartnerHotels(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, hotels)
}
