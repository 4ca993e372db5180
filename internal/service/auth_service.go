package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"strings"
	"sync"

	"foodcourt/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrIncompleteCode     = errors.New("please enter the full verification code")
	ErrInvalidCode        = errors.New("verification code does not match")
	ErrCodeExpired        = errors.New("verification code expired, request a new one")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found")
)

var nonDigits = regexp.MustCompile(`\D`)

// FieldErrors carries per-field validation messages, surfaced to the
// client as inline form errors.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

type SignupRequest struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// ValidateSignup applies the signup form rules: name present, phone
// reducing to exactly 10 digits, password of at least 6 characters.
func ValidateSignup(req SignupRequest) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(req.FullName) == "" {
		errs["full_name"] = "Full name is required"
	}
	if strings.TrimSpace(req.PhoneNumber) == "" {
		errs["phone_number"] = "Phone number is required"
	} else if len(nonDigits.ReplaceAllString(req.PhoneNumber, "")) != 10 {
		errs["phone_number"] = "Please enter a valid 10-digit phone number"
	}
	if req.Password == "" {
		errs["password"] = "Password is required"
	} else if len(req.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// FormatPhoneNumber renders a 10-digit number as (123) 456-7890. Inputs
// that do not reduce to 10 digits come back unchanged.
func FormatPhoneNumber(phone string) string {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	if len(cleaned) != 10 {
		return phone
	}
	return fmt.Sprintf("(%s) %s-%s", cleaned[:3], cleaned[3:6], cleaned[6:])
}

// MockSMSSender stands in for a real SMS gateway: it makes up a 6-digit
// code and reports it in the log instead of sending anything.
type MockSMSSender struct{}

func (MockSMSSender) Send(phone string) (string, error) {
	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	log.Printf("[sms] verification code for %s: %s", phone, code)
	return code, nil
}

// AuthService handles signup, phone verification and login. Verification
// codes and session tokens live in Redis; the user table itself is an
// in-memory map seeded with the demo accounts. There is no real
// credential security here, matching the app this models.
type AuthService struct {
	codes    CodeCache
	sessions SessionCache
	sms      SMSSender

	mu      sync.Mutex
	users   map[string]domain.User // keyed by formatted phone
	pending map[string]domain.User
}

func NewAuthService(codes CodeCache, sessions SessionCache, sms SMSSender) *AuthService {
	s := &AuthService{
		codes:    codes,
		sessions: sessions,
		sms:      sms,
		users:    make(map[string]domain.User),
		pending:  make(map[string]domain.User),
	}
	for _, u := range seedUsers() {
		s.users[u.Phone] = u
	}
	return s
}

func seedUsers() []domain.User {
	return []domain.User{
		{FullName: "Desi Tadka Admin", Phone: "(111) 111-1111", Email: "admin@desitadka.com", Password: "admin123", Role: domain.RoleAdmin, Hotel: "Desi Tadka"},
		{FullName: "Brothers Cafe Admin", Phone: "(222) 222-2222", Email: "admin@brotherscafe.com", Password: "admin123", Role: domain.RoleAdmin, Hotel: "Brothers Cafe"},
		{FullName: "Platform Owner", Phone: "(333) 333-3333", Email: "owner@foodcourt.com", Password: "owner123", Role: domain.RoleOwner},
	}
}

// Signup validates the form, parks the profile as pending and sends a
// verification code to the phone. It returns the formatted phone number
// the verification step expects.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (string, error) {
	if errs := ValidateSignup(req); errs != nil {
		return "", errs
	}
	phone := FormatPhoneNumber(req.PhoneNumber)

	s.mu.Lock()
	s.pending[phone] = domain.User{
		FullName: req.FullName,
		Phone:    phone,
		Password: req.Password,
		Role:     domain.RoleCustomer,
	}
	s.mu.Unlock()

	code, err := s.sms.Send(phone)
	if err != nil {
		return "", fmt.Errorf("failed to send verification code: %w", err)
	}
	if err := s.codes.SetCode(ctx, phone, code); err != nil {
		return "", fmt.Errorf("failed to store verification code: %w", err)
	}
	return phone, nil
}

// Verify checks the 6-digit code for a phone and, on success, promotes
// the pending profile to a real user and opens a session.
func (s *AuthService) Verify(ctx context.Context, phone, code string) (string, domain.User, error) {
	if len(code) != 6 {
		return "", domain.User{}, ErrIncompleteCode
	}
	expected, err := s.codes.GetCode(ctx, phone)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("failed to read verification code: %w", err)
	}
	if expected == "" {
		return "", domain.User{}, ErrCodeExpired
	}
	if code != expected {
		return "", domain.User{}, ErrInvalidCode
	}

	s.mu.Lock()
	user, ok := s.pending[phone]
	if ok {
		delete(s.pending, phone)
		s.users[phone] = user
	} else {
		user, ok = s.users[phone]
	}
	s.mu.Unlock()
	if !ok {
		return "", domain.User{}, ErrInvalidCredentials
	}

	return s.openSession(ctx, user)
}

// Login authenticates a seeded or verified account by email and
// password. Passwords are compared plainly; securing them is out of
// scope for this app.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	if email == "" || password == "" {
		return "", domain.User{}, ErrInvalidCredentials
	}
	s.mu.Lock()
	var found domain.User
	ok := false
	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			found, ok = u, true
			break
		}
	}
	s.mu.Unlock()
	if !ok {
		return "", domain.User{}, ErrInvalidCredentials
	}
	return s.openSession(ctx, found)
}

func (s *AuthService) openSession(ctx context.Context, user domain.User) (string, domain.User, error) {
	token := uuid.NewString()
	if err := s.sessions.SetSession(ctx, token, user.Phone); err != nil {
		return "", domain.User{}, fmt.Errorf("failed to store session: %w", err)
	}
	return token, user, nil
}

// Session resolves a token back to its user.
func (s *AuthService) Session(ctx context.Context, token string) (domain.User, error) {
	phone, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to read session: %w", err)
	}
	if phone == "" {
		return domain.User{}, ErrSessionNotFound
	}
	s.mu.Lock()
	user, ok := s.users[phone]
	s.mu.Unlock()
	if !ok {
		return domain.User{}, ErrSessionNotFound
	}
	return user, nil
}

var _ AuthServiceInterface = (*AuthService)(nil)
