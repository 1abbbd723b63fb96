package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wheeloop/internal/dto/request"
	"wheeloop/internal/dto/response"
	"wheeloop/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeRentalService struct {
	created    []string // user ids passed to CreateRental
	listedUser string
}

func (f *fakeRentalService) CreateRental(ctx context.Context, userID string, req *request.CreateRentalRequest) (*response.RentalQuoteResponse, error) {
	f.created = append(f.created, userID)
	return &response.RentalQuoteResponse{
		RentalResponse: response.RentalResponse{ID: "rental-1", UserID: userID},
		TotalAmount:    500,
	}, nil
}

func (f *fakeRentalService) GetUserRentals(ctx context.Context, userID string) ([]response.RentalResponse, error) {
	f.listedUser = userID
	return nil, nil
}

func (f *fakeRentalService) GetAllRentals(ctx context.Context) ([]response.RentalResponse, error) {
	return nil, nil
}

func (f *fakeRentalService) UpdateRental(ctx context.Context, rentalID string, req *request.UpdateRentalRequest) (*response.RentalResponse, error) {
	return &response.RentalResponse{ID: rentalID}, nil
}

func (f *fakeRentalService) DeleteRental(ctx context.Context, rentalID string) error {
	return nil
}

const rentalBody = `{"car_id":"11111111-1111-4111-8111-111111111111","pick_up_location":"Airport","start_date":"2026-03-01","end_date":"2026-03-06","driver_days":0}`

func TestCreateRentalRequiresAuth(t *testing.T) {
	svc := &fakeRentalService{}
	handler := NewRentalHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/rental", strings.NewReader(rentalBody))
	handler.CreateRental(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if len(svc.created) != 0 {
		t.Error("rental created without an authenticated user")
	}
}

func TestCreateRentalUsesContextUser(t *testing.T) {
	svc := &fakeRentalService{}
	handler := NewRentalHandler(svc, zap.NewNop())
	userID := uuid.New()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/rental", strings.NewReader(rentalBody))
	req = req.WithContext(utils.SetUserContext(req.Context(), userID, "customer"))
	handler.CreateRental(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if len(svc.created) != 1 || svc.created[0] != userID.String() {
		t.Errorf("created with user %v, want %s", svc.created, userID)
	}
}

func TestCreateRentalValidatesBody(t *testing.T) {
	svc := &fakeRentalService{}
	handler := NewRentalHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/rental",
		strings.NewReader(`{"car_id":"not-a-uuid","pick_up_location":"Airport","start_date":"2026-03-01","end_date":"2026-03-06"}`))
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "customer"))
	handler.CreateRental(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(svc.created) != 0 {
		t.Error("invalid rental reached the service")
	}
}

func TestGetUserRentalsUsesContextUser(t *testing.T) {
	svc := &fakeRentalService{}
	handler := NewRentalHandler(svc, zap.NewNop())
	userID := uuid.New()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rental/userBookings", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), userID, "customer"))
	handler.GetUserRentals(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.listedUser != userID.String() {
		t.Errorf("listed rentals for %q, want %s", svc.listedUser, userID)
	}
}
