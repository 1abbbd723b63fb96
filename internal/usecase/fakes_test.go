package usecase

import (
	"context"

	"wheeloop/internal/data/entity"
	"wheeloop/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. Each one records the calls the tests
// care about and supports injecting an error per method.

type fakeUserRepo struct {
	users     map[uuid.UUID]*entity.User
	createErr error
	updateErr error
	deleted   []uuid.UUID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.users, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSessionRepo struct {
	sessions  map[string]*entity.Session
	createErr error
	revoked   []string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	return f.sessions[token], nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	delete(f.sessions, token)
	f.revoked = append(f.revoked, token)
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	for token, session := range f.sessions {
		if session.UserID == userID {
			delete(f.sessions, token)
			f.revoked = append(f.revoked, token)
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) error {
	return nil
}

type fakeCarRepo struct {
	cars       map[uuid.UUID]*entity.Car
	findAllErr error
	createErr  error
	deleted    []uuid.UUID
}

func newFakeCarRepo() *fakeCarRepo {
	return &fakeCarRepo{cars: make(map[uuid.UUID]*entity.Car)}
}

func (f *fakeCarRepo) Create(ctx context.Context, car *entity.Car) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.cars[car.ID] = car
	return nil
}

func (f *fakeCarRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
	return f.cars[id], nil
}

func (f *fakeCarRepo) FindAll(ctx context.Context) ([]*entity.Car, error) {
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	cars := make([]*entity.Car, 0, len(f.cars))
	for _, car := range f.cars {
		cars = append(cars, car)
	}
	return cars, nil
}

func (f *fakeCarRepo) Update(ctx context.Context, car *entity.Car) error {
	f.cars[car.ID] = car
	return nil
}

func (f *fakeCarRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.cars, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type statusChange struct {
	id     uuid.UUID
	status entity.RentalStatus
}

type fakeRentalRepo struct {
	rentals         map[uuid.UUID]*entity.Rental
	createErr       error
	updateStatusErr error
	statusChanges   []statusChange
	deleted         []uuid.UUID
}

func newFakeRentalRepo() *fakeRentalRepo {
	return &fakeRentalRepo{rentals: make(map[uuid.UUID]*entity.Rental)}
}

func (f *fakeRentalRepo) Create(ctx context.Context, rental *entity.Rental) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.rentals[rental.ID] = rental
	return nil
}

func (f *fakeRentalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error) {
	return f.rentals[id], nil
}

func (f *fakeRentalRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Rental, error) {
	var rentals []*entity.Rental
	for _, rental := range f.rentals {
		if rental.UserID == userID {
			rentals = append(rentals, rental)
		}
	}
	return rentals, nil
}

func (f *fakeRentalRepo) FindAll(ctx context.Context) ([]*entity.Rental, error) {
	rentals := make([]*entity.Rental, 0, len(f.rentals))
	for _, rental := range f.rentals {
		rentals = append(rentals, rental)
	}
	return rentals, nil
}

func (f *fakeRentalRepo) Update(ctx context.Context, rental *entity.Rental) error {
	f.rentals[rental.ID] = rental
	return nil
}

func (f *fakeRentalRepo) UpdateStatus(ctx context.Context, rentalID uuid.UUID, status entity.RentalStatus) error {
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	f.statusChanges = append(f.statusChanges, statusChange{id: rentalID, status: status})
	if rental, ok := f.rentals[rentalID]; ok {
		rental.Status = status
	}
	return nil
}

func (f *fakeRentalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.rentals, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakePaymentRepo struct {
	payments  map[uuid.UUID]*entity.Payment
	createErr error
	calls     int
	deleted   []uuid.UUID
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*entity.Payment)}
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	f.calls++
	if f.createErr != nil {
		return f.createErr
	}
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	return f.payments[id], nil
}

func (f *fakePaymentRepo) FindByRentalID(ctx context.Context, rentalID uuid.UUID) (*entity.Payment, error) {
	for _, payment := range f.payments {
		if payment.RentalID == rentalID {
			return payment, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	var payments []*entity.Payment
	for _, payment := range f.payments {
		if payment.UserID == userID {
			payments = append(payments, payment)
		}
	}
	return payments, nil
}

func (f *fakePaymentRepo) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	payments := make([]*entity.Payment, 0, len(f.payments))
	for _, payment := range f.payments {
		payments = append(payments, payment)
	}
	return payments, nil
}

func (f *fakePaymentRepo) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status entity.PaymentStatus) error {
	if payment, ok := f.payments[paymentID]; ok {
		payment.Status = status
	}
	return nil
}

func (f *fakePaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.payments, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeReviewRepo struct {
	reviews   map[uuid.UUID]*entity.Review
	createErr error
	updates   int
	creates   int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*entity.Review)}
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	return f.reviews[id], nil
}

func (f *fakeReviewRepo) FindByCarID(ctx context.Context, carID uuid.UUID) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for _, review := range f.reviews {
		if review.CarID == carID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (f *fakeReviewRepo) FindByUserAndCar(ctx context.Context, userID, carID uuid.UUID) (*entity.Review, error) {
	for _, review := range f.reviews {
		if review.UserID == userID && review.CarID == carID {
			return review, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) FindAll(ctx context.Context) ([]*entity.Review, error) {
	reviews := make([]*entity.Review, 0, len(f.reviews))
	for _, review := range f.reviews {
		reviews = append(reviews, review)
	}
	return reviews, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	f.updates++
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.reviews, id)
	return nil
}

type fakeNotificationRepo struct {
	notifications map[uuid.UUID]*entity.Notification
	markedRead    []uuid.UUID
	deleted       []uuid.UUID
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[uuid.UUID]*entity.Notification)}
}

func (f *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	f.notifications[notification.ID] = notification
	return nil
}

func (f *fakeNotificationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	return f.notifications[id], nil
}

func (f *fakeNotificationRepo) FindAll(ctx context.Context) ([]*entity.Notification, error) {
	notifications := make([]*entity.Notification, 0, len(f.notifications))
	for _, notification := range f.notifications {
		notifications = append(notifications, notification)
	}
	return notifications, nil
}

func (f *fakeNotificationRepo) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	f.markedRead = append(f.markedRead, id)
	if notification, ok := f.notifications[id]; ok {
		notification.IsNew = false
	}
	return nil
}

func (f *fakeNotificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.notifications, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// testRepos bundles fresh fakes into the repository aggregate the
// services expect.
type testRepos struct {
	users         *fakeUserRepo
	sessions      *fakeSessionRepo
	cars          *fakeCarRepo
	rentals       *fakeRentalRepo
	payments      *fakePaymentRepo
	reviews       *fakeReviewRepo
	notifications *fakeNotificationRepo
	repo          *repository.Repository
}

func newTestRepos() *testRepos {
	t := &testRepos{
		users:         newFakeUserRepo(),
		sessions:      newFakeSessionRepo(),
		cars:          newFakeCarRepo(),
		rentals:       newFakeRentalRepo(),
		payments:      newFakePaymentRepo(),
		reviews:       newFakeReviewRepo(),
		notifications: newFakeNotificationRepo(),
	}
	t.repo = &repository.Repository{
		User:         t.users,
		Session:      t.sessions,
		Car:          t.cars,
		Rental:       t.rentals,
		Payment:      t.payments,
		Review:       t.reviews,
		Notification: t.notifications,
	}
	return t
}
