package services

import (
	"context"

	"github.com/Japacho1/tasky/internal/domain/entities"
	apperrors "github.com/Japacho1/tasky/pkg/errors"
)

// memUserRepo is an in-memory UserRepository with the adapter's semantics:
// duplicate email or username conflicts, missing users read as not found.
type memUserRepo struct {
	users          map[string]*entities.User
	ratingUpdates  map[string]float64
	locationEmails []string
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		users:         make(map[string]*entities.User),
		ratingUpdates: make(map[string]float64),
	}
}

func (r *memUserRepo) Create(ctx context.Context, user *entities.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return apperrors.NewConflictError("email or username already in use")
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entities.User, error) {
	if user, ok := r.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (r *memUserRepo) UpdateLocation(ctx context.Context, email string, loc entities.Location) error {
	for _, user := range r.users {
		if user.Email == email {
			user.Latitude = loc.Latitude
			user.Longitude = loc.Longitude
			user.CurrentTown = loc.CurrentTown
			r.locationEmails = append(r.locationEmails, email)
			return nil
		}
	}
	return apperrors.NewNotFoundError("user not found")
}

func (r *memUserRepo) UpdateRating(ctx context.Context, providerID string, rating float64) error {
	r.ratingUpdates[providerID] = rating
	if user, ok := r.users[providerID]; ok {
		user.Rating = rating
	}
	return nil
}

// memRequestRepo keeps requests in memory with ownership-keyed mutations, so
// lifecycle tests exercise the same not-found behavior the SQL adapter has.
type memRequestRepo struct {
	requests map[string]*entities.Request
}

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{requests: make(map[string]*entities.Request)}
}

func (r *memRequestRepo) Create(ctx context.Context, request *entities.Request) error {
	clone := *request
	r.requests[request.ID] = &clone
	return nil
}

func (r *memRequestRepo) ListByRequester(ctx context.Context, requesterID string) ([]entities.RequesterRequestView, error) {
	views := []entities.RequesterRequestView{}
	for _, req := range r.requests {
		if req.RequesterID == requesterID {
			views = append(views, entities.RequesterRequestView{
				ID:          req.ID,
				RequestDate: req.RequestDate,
				Status:      req.Status,
			})
		}
	}
	return views, nil
}

func (r *memRequestRepo) ListPendingByProvider(ctx context.Context, providerID string) ([]entities.ProviderRequestView, error) {
	views := []entities.ProviderRequestView{}
	for _, req := range r.requests {
		if req.ProviderID == providerID && req.Status == entities.RequestStatusPending {
			views = append(views, entities.ProviderRequestView{
				RequestID: req.ID,
				ServiceID: req.ServiceID,
			})
		}
	}
	return views, nil
}

func (r *memRequestRepo) Accept(ctx context.Context, requestID, providerID string) error {
	req, ok := r.requests[requestID]
	if !ok || req.ProviderID != providerID || req.Status != entities.RequestStatusPending {
		return apperrors.NewNotFoundError("request not found")
	}
	req.Status = entities.RequestStatusAccepted
	return nil
}

func (r *memRequestRepo) DeleteByProvider(ctx context.Context, requestID, providerID string) error {
	req, ok := r.requests[requestID]
	if !ok || req.ProviderID != providerID {
		return apperrors.NewNotFoundError("request not found")
	}
	delete(r.requests, requestID)
	return nil
}

func (r *memRequestRepo) DeleteByRequester(ctx context.Context, requestID, requesterID string) error {
	req, ok := r.requests[requestID]
	if !ok || req.RequesterID != requesterID {
		return apperrors.NewNotFoundError("request not found")
	}
	delete(r.requests, requestID)
	return nil
}

// stubServiceRepo answers catalog queries from fixed data.
type stubServiceRepo struct {
	services []entities.Service
	offered  map[string][]string
	replaced map[string][]string
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{
		offered:  make(map[string][]string),
		replaced: make(map[string][]string),
	}
}

func (r *stubServiceRepo) List(ctx context.Context) ([]entities.Service, error) {
	return r.services, nil
}

func (r *stubServiceRepo) ListByProvider(ctx context.Context, providerID string) ([]entities.Service, error) {
	services := []entities.Service{}
	for _, id := range r.offered[providerID] {
		services = append(services, entities.Service{ID: id})
	}
	return services, nil
}

func (r *stubServiceRepo) ReplaceForProvider(ctx context.Context, providerID string, serviceIDs []string) error {
	r.replaced[providerID] = serviceIDs
	r.offered[providerID] = serviceIDs
	return nil
}

func (r *stubServiceRepo) ProviderOffers(ctx context.Context, providerID, serviceID string) (bool, error) {
	for _, id := range r.offered[providerID] {
		if id == serviceID {
			return true, nil
		}
	}
	return false, nil
}

// memRatingRepo stores ratings and computes the mean on demand.
type memRatingRepo struct {
	ratings []*entities.Rating
}

func (r *memRatingRepo) Create(ctx context.Context, rating *entities.Rating) error {
	clone := *rating
	r.ratings = append(r.ratings, &clone)
	return nil
}

func (r *memRatingRepo) AverageForProvider(ctx context.Context, providerID string) (*float64, error) {
	sum, count := 0, 0
	for _, rating := range r.ratings {
		if rating.ProviderID == providerID {
			sum += rating.Rating
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	avg := float64(sum) / float64(count)
	return &avg, nil
}
