package services

import (
	"context"
	"fmt"
	"time"

	"staffdesk/internal/logging"
	"staffdesk/internal/models"
	"staffdesk/internal/storage"
)

// nowFn is a test seam for the request creation date.
var nowFn = time.Now

// RequestService handles item requests. Any authenticated session can create
// requests; each request is scoped to the email of the session that created
// it. Requests are always created Pending and never transitioned.
type RequestService struct {
	store *storage.Store
	log   logging.Logger
}

func NewRequestService(store *storage.Store, log logging.Logger) *RequestService {
	return &RequestService{store: store, log: log}
}

// Create validates and appends a request for the session account. At least
// one item is required; every item needs a non-empty name and a quantity of
// at least one.
func (s *RequestService) Create(ctx context.Context, sess models.Session, typ models.RequestType, items []models.RequestItem) (*models.Request, error) {
	if !sess.Authenticated() {
		return nil, models.ErrValidation
	}
	if typ != models.RequestTypeEquipment && typ != models.RequestTypeLeave && typ != models.RequestTypeResources {
		return nil, models.ErrValidation
	}
	if len(items) == 0 {
		return nil, models.ErrValidation
	}
	for _, item := range items {
		if item.Name == "" || item.Qty < 1 {
			return nil, models.ErrValidation
		}
	}

	data := s.store.Data()
	req := models.Request{
		ID:            data.NextRequestID(),
		Type:          typ,
		Items:         items,
		Status:        models.RequestStatusPending,
		Date:          nowFn().Format("2006-01-02"),
		EmployeeEmail: sess.Email(),
	}
	data.Requests = append(data.Requests, req)

	if err := s.store.Save(ctx); err != nil {
		return nil, fmt.Errorf("error saving request: %w", err)
	}

	s.log.Info(ctx, "request created", "id", req.ID, "type", req.Type, "email", req.EmployeeEmail)
	return &data.Requests[len(data.Requests)-1], nil
}

// ListForUser returns the requests whose EmployeeEmail equals email, in
// insertion order. Email comparison is exact and case-sensitive.
func (s *RequestService) ListForUser(email string) []models.Request {
	var result []models.Request
	for _, r := range s.store.Data().Requests {
		if r.EmployeeEmail == email {
			result = append(result, r)
		}
	}
	return result
}

func (s *RequestService) Delete(ctx context.Context, id int) error {
	data := s.store.Data()
	if data.FindRequestByID(id) == nil {
		return models.ErrNotFound
	}

	kept := make([]models.Request, 0, len(data.Requests)-1)
	for _, r := range data.Requests {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	data.Requests = kept

	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("error saving requests: %w", err)
	}

	s.log.Info(ctx, "request deleted", "id", id)
	return nil
}
