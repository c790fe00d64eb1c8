package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/logger"
	"rechtent-backend/internal/repository"
	"rechtent-backend/internal/repository/postgres"
	"rechtent-backend/internal/storage"

	"github.com/google/uuid"
)

const photoURLExpiry = time.Hour

type returnService struct {
	returnRepo repository.ReturnRequestRepository
	orderRepo  repository.OrderRepository
	userRepo   repository.UserRepository
	storage    storage.StorageInterface
	emailSvc   EmailService
}

func NewReturnService(returnRepo repository.ReturnRequestRepository, orderRepo repository.OrderRepository, userRepo repository.UserRepository, store storage.StorageInterface, emailSvc EmailService) ReturnService {
	return &returnService{
		returnRepo: returnRepo,
		orderRepo:  orderRepo,
		userRepo:   userRepo,
		storage:    store,
		emailSvc:   emailSvc,
	}
}

// Submit verifies order ownership and fulfillment, stores the evidence
// photos, then records the request. A failed photo write aborts the
// submission; there is no partial request to clean up afterwards.
func (s *returnService) Submit(ctx context.Context, userID int32, sub ReturnSubmission) (*domain.ReturnRequest, error) {
	if len(sub.Photos) == 0 {
		return nil, ErrNoPhotoEvidence
	}
	if sub.BankName == "" || sub.BankAccountName == "" || sub.BankAccountNumber == "" {
		return nil, ErrMissingBankDetails
	}

	order, err := s.orderRepo.GetByID(ctx, sub.OrderID)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	if order.Status != domain.OrderStatusDelivered && order.Status != domain.OrderStatusReturned {
		return nil, ErrOrderNotReturnable
	}

	keys := make([]string, 0, len(sub.Photos))
	for _, photo := range sub.Photos {
		key := fmt.Sprintf("returns/%d/%s%s", sub.OrderID, uuid.NewString(), filepath.Ext(photo.FileName))
		if err := s.storage.SaveFile(ctx, key, photo.ContentType, photo.Data); err != nil {
			return nil, fmt.Errorf("failed to store evidence photo: %w", err)
		}
		keys = append(keys, key)
	}

	req := &domain.ReturnRequest{
		OrderID:           sub.OrderID,
		UserID:            userID,
		PhotoKeys:         keys,
		BankName:          sub.BankName,
		BankAccountName:   sub.BankAccountName,
		BankAccountNumber: sub.BankAccountNumber,
	}
	if err := s.returnRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *returnService) ListMine(ctx context.Context, userID int32) ([]domain.ReturnRequest, error) {
	return s.returnRepo.ListByUser(ctx, userID)
}

// PhotoURLs resolves storage keys to fetchable URLs.
func (s *returnService) PhotoURLs(ctx context.Context, req *domain.ReturnRequest) ([]string, error) {
	urls := make([]string, 0, len(req.PhotoKeys))
	for _, key := range req.PhotoKeys {
		url, err := s.storage.DownloadURL(ctx, key, photoURLExpiry)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *returnService) ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.ReturnRequest, int32, error) {
	return s.returnRepo.ListByStatus(ctx, status, page, pageSize)
}

// Decide resolves a pending request and notifies the customer. An
// approval also moves the order to RETURNED, releasing the deposit
// refund flow.
func (s *returnService) Decide(ctx context.Context, requestID int32, approve bool, adminNote string) (*domain.ReturnRequest, error) {
	req, err := s.returnRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if req.Status != domain.ReturnStatusPending {
		return nil, ErrAlreadyResolved
	}

	status := domain.ReturnStatusRejected
	if approve {
		status = domain.ReturnStatusApproved
	}
	if err := s.returnRepo.Resolve(ctx, requestID, status, adminNote); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, ErrAlreadyResolved
		}
		return nil, err
	}

	if approve {
		if err := s.orderRepo.UpdateStatus(ctx, req.OrderID, domain.OrderStatusReturned); err != nil {
			logger.Error("Failed to mark order returned", "order_id", req.OrderID, "error", err)
		}
	}

	req, err = s.returnRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if user, err := s.userRepo.GetByID(ctx, req.UserID); err == nil {
		if err := s.emailSvc.SendReturnDecision(ctx, user.Email, user.Name, req); err != nil {
			logger.Error("Failed to send return decision email", "request_id", req.ID, "error", err)
		}
	}
	return req, nil
}

func (s *returnService) CountPending(ctx context.Context) (int32, error) {
	return s.returnRepo.CountPending(ctx)
}
