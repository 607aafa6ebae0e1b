package services

import (
	"strings"

	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"github.com/muhwezim78/Nashiecom-sub000/repository"
)

type ReviewService struct {
	repo      *repository.ReviewRepository
	orderRepo *repository.OrderRepository
}

func NewReviewService(repo *repository.ReviewRepository, orderRepo *repository.OrderRepository) *ReviewService {
	return &ReviewService{repo: repo, orderRepo: orderRepo}
}

func (s *ReviewService) ListForProduct(productID uint) ([]entity.Review, error) {
	return s.repo.ListByProduct(productID)
}

// Create accepts a review only from a customer with a delivered order
// containing the product, once per product.
func (s *ReviewService) Create(userID, productID uint, rating int, comment string) (*entity.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	count, err := s.repo.CountByUserAndProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyReviewed
	}

	orderID, err := s.orderRepo.HasDeliveredProduct(userID, productID)
	if err != nil {
		return nil, ErrNotEligible
	}

	review := &entity.Review{
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		UserID:    userID,
		ProductID: productID,
		OrderID:   orderID,
	}
	if err := s.repo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}
