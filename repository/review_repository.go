package repository

import (
	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db}
}

func (r *ReviewRepository) ListByProduct(productID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.db.Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepository) CountByUserAndProduct(userID, productID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Review{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count, err
}
