package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotelhub/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	HotelID   int64     `gorm:"column:hotel_id;index"`
	UserID    int64     `gorm:"column:user_id;index"`
	Rating    int       `gorm:"column:rating"`
	Comment   *string   `gorm:"column:comment"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	var comment string
	if m.Comment != nil {
		comment = *m.Comment
	}

	return &domain.Review{
		ID:        m.ID,
		HotelID:   m.HotelID,
		UserID:    m.UserID,
		Rating:    m.Rating,
		Comment:   comment,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	var comment *string
	if review.Comment != "" {
		v := review.Comment
		comment = &v
	}

	m := reviewModel{
		HotelID: review.HotelID,
		UserID:  review.UserID,
		Rating:  review.Rating,
		Comment: comment,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	*review = *toDomainReview(m)
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var m reviewModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review: %w", tx.Error)
	}
	return toDomainReview(m), nil
}

func (r *ReviewRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Review, error) {
	var rows []reviewModel
	err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&reviewModel{}, id).Error; err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
