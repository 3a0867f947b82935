package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restman/internal/domain"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("review already exists for this dish and user")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrNotReviewOwner  = errors.New("review belongs to another user")
	ErrReplyForbidden  = errors.New("only staff may reply to reviews")
)

// ReviewService handles dish reviews and staff replies. One review per
// user and dish; duplicates are rejected cheaply via a cache marker
// before the unique constraint is ever hit.
type ReviewService struct {
	repository ReviewRepository
	marker     ReviewMarker
	publisher  EventPublisher
}

func NewReviewService(repository ReviewRepository, marker ReviewMarker, publisher EventPublisher) *ReviewService {
	return &ReviewService{repository: repository, marker: marker, publisher: publisher}
}

func (s *ReviewService) Create(ctx context.Context, review *domain.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}

	key := s.marker.MarkerKey(review.UserID, review.DishID)
	if exists, _ := s.marker.Exists(ctx, key); exists {
		return ErrDuplicateReview
	}

	if err := s.repository.Insert(review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	_ = s.marker.SetMarker(ctx, key)

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, domain.Event{
			Type:      domain.EventNewReview,
			DishID:    review.DishID,
			UserID:    review.UserID,
			Rating:    review.Rating,
			Timestamp: time.Now(),
		})
	}
	return nil
}

func (s *ReviewService) Update(ctx context.Context, reviewID int, user *domain.User, rating int, content string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	review, err := s.repository.Get(reviewID)
	if err != nil {
		return nil, ErrReviewNotFound
	}
	if review.UserID != user.ID {
		return nil, ErrNotReviewOwner
	}

	updated, err := s.repository.Update(reviewID, rating, content)
	if err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return updated, nil
}

func (s *ReviewService) Delete(ctx context.Context, reviewID int, user *domain.User) error {
	review, err := s.repository.Get(reviewID)
	if err != nil {
		return ErrReviewNotFound
	}
	if review.UserID != user.ID && !user.Role.CanModerateReviews() {
		return ErrNotReviewOwner
	}
	return s.repository.Delete(reviewID)
}

func (s *ReviewService) ListForDish(ctx context.Context, dishID int) ([]domain.Review, error) {
	return s.repository.ListForDish(dishID)
}

func (s *ReviewService) Reply(ctx context.Context, reviewID int, user *domain.User, content string) (*domain.ReviewReply, error) {
	if !user.Role.CanModerateReviews() {
		return nil, ErrReplyForbidden
	}
	if _, err := s.repository.Get(reviewID); err != nil {
		return nil, ErrReviewNotFound
	}

	reply := &domain.ReviewReply{ReviewID: reviewID, UserID: user.ID, Content: content}
	if err := s.repository.InsertReply(reply); err != nil {
		return nil, fmt.Errorf("failed to create reply: %w", err)
	}
	return reply, nil
}
