package services

import (
	"context"

	"hotel-management/dto"
	"hotel-management/models"
	"hotel-management/services/logger"
)

// GuestFinder là phần của store mà matcher cần
type GuestFinder interface {
	MatchGuests(ctx context.Context, operator, name, kanaName, phone string) ([]models.Guest, error)
}

// GuestMatcher tìm khách đã lưu trùng khớp tuyệt đối (tên, kana, điện thoại) trong phạm vi operator
type GuestMatcher struct {
	finder GuestFinder
	logger logger.Logger
}

func NewGuestMatcher(finder GuestFinder, log logger.Logger) *GuestMatcher {
	return &GuestMatcher{finder: finder, logger: log}
}

// Match trả về guest đã lưu hoặc nil nếu không có. Nếu có nhiều bản ghi trùng, lấy bản ghi cũ nhất.
func (m *GuestMatcher) Match(ctx context.Context, operator string, criteria dto.GuestMatchRequest) (*models.Guest, error) {
	guests, err := m.finder.MatchGuests(ctx, operator, criteria.Name, criteria.KanaName, criteria.Phone)
	if err != nil {
		return nil, err
	}
	if len(guests) == 0 {
		return nil, nil
	}
	if len(guests) > 1 {
		m.logger.WithFields(logger.Fields{
			"operator": operator,
			"matches":  len(guests),
			"guestId":  guests[0].ID,
		}).Warn("multiple guests match exactly, using the oldest one")
	}
	g := guests[0]
	return &g, nil
}
