package services

import (
	"context"
	"fmt"

	"matrimony_server/models"

	"gorm.io/gorm"
)

// SearchService queries the user directory against optional predicates.
type SearchService struct {
	DB *gorm.DB
}

// Search applies the supplied filters conjunctively. Absent filters impose
// no predicate, so an empty filter set returns the full directory. Results
// never include the password hash; the requester's own row is not
// excluded.
func (s *SearchService) Search(ctx context.Context, filters models.SearchFilters) ([]models.UserSummary, error) {
	q := s.DB.WithContext(ctx).Model(&models.User{}).
		Select("id, name, age, gender, religion, profession, location, interests, photo")
	if filters.Age != 0 {
		q = q.Where("age = ?", filters.Age)
	}
	if filters.Gender != "" {
		q = q.Where("gender = ?", filters.Gender)
	}
	if filters.Religion != "" {
		q = q.Where("religion LIKE ?", "%"+filters.Religion+"%")
	}
	if filters.Profession != "" {
		q = q.Where("profession LIKE ?", "%"+filters.Profession+"%")
	}
	if filters.Location != "" {
		q = q.Where("location LIKE ?", "%"+filters.Location+"%")
	}

	results := []models.UserSummary{}
	if err := q.Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("searching users: %w", err)
	}
	return results, nil
}
