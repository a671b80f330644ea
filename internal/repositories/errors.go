package repositories

import (
	"errors"

	"github.com/lib/pq"
)

// IsUniqueViolation — true, если БД вернула 23505 (duplicate key).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
