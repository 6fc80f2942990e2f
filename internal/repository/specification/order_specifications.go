package specification

import (
	"techmart-be/internal/repository/contract"
	"techmart-be/internal/repository/scope"

	"gorm.io/gorm"
)

type WithItems struct{}

func (s WithItems) Apply(db *gorm.DB) *gorm.DB {
	return db.Scopes(scope.PreloadOrderItems)
}

// FromOrderFilter translates the contract filter into specifications.
func FromOrderFilter(f contract.OrderFilter) []Specification {
	specs := []Specification{WithItems{}}
	if f.SessionId != "" {
		specs = append(specs, Filter("session_id", f.SessionId))
	}
	if f.Status != "" {
		specs = append(specs, Filter("status", string(f.Status)))
	}
	specs = append(specs,
		OrderBy{Field: "created_at", Desc: true},
		OrderBy{Field: "id"},
		Pagination{Limit: f.Limit, Offset: f.Offset},
	)
	return specs
}
