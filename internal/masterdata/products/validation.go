package products

import (
	"github.com/agrilog/agrilog/internal/shared"
)

func (s *Service) validate(p Product) error {
	v := &shared.ValidationError{}
	switch {
	case p.Category == "":
		v.Add("category", "is required")
	case !p.Category.Valid():
		v.Add("category", "unknown category %q", string(p.Category))
	}
	if p.Variety == "" {
		v.Add("variety", "is required")
	}
	return v.OrNil()
}
