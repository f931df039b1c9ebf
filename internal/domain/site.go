package domain

// Site domain model (sites table).
// CompanyID is a plain reference with no FK constraint behind it: deleting
// the owning company leaves the site with a dangling reference.
type Site struct {
	ID        int64  `json:"id" db:"id"` // BIGSERIAL, assigned by storage
	Nickname  string `json:"nickname" db:"nickname" validate:"notblank,max=50"`
	URL       string `json:"url" db:"url" validate:"required,url"`
	CompanyID int64  `json:"company_id" db:"company_id" validate:"required"`
}

// Validate returns a *ValidationError listing every violated field
// constraint, or nil when the site is well-formed.
func (s *Site) Validate() error {
	return validateStruct(s)
}
