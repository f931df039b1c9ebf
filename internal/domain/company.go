package domain

// Plan tiers a company can subscribe to (plan_id values).
const (
	PlanBasic int64 = iota + 1
	PlanPro
	PlanEnterprise
)

// ValidPlan reports whether id is a known plan tier.
func ValidPlan(id int64) bool {
	return id >= PlanBasic && id <= PlanEnterprise
}

// Company domain model (companies table).
// email and tax_id are NOT unique in storage; duplicates are possible.
type Company struct {
	ID     int64  `json:"id" db:"id"` // BIGSERIAL, assigned by storage
	Name   string `json:"name" db:"name" validate:"notblank,max=50"`
	TaxID  string `json:"tax_id" db:"tax_id" validate:"notblank"`
	PlanID int64  `json:"plan_id" db:"plan_id" validate:"plan"`
	Phone  string `json:"phone" db:"phone" validate:"notblank"`
	Email  string `json:"email" db:"email" validate:"notblank,email"`
	// Stored and compared as plaintext. Carried over from the previous
	// implementation; see DESIGN.md.
	Password string `json:"password" db:"password" validate:"notblank"`
}

// Validate returns a *ValidationError listing every violated field
// constraint, or nil when the company is well-formed.
func (c *Company) Validate() error {
	return validateStruct(c)
}
