package member

// ID identifies a membership tier.
type ID string

const (
	Basic    ID = "basic"
	Business ID = "business"
)

func (id ID) Valid() bool {
	return id == Basic || id == Business
}

type MemberType struct {
	ID                 ID
	Discount           float64
	PostsLimitPerMonth int32
}
