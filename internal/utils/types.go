package utils

// ToStringPtr returns a pointer to s, for filling optional model fields.
func ToStringPtr(s string) *string {
	return &s
}
