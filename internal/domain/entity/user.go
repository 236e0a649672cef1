package entity

// User represents a console user account. Type is the role label ("admin",
// "manager", "cashier", ...) that drives which screens and controls are
// visible.
type User struct {
	ID       int64   `json:"id,omitempty"`
	Name     string  `json:"name,omitempty"`
	Username string  `json:"username"`
	Type     string  `json:"type"`
	Salary   float64 `json:"salary,omitempty"`
}

// DisplayName returns the best available label for the signed-in user.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
