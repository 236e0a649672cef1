package authz

import "strings"

// Capability is a tag for a console action that needs a permission decision.
type Capability string

const (
	ViewDashboard    Capability = "dashboard.view"
	ViewProfits      Capability = "profits.view"
	ViewProducts     Capability = "products.view"
	ManageProducts   Capability = "products.manage"
	ViewCategories   Capability = "categories.view"
	ManageCategories Capability = "categories.manage"
	ManageUsers      Capability = "users.manage"
	CreateReceipts   Capability = "receipts.create"
)

// Session is the read-only slice of the session the policy needs.
type Session interface {
	Authenticated() bool
	UserType() string
}

// grants maps a normalized role to the capabilities it holds. Admins see
// everything; managers run the floor but never touch users, profit figures
// or product records; cashiers only enter sales.
var grants = map[string][]Capability{
	"admin": {
		ViewDashboard, ViewProfits,
		ViewProducts, ManageProducts,
		ViewCategories, ManageCategories,
		ManageUsers, CreateReceipts,
	},
	"manager": {
		ViewDashboard,
		ViewProducts,
		ViewCategories, ManageCategories,
		CreateReceipts,
	},
	"cashier": {CreateReceipts},
}

// Can reports whether the session's role holds the capability. All role
// checks in the console go through here; screens never compare role strings
// themselves.
func Can(sess Session, capability Capability) bool {
	if sess == nil || !sess.Authenticated() {
		return false
	}
	for _, c := range grants[normalize(sess.UserType())] {
		if c == capability {
			return true
		}
	}
	return false
}

// LandingPath returns where a freshly signed-in user starts: cashiers go
// straight to the sale-entry form, everyone else to the dashboard.
func LandingPath(sess Session) string {
	if normalize(sess.UserType()) == "cashier" {
		return "/receipt"
	}
	return "/dashboard"
}

func normalize(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
