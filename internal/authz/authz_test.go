package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSession struct {
	authenticated bool
	userType      string
}

func (s fakeSession) Authenticated() bool { return s.authenticated }
func (s fakeSession) UserType() string    { return s.userType }

func TestCanMatrix(t *testing.T) {
	all := []Capability{
		ViewDashboard, ViewProfits,
		ViewProducts, ManageProducts,
		ViewCategories, ManageCategories,
		ManageUsers, CreateReceipts,
	}

	allowed := map[string]map[Capability]bool{
		"admin": {
			ViewDashboard: true, ViewProfits: true,
			ViewProducts: true, ManageProducts: true,
			ViewCategories: true, ManageCategories: true,
			ManageUsers: true, CreateReceipts: true,
		},
		"manager": {
			ViewDashboard: true,
			ViewProducts:  true,
			ViewCategories: true, ManageCategories: true,
			CreateReceipts: true,
		},
		"cashier": {
			CreateReceipts: true,
		},
	}

	for role, caps := range allowed {
		sess := fakeSession{authenticated: true, userType: role}
		for _, capability := range all {
			got := Can(sess, capability)
			assert.Equal(t, caps[capability], got, "%s / %s", role, capability)
		}
	}
}

func TestCanDeniesWhenSignedOut(t *testing.T) {
	sess := fakeSession{authenticated: false, userType: "admin"}
	assert.False(t, Can(sess, ViewDashboard))
	assert.False(t, Can(nil, ViewDashboard))
}

func TestCanDeniesUnknownRole(t *testing.T) {
	sess := fakeSession{authenticated: true, userType: "intern"}
	assert.False(t, Can(sess, CreateReceipts))
}

func TestCanNormalizesRoleLabel(t *testing.T) {
	sess := fakeSession{authenticated: true, userType: "  Admin "}
	assert.True(t, Can(sess, ManageUsers))
}

func TestLandingPath(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{"admin", "/dashboard"},
		{"manager", "/dashboard"},
		{"cashier", "/receipt"},
		{"Cashier", "/receipt"},
		{"", "/dashboard"},
	}
	for _, tt := range tests {
		sess := fakeSession{authenticated: true, userType: tt.role}
		assert.Equal(t, tt.want, LandingPath(sess), tt.role)
	}
}
