package model

// UserID uniquely identifies a user in the league backend
type UserID string

// Role is a user's role as reported by the backend
type Role string

// Known roles. The backend may introduce new roles at any time, so
// everything consuming Role must tolerate unrecognised values.
const (
	RoleAthleticDirector Role = "AthleticDirector"
	RoleCoach            Role = "Coach"
	RolePlayer           Role = "Player"
)

// User is the identity shape consumed from the auth gateway
type User struct {
	ID              UserID `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            Role   `json:"role"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	// TeamID is set for coaches and players attached to a team
	TeamID TeamID `json:"teamId,omitempty"`
	// PlayerID links a Player-role user to their roster entry
	PlayerID PlayerID `json:"playerId,omitempty"`
}

// dashboardRoutes maps each known role to its default dashboard.
// Redirect decisions are driven by this table rather than per-view
// conditionals, so adding a role means adding one row here.
var dashboardRoutes = map[Role]string{
	RoleAthleticDirector: "/athletic-director/dashboard",
	RoleCoach:            "/coach/dashboard",
	RolePlayer:           "/player/dashboard",
}

// GenericDashboardRoute is the fallback destination for unrecognised roles
const GenericDashboardRoute = "/dashboard"

// DashboardRoute returns the default dashboard route for a role
func DashboardRoute(role Role) string {
	if route, ok := dashboardRoutes[role]; ok {
		return route
	}
	return GenericDashboardRoute
}
