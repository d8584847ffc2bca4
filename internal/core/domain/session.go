package domain

// HasuraClaimsNamespace is the claim key the data API reads its authorization
// claim set from.
const HasuraClaimsNamespace = "https://hasura.io/jwt/claims"

// DataAPIClaims is the claim set the data API enforces row and column level
// permissions from.
type DataAPIClaims struct {
	AllowedRoles []string `json:"x-hasura-allowed-roles"`
	DefaultRole  string   `json:"x-hasura-default-role"`
	UserID       string   `json:"x-hasura-user-id"`
}

// NewDataAPIClaims builds the authorization claim set for a user. The base
// "user" role is always allowed alongside the account's actual role, without
// duplication when the account role is "user" itself.
func NewDataAPIClaims(u *User) DataAPIClaims {
	allowed := []string{string(u.Role)}
	if u.Role != RoleUser {
		allowed = append(allowed, string(RoleUser))
	}
	return DataAPIClaims{
		AllowedRoles: allowed,
		DefaultRole:  string(u.Role),
		UserID:       u.ID,
	}
}

// SessionClaims is what a verified session artifact decodes to. The values
// are a snapshot taken at issuance: a role change on the credential record
// does not take effect until the user logs in again.
type SessionClaims struct {
	UserID       string
	Role         Role
	DisplayName  string
	Email        string
	DataAPIToken string
}
