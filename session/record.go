package session

// LoginPayload is what the login collaborator hands over after a successful
// authentication. Field names follow the provider's wire format; the store
// renames them onto the internal record shape on ingestion.
type LoginPayload struct {
	AccessToken string `json:"access_token"` // Bearer credential
	TokenType   string `json:"token_type"`   // Token-type label, e.g. "Bearer"
	ID          string `json:"id"`           // User identifier, always populated
	Username    string `json:"username"`     // Unique username, always populated
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	Mail        string `json:"mail"`
	AdminRole   string `json:"admin_role,omitempty"`   // Assigned by a later provisioning step
	AdminStatus string `json:"admin_status,omitempty"` // Assigned by a later provisioning step
}

// User is the user sub-record of a stored session. Role and Status may be
// empty on a freshly stored session: a separate provisioning step assigns
// them, and until it does the session exists without being usable.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Mail      string `json:"mail"`
	Role      string `json:"role,omitempty"`
	Status    string `json:"status,omitempty"`
}

// Record is the single persisted session and the authoritative representation
// of "the logged-in user". At most one exists in storage at a time; a new
// login overwrites it, never appends.
type Record struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	User        User   `json:"user"`
}

// UserPatch carries a shallow merge into a stored session's user sub-record.
// Nil fields are left untouched; the token fields can never be patched.
type UserPatch struct {
	Username  *string `json:"username,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	Mail      *string `json:"mail,omitempty"`
	Role      *string `json:"role,omitempty"`
	Status    *string `json:"status,omitempty"`
}
