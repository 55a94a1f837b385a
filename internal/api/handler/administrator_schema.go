package handler

// loginRequest is the credential payload for POST /administrators/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signedInResponse is returned on a successful login.
type signedInResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// createAdministratorRequest is the full payload for POST /administrators.
// An empty profile defaults to EDITOR.
type createAdministratorRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Profile  string `json:"profile,omitempty"`
}

// patchAdministratorRequest carries a partial payload; only non-nil fields
// are merged onto the stored record.
type patchAdministratorRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Profile  *string `json:"profile"`
}
