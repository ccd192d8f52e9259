package account

// Profile is the user record behind the account screen.
type Profile struct {
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type SignupInput struct {
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse carries either a customer identity or an admin flag.
type loginResponse struct {
	Token   string `json:"token"`
	UserID  string `json:"userId"`
	IsAdmin bool   `json:"isAdmin"`
	Message string `json:"message"`
}

type profileResponse struct {
	User Profile `json:"user"`
}
