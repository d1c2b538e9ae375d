package request

// CreateSession is the login request body
type CreateSession struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
