package service

type UserService interface {
	Signup(name, email, password string) (*UserInfo, error)
	Login(email, password string) (*AuthInfo, error)
	GetUserInfo(userId string) (*UserInfo, error)
}

type AuthInfo struct {
	User  UserInfo `json:"user"`
	Token string   `json:"token"`
}

type UserInfo struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Image string `json:"image,omitempty"`
}
