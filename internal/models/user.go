package models

type User struct {
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	IsAdmin  bool   `gorm:"default:false" json:"is_admin"`
	Base     `gorm:"embedded"`
}

func NewUser(username, password string) *User {
	return &User{
		Username: username,
		Password: password,
		Base:     NewBase(),
	}
}
