package dto

type NaverTokenLoginRequest struct {
	AccessToken string `json:"accessToken" validate:"required"`
}

type NaverCallbackQuery struct {
	Code  string `query:"code" validate:"required"`
	State string `query:"state" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshSession is stored under "refresh:<refreshToken>".
type RefreshSession struct {
	UserId      string `json:"user_id"`
	AccessToken string `json:"access_token"`
}
