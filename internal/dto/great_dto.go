package dto

type GreatStatusResponse struct {
	IsGreat bool `json:"isGreat"`
}

type GreatCountResponse struct {
	CountGreat int64 `json:"countGreat"`
}
