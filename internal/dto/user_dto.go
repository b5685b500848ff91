package dto

type UpdateProfileRequest struct {
	Nickname *string `json:"nickname" validate:"omitempty,min=1,max=80"`
	Avatar   *string `json:"avatar" validate:"omitempty,url"`
}
