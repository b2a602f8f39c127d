package v1

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"123456"`
}
type LoginResponseData struct {
	AccessToken string `json:"accessToken"`
}
type LoginResponse struct {
	Response
	Data LoginResponseData
}

type CreateAccountRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64" example:"lsm880"`
	Password string `json:"password" binding:"required,min=8" example:"s3cretpass"`
	Desc     string `json:"desc" example:"LSM 880 acquisition PC"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required" example:"oldpassword"`
	NewPassword string `json:"newPassword" binding:"required,min=8" example:"newpassword"`
}

type GetProfileResponseData struct {
	UserId   string `json:"userId"`
	Username string `json:"username" example:"admin"`
	Desc     string `json:"desc"`
}
type GetProfileResponse struct {
	Response
	Data GetProfileResponseData
}
