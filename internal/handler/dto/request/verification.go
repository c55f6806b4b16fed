package request

type VerifyCodeRequest struct {
	Code string `json:"code" binding:"required,max=32"`
}
