package request

type SendNotificationRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=100"`
	Message string `json:"message" validate:"required,min=1,max=500"`
}
