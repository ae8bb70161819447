package domain

var (
	MessageSuccessSendContact = "message sent successfully"
	MessageFailedSendContact  = "failed to send message"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}
