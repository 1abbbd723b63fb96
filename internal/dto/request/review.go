package request

type SubmitReviewRequest struct {
	CarID      string `json:"car_id" validate:"required,uuid4"`
	ReviewText string `json:"review_text" validate:"required,min=1,max=500"`
}

type UpdateReviewRequest struct {
	ReviewText string `json:"review_text" validate:"required,min=1,max=500"`
}
