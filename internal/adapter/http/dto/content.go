package dto

type ContentRequest struct {
	Topic string `json:"topic" binding:"required"`
}

type ContentPlanItem struct {
	Ideas    []string `json:"ideas,omitempty"`
	Captions []string `json:"captions,omitempty"`
	Hashtags []string `json:"hashtags,omitempty"`
	Outline  string   `json:"outline,omitempty"`
	Raw      string   `json:"raw,omitempty"`
	Mock     bool     `json:"mock,omitempty"`
}
