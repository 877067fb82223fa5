package handler

import "briefdesk/pkg/imaging"

type GenerateRequest struct {
	URL   string `json:"url"`
	Model string `json:"model"`
}

type GenerateImageRequest struct {
	Prompt string `json:"prompt"`
}

type DisplaySize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CropRequest carries the selection in displayed-image coordinates together
// with the displayed size, so the crop can be rescaled against the natural
// image dimensions.
type CropRequest struct {
	ImageURL string         `json:"imageUrl"`
	Region   imaging.Region `json:"region"`
	Display  DisplaySize    `json:"display"`
}

type MoveRequest struct {
	Direction string `json:"direction"`
}
