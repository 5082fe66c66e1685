package service

import "context"

// ChatTurn is one message in an assisted-chat conversation.
type ChatTurn struct {
	Role    string
	Content string
}

// VisionAnalyzer produces a free-text description of a shipping-label
// image. The description feeds the field extractor, which is tolerant
// of wording variations.
type VisionAnalyzer interface {
	// AnalyzeImage describes the image content, focusing on shipment
	// details such as names, phone numbers, dates and destinations.
	AnalyzeImage(ctx context.Context, image []byte) (string, error)

	// Chat continues an assisted conversation and returns the model reply.
	Chat(ctx context.Context, turns []ChatTurn) (string, error)
}
