package gemini

import (
	"encoding/base64"
	"strings"
)

type generateRequest struct {
	Contents         []requestContent `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	InlineData *requestBlob `json:"inline_data,omitempty"`
	Text       string       `json:"text,omitempty"`
}

type requestBlob struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities"`
}

func newGenerateRequest(image []byte, mimeType, prompt string) generateRequest {
	return generateRequest{
		Contents: []requestContent{{
			Parts: []requestPart{
				{InlineData: &requestBlob{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
				{Text: prompt},
			},
		}},
		GenerationConfig: generationConfig{ResponseModalities: []string{"TEXT", "IMAGE"}},
	}
}

type generateResponse struct {
	Candidates     []wireCandidate `json:"candidates"`
	PromptFeedback *wireFeedback   `json:"promptFeedback"`
	Error          *wireError      `json:"error"`
}

type wireCandidate struct {
	Content      *wireContent `json:"content"`
	FinishReason string       `json:"finishReason"`
}

type wireContent struct {
	Parts []wirePart `json:"parts"`
}

// wirePart accepts both spellings of the inline image field seen in
// replies.
type wirePart struct {
	Text            string    `json:"text"`
	InlineData      *wireBlob `json:"inline_data"`
	InlineDataCamel *wireBlob `json:"inlineData"`
}

type wireBlob struct {
	MimeType      string `json:"mime_type"`
	MimeTypeCamel string `json:"mimeType"`
	Data          string `json:"data"`
}

type wireFeedback struct {
	BlockReason string `json:"blockReason"`
}

type wireError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

type replyImage struct {
	mimeType string
	data     string
}

// reply is the canonical view of a generateContent response.
type reply struct {
	errorMessage string
	failed       bool
	finishReason string
	blockReason  string
	images       []replyImage
	texts        []string
}

func (r reply) hasParts() bool {
	return len(r.images) > 0 || len(r.texts) > 0
}

func normalize(resp *generateResponse) reply {
	var r reply

	if resp.Error != nil {
		r.failed = true
		r.errorMessage = resp.Error.Message
		if r.errorMessage == "" {
			r.errorMessage = resp.Error.Status
		}
	}
	if resp.PromptFeedback != nil {
		r.blockReason = resp.PromptFeedback.BlockReason
	}
	if len(resp.Candidates) == 0 {
		return r
	}

	candidate := resp.Candidates[0]
	r.finishReason = candidate.FinishReason
	if candidate.Content == nil {
		return r
	}

	for _, part := range candidate.Content.Parts {
		blob := part.InlineData
		if blob == nil {
			blob = part.InlineDataCamel
		}
		if blob != nil && blob.Data != "" {
			mime := blob.MimeType
			if mime == "" {
				mime = blob.MimeTypeCamel
			}
			r.images = append(r.images, replyImage{mimeType: mime, data: blob.Data})
			continue
		}
		if text := strings.TrimSpace(part.Text); text != "" {
			r.texts = append(r.texts, text)
		}
	}

	return r
}
