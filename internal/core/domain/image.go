package domain

import "mime/multipart"

// ImageInput is embedded by every form that carries one picture.
// Either an uploaded file or an already hosted URL may be given; the file wins.
type ImageInput struct {
	File *multipart.FileHeader `form:"image" json:"-" label:"Image" input:"file"`
	URL  string                `form:"imageUrl" json:"imageUrl,omitempty" binding:"omitempty,url" label:"Image URL" input:"url"`
}

// HasFile reports whether a new file was attached to the request.
func (i ImageInput) HasFile() bool {
	return i.File != nil && i.File.Size > 0
}

func imagesOf(url string) []string {
	if url == "" {
		return nil
	}
	return []string{url}
}

func firstImage(images []string) string {
	if len(images) == 0 {
		return ""
	}
	return images[0]
}
