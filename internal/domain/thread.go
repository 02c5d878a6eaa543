package domain

import "time"

type Thread struct {
	Id            ThreadId    `json:"id"`
	Title         ThreadTitle `json:"title"`
	Content       string      `json:"content"`
	Author        *Username   `json:"author_username"` // nil means anonymous
	CreatedAt     time.Time   `json:"created_at"`
	ReplyCount    int         `json:"reply_count"`
	ImageData     *string     `json:"image_data"` // base64
	ImageFilename *string     `json:"image_filename"`
}

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title         ThreadTitle
	Content       string
	Author        *Username
	ImageData     *string
	ImageFilename *string
}
