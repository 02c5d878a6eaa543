package domain

import "time"

type Reply struct {
	Id            ReplyId   `json:"id"`
	ThreadId      ThreadId  `json:"thread_id"`
	Content       string    `json:"content"`
	Author        *Username `json:"author_username"` // nil means anonymous
	CreatedAt     time.Time `json:"created_at"`
	ImageData     *string   `json:"image_data"` // base64
	ImageFilename *string   `json:"image_filename"`
}

type ReplyCreationData struct {
	ThreadId      ThreadId
	Content       string
	Author        *Username
	ImageData     *string
	ImageFilename *string
}
