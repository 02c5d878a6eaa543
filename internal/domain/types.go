package domain

type (
	Username = string
	Password = string
	UserId   = string

	ThreadId    = string
	ThreadTitle = string

	ReplyId = string
)
